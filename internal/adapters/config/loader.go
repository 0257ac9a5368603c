// Package config provides the session configuration loader.
package config

import (
	"os"

	"github.com/swiftbuild/helper/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the session file looked up when no path is given.
const DefaultFilename = "swift-build.yaml"

// FileSessionLoader implements ports.SessionLoader using a YAML file.
type FileSessionLoader struct{}

// Load reads a session file from the given path and returns the session
// configuration.
func (l *FileSessionLoader) Load(path string) (*domain.Session, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read session file")
	}

	var file SessionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse session file")
	}

	return sessionFromFile(&file)
}

func sessionFromFile(file *SessionFile) (*domain.Session, error) {
	if file.HostTarget == "" {
		return nil, zerr.New("hostTarget is required")
	}
	if file.PackageRoot == "" {
		return nil, zerr.New("packageRoot is required")
	}
	if file.BuildRoot == "" {
		return nil, zerr.New("buildRoot is required")
	}

	toolchains := make(map[string]domain.ToolchainPaths, len(file.Toolchains))
	for host, dto := range file.Toolchains {
		if dto.Native == "" {
			return nil, zerr.With(zerr.New("toolchain native path is required"), "host_target", host)
		}
		toolchains[host] = domain.ToolchainPaths{
			Native:  dto.Native,
			Install: dto.Install,
		}
	}

	if _, ok := toolchains[file.HostTarget]; !ok {
		return nil, zerr.With(domain.ErrUnknownHostTarget, "host_target", file.HostTarget)
	}

	return &domain.Session{
		Host:            domain.NewHostTarget(file.HostTarget),
		PackageRoot:     file.PackageRoot,
		BuildRoot:       file.BuildRoot,
		Release:         file.Release,
		Verbose:         file.Verbose,
		Jobs:            file.Jobs,
		Toolchains:      toolchains,
		TestProducts:    file.Test,
		InstallProducts: file.Install,
	}, nil
}
