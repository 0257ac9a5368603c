package config

import (
	"github.com/swiftbuild/helper/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver implements ports.PathResolver over a loaded session. Host
// targets stay opaque to descriptors; only the resolver looks up their
// toolchain roots.
type Resolver struct {
	session *domain.Session
}

// NewResolver creates a Resolver for the given session.
func NewResolver(session *domain.Session) *Resolver {
	return &Resolver{session: session}
}

// InstallToolchainPath returns the root of the toolchain layout receiving
// installed binaries. It falls back to the native toolchain when no
// separate install root is configured.
func (r *Resolver) InstallToolchainPath(host domain.HostTarget) (string, error) {
	paths, err := r.lookup(host)
	if err != nil {
		return "", err
	}
	if paths.Install == "" {
		return paths.Native, nil
	}
	return paths.Install, nil
}

// NativeToolchainPath returns the root of the installed toolchain products
// are built against.
func (r *Resolver) NativeToolchainPath(host domain.HostTarget) (string, error) {
	paths, err := r.lookup(host)
	if err != nil {
		return "", err
	}
	return paths.Native, nil
}

func (r *Resolver) lookup(host domain.HostTarget) (domain.ToolchainPaths, error) {
	paths, ok := r.session.Toolchains[host.String()]
	if !ok {
		return domain.ToolchainPaths{}, zerr.With(domain.ErrUnknownHostTarget, "host_target", host.String())
	}
	return paths, nil
}
