package swiftpm

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/swiftbuild/helper/internal/core/domain"
	"github.com/swiftbuild/helper/internal/core/ports"
	"go.trai.ch/zerr"
)

const dirPerm = 0o755

// Toolchain implements ports.Toolchain on top of a subprocess runner.
type Toolchain struct {
	runner ports.Runner
	logger ports.Logger
}

// NewToolchain creates a new Toolchain.
func NewToolchain(runner ports.Runner, logger ports.Logger) *Toolchain {
	return &Toolchain{
		runner: runner,
		logger: logger,
	}
}

// Invoke runs the toolchain for the given action and product. The
// subprocess outcome is returned without interpretation: no retry, no
// error translation.
func (t *Toolchain) Invoke(ctx context.Context, action domain.Action, product string, inv domain.Invocation, extra ...string) error {
	return t.runner.Run(ctx, Args(action, product, inv, extra...))
}

// BinaryPath resolves the path of the binary a build action produces. It
// invokes the toolchain in query mode (--show-bin-path), trims the captured
// output and appends the product's binary name.
func (t *Toolchain) BinaryPath(ctx context.Context, product string, inv domain.Invocation) (string, error) {
	out, err := t.runner.Output(ctx, Args(domain.ActionBuild, product, inv, "--show-bin-path"))
	if err != nil {
		return "", zerr.Wrap(err, "bin path query failed")
	}

	binDir := strings.TrimSpace(string(out))
	if binDir == "" {
		return "", zerr.With(domain.ErrEmptyBinaryPath, "product", product)
	}

	return filepath.Join(binDir, product), nil
}

// Install builds the product, creates the install directory and copies the
// built binary into it under its fixed name. The install directory must not
// exist yet; a pre-existing directory is a conflict, never overwritten.
func (t *Toolchain) Install(ctx context.Context, product string, inv domain.Invocation) error {
	if err := t.Invoke(ctx, domain.ActionBuild, product, inv); err != nil {
		return err
	}

	if err := createInstallDir(inv.InstallPath); err != nil {
		return err
	}

	binary, err := t.BinaryPath(ctx, product, inv)
	if err != nil {
		return err
	}

	dest := filepath.Join(inv.InstallPath, product)
	if err := copyFile(binary, dest); err != nil {
		return err
	}

	t.logger.Debug("installed " + product + " to " + dest)
	return nil
}

// createInstallDir creates the install directory, parents included. The
// leaf itself must not exist.
func createInstallDir(path string) error {
	if path == "" {
		return zerr.New("install path not set")
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return zerr.Wrap(err, "failed to create install parent directory")
	}
	if err := os.Mkdir(path, dirPerm); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return zerr.With(domain.ErrInstallDirExists, "install_path", path)
		}
		return zerr.Wrap(err, "failed to create install directory")
	}
	return nil
}

// copyFile copies src to dest, preserving the source file mode so the
// installed binary stays executable.
func copyFile(src, dest string) error {
	in, err := os.Open(src) //nolint:gosec // path reported by the toolchain
	if err != nil {
		return zerr.With(zerr.Wrap(err, "built binary not found"), "path", src)
	}
	defer in.Close() //nolint:errcheck // best effort close in defer

	info, err := in.Stat()
	if err != nil {
		return zerr.Wrap(err, "failed to stat built binary")
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm()) //nolint:gosec // dest is inside the freshly created install dir
	if err != nil {
		return zerr.Wrap(err, "failed to create installed binary")
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy binary"), "dest", dest)
	}

	return out.Close()
}
