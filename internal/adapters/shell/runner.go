// Package shell provides the subprocess runner adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/swiftbuild/helper/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.Runner using os/exec. The child process inherits
// the helper's standard streams: all build output comes from the toolchain
// itself and is never re-logged.
type Runner struct {
	logger ports.Logger
	stdout io.Writer
	stderr io.Writer
}

// NewRunner creates a Runner wired to the process's standard streams.
func NewRunner(logger ports.Logger) *Runner {
	return NewRunnerWithIO(logger, os.Stdout, os.Stderr)
}

// NewRunnerWithIO creates a Runner with explicit output writers.
func NewRunnerWithIO(logger ports.Logger, stdout, stderr io.Writer) *Runner {
	return &Runner{
		logger: logger,
		stdout: stdout,
		stderr: stderr,
	}
}

// Run executes argv and waits for completion. A non-zero exit surfaces as
// an error carrying the exit code as metadata.
func (r *Runner) Run(ctx context.Context, argv []string) error {
	cmd, err := r.command(ctx, argv)
	if err != nil {
		return err
	}
	cmd.Stdout = r.stdout

	if err := cmd.Run(); err != nil {
		return wrapExit(err)
	}
	return nil
}

// Output executes argv and captures its standard output. Standard error is
// still inherited.
func (r *Runner) Output(ctx context.Context, argv []string) ([]byte, error) {
	cmd, err := r.command(ctx, argv)
	if err != nil {
		return nil, err
	}

	out, err := cmd.Output()
	if err != nil {
		return nil, wrapExit(err)
	}
	return out, nil
}

func (r *Runner) command(ctx context.Context, argv []string) (*exec.Cmd, error) {
	if len(argv) == 0 {
		return nil, zerr.New("empty argument vector")
	}

	r.logger.Debug("exec: " + strings.Join(argv, " "))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // argv is assembled from trusted configuration
	cmd.Stdin = os.Stdin
	cmd.Stderr = r.stderr
	return cmd, nil
}

func wrapExit(err error) error {
	exitCode := -1 // unknown or signal
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	return zerr.With(zerr.Wrap(err, "toolchain invocation failed"), "exit_code", exitCode)
}

// ExitCode extracts the subprocess exit status carried by err so callers
// can propagate it unchanged. It returns 1 when err does not stem from a
// subprocess exit.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}
