package shell_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftbuild/helper/internal/adapters/shell"
	"github.com/swiftbuild/helper/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func setupRunnerTest(t *testing.T) (*shell.Runner, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	var stdout, stderr bytes.Buffer
	return shell.NewRunnerWithIO(logger, &stdout, &stderr), &stdout, &stderr
}

func TestRunner_Run(t *testing.T) {
	runner, stdout, _ := setupRunnerTest(t)

	err := runner.Run(context.Background(), []string{"sh", "-c", "echo hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello\n", stdout.String())
}

func TestRunner_Run_NonZeroExit(t *testing.T) {
	runner, _, _ := setupRunnerTest(t)

	err := runner.Run(context.Background(), []string{"sh", "-c", "exit 3"})
	require.Error(t, err)
	assert.Equal(t, 3, shell.ExitCode(err))
}

func TestRunner_Run_EmptyArgv(t *testing.T) {
	runner, _, _ := setupRunnerTest(t)

	err := runner.Run(context.Background(), nil)
	require.Error(t, err)
}

func TestRunner_Run_MissingBinary(t *testing.T) {
	runner, _, _ := setupRunnerTest(t)

	err := runner.Run(context.Background(), []string{"/nonexistent/swift", "build"})
	require.Error(t, err)
	assert.Equal(t, 1, shell.ExitCode(err))
}

func TestRunner_Output(t *testing.T) {
	runner, stdout, stderr := setupRunnerTest(t)

	out, err := runner.Output(context.Background(), []string{"sh", "-c", "echo bin-path; echo noise >&2"})
	require.NoError(t, err)
	assert.Equal(t, "bin-path\n", string(out))

	// Captured output never leaks into the runner's own streams; stderr
	// stays inherited.
	assert.Empty(t, stdout.String())
	assert.Equal(t, "noise\n", stderr.String())
}

func TestRunner_Output_NonZeroExit(t *testing.T) {
	runner, _, _ := setupRunnerTest(t)

	_, err := runner.Output(context.Background(), []string{"sh", "-c", "exit 7"})
	require.Error(t, err)
	assert.Equal(t, 7, shell.ExitCode(err))
}

func TestRunner_Run_ContextCancellation(t *testing.T) {
	runner, _, _ := setupRunnerTest(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runner.Run(ctx, []string{"sh", "-c", "sleep 10"})
	require.Error(t, err)
}

func TestExitCode_NonExecError(t *testing.T) {
	assert.Equal(t, 1, shell.ExitCode(zerr.New("not a subprocess failure")))
}
