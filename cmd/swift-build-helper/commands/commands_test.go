package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftbuild/helper/cmd/swift-build-helper/commands"
	"github.com/swiftbuild/helper/internal/app"
	"github.com/swiftbuild/helper/internal/build"
	"github.com/swiftbuild/helper/internal/core/domain"
	"github.com/swiftbuild/helper/internal/core/ports"
	"github.com/swiftbuild/helper/internal/core/ports/mocks"
	"github.com/swiftbuild/helper/internal/engine/session"
	"go.uber.org/mock/gomock"
)

type cliTestMocks struct {
	loader    *mocks.MockSessionLoader
	toolchain *mocks.MockToolchain
	store     *mocks.MockRecordStore
}

func setupCLITest(t *testing.T) (*commands.CLI, cliTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := cliTestMocks{
		loader:    mocks.NewMockSessionLoader(ctrl),
		toolchain: mocks.NewMockToolchain(ctrl),
		store:     mocks.NewMockRecordStore(ctrl),
	}

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, span
		},
	).AnyTimes()
	m.store.EXPECT().Put(gomock.Any()).Return(nil).AnyTimes()

	runner := session.NewRunner(logger, tracer, m.store)
	components := &app.Components{
		App:    app.New(m.loader, m.toolchain, runner, m.store),
		Logger: logger,
	}

	cli := commands.New(components)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	return cli, m
}

func TestCommands_Build_WiresFlags(t *testing.T) {
	cli, m := setupCLITest(t)

	var captured domain.Invocation
	m.toolchain.EXPECT().
		Invoke(gomock.Any(), domain.ActionBuild, "swift-backtrace", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Action, _ string, inv domain.Invocation, _ ...string) error {
			captured = inv
			return nil
		})

	cli.SetArgs([]string{
		"build",
		"--package-path", "/src/pkg",
		"--build-path", "/tmp/out",
		"--toolchain", "/opt/toolchain",
	})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Equal(t, domain.ModeRelease, captured.Mode)
	assert.Equal(t, "/src/pkg", captured.PackagePath)
	assert.Equal(t, "/tmp/out", captured.BuildPath)
	assert.Equal(t, "/opt/toolchain", captured.ToolchainPath)
	assert.False(t, captured.Verbose)
}

func TestCommands_Test_UsesTestAction(t *testing.T) {
	cli, m := setupCLITest(t)

	m.toolchain.EXPECT().
		Invoke(gomock.Any(), domain.ActionTest, "swift-backtrace", gomock.Any()).
		Return(nil)

	cli.SetArgs([]string{
		"test",
		"--package-path", "/src/pkg",
		"--build-path", "/tmp/out",
		"--toolchain", "/opt/toolchain",
		"--configuration", "debug",
	})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestCommands_Install(t *testing.T) {
	cli, m := setupCLITest(t)

	m.toolchain.EXPECT().
		Install(gomock.Any(), "swift-backtrace", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, inv domain.Invocation) error {
			assert.Equal(t, "/opt/toolchain/libexec/swift", inv.InstallPath)
			return nil
		})

	cli.SetArgs([]string{
		"install",
		"--package-path", "/src/pkg",
		"--build-path", "/tmp/out",
		"--toolchain", "/opt/toolchain",
		"--install-path", "/opt/toolchain/libexec/swift",
	})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestCommands_Install_RequiresInstallPath(t *testing.T) {
	cli, _ := setupCLITest(t)

	cli.SetArgs([]string{
		"install",
		"--package-path", "/src/pkg",
		"--build-path", "/tmp/out",
		"--toolchain", "/opt/toolchain",
	})
	require.Error(t, cli.Execute(context.Background()))
}

func TestCommands_Build_RequiresFlags(t *testing.T) {
	cli, _ := setupCLITest(t)

	cli.SetArgs([]string{"build"})
	require.Error(t, cli.Execute(context.Background()))
}

func TestCommands_InvalidConfiguration(t *testing.T) {
	cli, _ := setupCLITest(t)

	cli.SetArgs([]string{
		"build",
		"--package-path", "/src/pkg",
		"--build-path", "/tmp/out",
		"--toolchain", "/opt/toolchain",
		"--configuration", "profile",
	})
	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestCommands_VerboseFlag(t *testing.T) {
	cli, m := setupCLITest(t)

	m.toolchain.EXPECT().
		Invoke(gomock.Any(), domain.ActionBuild, "swift-backtrace", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Action, _ string, inv domain.Invocation, _ ...string) error {
			assert.True(t, inv.Verbose)
			return nil
		})

	cli.SetArgs([]string{
		"build", "-v",
		"--package-path", "/src/pkg",
		"--build-path", "/tmp/out",
		"--toolchain", "/opt/toolchain",
	})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestCommands_Run(t *testing.T) {
	cli, m := setupCLITest(t)

	sess := &domain.Session{
		Host:        domain.NewHostTarget("linux-x86_64"),
		PackageRoot: "/src/swift-project",
		BuildRoot:   "/tmp/build",
		Toolchains: map[string]domain.ToolchainPaths{
			"linux-x86_64": {Native: "/opt/toolchain"},
		},
	}
	m.loader.EXPECT().Load("custom.yaml").Return(sess, nil)
	m.toolchain.EXPECT().
		Invoke(gomock.Any(), domain.ActionBuild, "swift-backtrace", gomock.Any()).
		Return(nil)

	cli.SetArgs([]string{"run", "--config", "custom.yaml"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestCommands_Status(t *testing.T) {
	cli, m := setupCLITest(t)

	m.store.EXPECT().All().Return([]domain.Record{
		{Product: "swift-backtrace", Action: "build", Success: true},
		{Product: "swift-backtrace", Action: "test", Success: false},
	}, nil)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"status"})
	require.NoError(t, cli.Execute(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "swift-backtrace")
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "failed")
}

func TestCommands_Status_ActionFilter(t *testing.T) {
	cli, m := setupCLITest(t)

	m.store.EXPECT().All().Return([]domain.Record{
		{Product: "swift-backtrace", Action: "build", Success: true},
		{Product: "swift-backtrace", Action: "test", Success: true},
	}, nil)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"status", "--action", "test"})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Contains(t, buf.String(), "test")
	assert.NotContains(t, buf.String(), "build")
}

func TestCommands_Status_InvalidActionFilter(t *testing.T) {
	cli, _ := setupCLITest(t)

	cli.SetArgs([]string{"status", "--action", "deploy"})
	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown action")
}

func TestCommands_Build_UnknownProduct(t *testing.T) {
	cli, _ := setupCLITest(t)

	cli.SetArgs([]string{
		"build",
		"--package-path", "/src/pkg",
		"--build-path", "/tmp/out",
		"--toolchain", "/opt/toolchain",
		"--product", "swiftpm",
	})
	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product not found")
}

func TestCommands_Version(t *testing.T) {
	cli, _ := setupCLITest(t)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Contains(t, buf.String(), build.Version)
}

func TestCommands_UnknownCommand(t *testing.T) {
	cli, _ := setupCLITest(t)

	cli.SetArgs([]string{"deploy"})
	require.Error(t, cli.Execute(context.Background()))
}
