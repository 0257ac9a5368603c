package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftbuild/helper/internal/app"
	"github.com/swiftbuild/helper/internal/core/domain"
	"github.com/swiftbuild/helper/internal/core/ports"
	"github.com/swiftbuild/helper/internal/core/ports/mocks"
	"github.com/swiftbuild/helper/internal/engine/session"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type appTestMocks struct {
	loader    *mocks.MockSessionLoader
	toolchain *mocks.MockToolchain
	store     *mocks.MockRecordStore
}

func setupAppTest(t *testing.T) (*app.App, appTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := appTestMocks{
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
	return app.New(m.loader, m.toolchain, runner, m.store), m
}

func TestApp_RunAction(t *testing.T) {
	a, m := setupAppTest(t)
	inv := domain.Invocation{Mode: domain.ModeRelease, ToolchainPath: "/opt/toolchain"}

	t.Run("build and test delegate to invoke", func(t *testing.T) {
		m.toolchain.EXPECT().Invoke(gomock.Any(), domain.ActionBuild, "swift-backtrace", inv).Return(nil)
		require.NoError(t, a.RunAction(context.Background(), domain.ActionBuild, "swift-backtrace", inv))

		m.toolchain.EXPECT().Invoke(gomock.Any(), domain.ActionTest, "swift-backtrace", inv).Return(nil)
		require.NoError(t, a.RunAction(context.Background(), domain.ActionTest, "swift-backtrace", inv))
	})

	t.Run("install delegates to install", func(t *testing.T) {
		m.toolchain.EXPECT().Install(gomock.Any(), "swift-backtrace", inv).Return(nil)
		require.NoError(t, a.RunAction(context.Background(), domain.ActionInstall, "swift-backtrace", inv))
	})

	t.Run("unknown product is rejected", func(t *testing.T) {
		err := a.RunAction(context.Background(), domain.ActionBuild, "swiftpm", inv)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("errors pass through", func(t *testing.T) {
		wantErr := zerr.New("exit status 1")
		m.toolchain.EXPECT().Invoke(gomock.Any(), domain.ActionBuild, "swift-backtrace", inv).Return(wantErr)
		err := a.RunAction(context.Background(), domain.ActionBuild, "swift-backtrace", inv)
		assert.ErrorIs(t, err, wantErr)
	})
}

func TestApp_RunSession(t *testing.T) {
	a, m := setupAppTest(t)

	sess := &domain.Session{
		Host:        domain.NewHostTarget("linux-x86_64"),
		PackageRoot: "/src/swift-project",
		BuildRoot:   "/tmp/build",
		Release:     true,
		Toolchains: map[string]domain.ToolchainPaths{
			"linux-x86_64": {Native: "/opt/toolchain"},
		},
	}
	m.loader.EXPECT().Load("swift-build.yaml").Return(sess, nil)
	m.toolchain.EXPECT().
		Invoke(gomock.Any(), domain.ActionBuild, "swift-backtrace", gomock.Any()).
		Return(nil)

	require.NoError(t, a.RunSession(context.Background(), "swift-build.yaml"))
}

func TestApp_RunSession_LoadFailure(t *testing.T) {
	a, m := setupAppTest(t)

	m.loader.EXPECT().Load("missing.yaml").Return(nil, zerr.New("no such file"))

	err := a.RunSession(context.Background(), "missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load session configuration")
}

func TestApp_Records(t *testing.T) {
	a, m := setupAppTest(t)

	want := []domain.Record{{Product: "swift-backtrace", Action: "build", Success: true}}
	m.store.EXPECT().All().Return(want, nil)

	got, err := a.Records()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
