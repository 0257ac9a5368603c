package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/swiftbuild/helper/internal/app"
	"github.com/swiftbuild/helper/internal/core/ports"
	"github.com/swiftbuild/helper/internal/core/ports/mocks"
	"github.com/swiftbuild/helper/internal/engine/session"
	"go.uber.org/mock/gomock"
)

func testProvider(t *testing.T) (ComponentProvider, *mocks.MockSessionLoader) {
	t.Helper()
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockSessionLoader(ctrl)
	toolchain := mocks.NewMockToolchain(ctrl)
	store := mocks.NewMockRecordStore(ctrl)

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
	store.EXPECT().Put(gomock.Any()).Return(nil).AnyTimes()

	runner := session.NewRunner(logger, tracer, store)
	application := app.New(loader, toolchain, runner, store)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: logger}, func() {}, nil
	}
	return provider, loader
}

// TestRun_Success verifies that run returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	provider, _ := testProvider(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component
// initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns a non-zero exit code when
// the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	provider, loader := testProvider(t)

	loader.EXPECT().Load(gomock.Any()).Return(nil, errors.New("load failed"))

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"run"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "load failed")
}

// TestRun_UnknownCommand verifies that an unknown command fails.
func TestRun_UnknownCommand(t *testing.T) {
	provider, _ := testProvider(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"deploy"}, stderr, provider)
	assert.Equal(t, 1, exitCode)
}
