// Package app implements the application layer for swift-build-helper.
package app

import (
	"context"

	"github.com/swiftbuild/helper/internal/adapters/config"
	"github.com/swiftbuild/helper/internal/core/domain"
	"github.com/swiftbuild/helper/internal/core/ports"
	"github.com/swiftbuild/helper/internal/engine/session"
	"github.com/swiftbuild/helper/internal/products"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader    ports.SessionLoader
	toolchain ports.Toolchain
	runner    *session.Runner
	store     ports.RecordStore
}

// New creates a new App instance.
func New(loader ports.SessionLoader, toolchain ports.Toolchain, runner *session.Runner, store ports.RecordStore) *App {
	return &App{
		loader:    loader,
		toolchain: toolchain,
		runner:    runner,
		store:     store,
	}
}

// RunAction performs one direct helper action for a single product with a
// fully caller-supplied invocation configuration.
func (a *App) RunAction(ctx context.Context, action domain.Action, product string, inv domain.Invocation) error {
	if !products.Known(product) {
		return zerr.With(domain.ErrProductNotFound, "product", product)
	}
	if action == domain.ActionInstall {
		return a.toolchain.Install(ctx, product, inv)
	}
	return a.toolchain.Invoke(ctx, action, product, inv)
}

// RunSession loads the session file and executes a full session over every
// registered product descriptor.
func (a *App) RunSession(ctx context.Context, path string) error {
	sess, err := a.loader.Load(path)
	if err != nil {
		return zerr.Wrap(err, "failed to load session configuration")
	}

	resolver := config.NewResolver(sess)
	return a.runner.Run(ctx, sess, products.Descriptors(sess, a.toolchain, resolver))
}

// Records returns all persisted action outcomes.
func (a *App) Records() ([]domain.Record, error) {
	return a.store.All()
}
