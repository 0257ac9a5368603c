// Package main is the entry point for the swift-build-helper CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/swiftbuild/helper/cmd/swift-build-helper/commands"
	"github.com/swiftbuild/helper/internal/adapters/shell"
	"github.com/swiftbuild/helper/internal/app"
	"github.com/swiftbuild/helper/internal/core/domain"
	_ "github.com/swiftbuild/helper/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	cli := commands.New(components)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrSessionFailed) {
			components.Logger.Error(err)
			return 1
		}
		// zerr prints a full error report with metadata when using %+v.
		_, _ = fmt.Fprintf(stderr, "%+v\n", err)
		// A subprocess exit status passes through untranslated.
		return shell.ExitCode(err)
	}
	return 0
}
