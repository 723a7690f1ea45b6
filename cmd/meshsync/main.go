// Package main is the entry point for the meshsync tool.
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

	"github.com/curveforge/meshsync/cmd/meshsync/commands"
	"github.com/curveforge/meshsync/internal/adapters/telemetry"
	"github.com/curveforge/meshsync/internal/app"
	"github.com/curveforge/meshsync/internal/core/domain"
	_ "github.com/curveforge/meshsync/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		shutdown := telemetry.InstallProvider()
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() { _ = shutdown(context.Background()) }, err
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

	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrBuildFailed) {
			// Per-target failures were already reported by the command.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
