package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/sealedfields/internal/app"
	"github.com/allisson/sealedfields/internal/config"
)

// withContainer loads configuration from the environment, builds a container and
// releases its resources once fn returns.
func withContainer(ctx context.Context, fn func(*app.Container) error) error {
	container := app.NewContainer(config.Load())
	defer func() { _ = container.Shutdown(ctx) }()
	return fn(container)
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}
