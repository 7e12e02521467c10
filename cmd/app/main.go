// Command app protects tagged survey email fields and delivers mail addressed to
// their placeholders.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

// Overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	root := &cli.Command{
		Name:     "app",
		Usage:    "Encrypts tagged survey email fields and delivers mail to their real addresses",
		Version:  version,
		Commands: getCommands(version),
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
