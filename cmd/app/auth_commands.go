package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/sealedfields/cmd/app/commands"
	"github.com/allisson/sealedfields/internal/app"
)

func getAuthCommands() []*cli.Command {
	return []*cli.Command{{
		Name:  "create-hook-token",
		Usage: "Issue a shared secret for hook callers along with its HOOK_TOKEN_HASH",
		Flags: []cli.Flag{formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withContainer(ctx, func(c *app.Container) error {
				return commands.RunCreateHookToken(c.HookTokenService(), c.Logger(),
					commands.Output, cmd.String("format"))
			})
		},
	}}
}
