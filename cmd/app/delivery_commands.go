package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/sealedfields/cmd/app/commands"
	"github.com/allisson/sealedfields/internal/app"
)

func getDeliveryCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "worker",
			Usage: "Poll the delivery queue until interrupted",
			Action: func(ctx context.Context, _ *cli.Command) error {
				return commands.RunWorker(ctx, version)
			},
		},
		{
			Name:  "process-queue",
			Usage: "Claim and deliver one batch of queued messages, then exit",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(c *app.Container) error {
					processor, err := c.ProcessorUseCase()
					if err != nil {
						return err
					}
					return commands.RunProcessQueue(ctx, processor, c.Logger(),
						commands.Output, cmd.String("format"))
				})
			},
		},
	}
}
