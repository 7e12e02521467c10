package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/sealedfields/cmd/app/commands"
	"github.com/allisson/sealedfields/internal/app"
)

func getRecordCommands() []*cli.Command {
	return []*cli.Command{{
		Name:  "encrypt-record",
		Usage: "Run the record-saved flow for one coordinate, e.g. to backfill old records",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "project-id", Aliases: []string{"p"}, Required: true, Usage: "Project ID"},
			&cli.StringFlag{Name: "record", Aliases: []string{"r"}, Required: true, Usage: "Record identifier"},
			&cli.Int64Flag{Name: "event-id", Aliases: []string{"e"}, Required: true, Usage: "Event ID"},
			&cli.IntFlag{Name: "instance", Aliases: []string{"i"}, Value: 1, Usage: "Repeat instance number"},
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withContainer(ctx, func(c *app.Container) error {
				records, err := c.RecordUseCase()
				if err != nil {
					return err
				}
				return commands.RunEncryptRecord(ctx, records, c.Logger(), commands.Output,
					cmd.Int64("project-id"), cmd.String("record"), cmd.Int64("event-id"),
					int(cmd.Int("instance")), cmd.String("format"))
			})
		},
	}}
}
