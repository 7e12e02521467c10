package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/sealedfields/cmd/app/commands"
	"github.com/allisson/sealedfields/internal/app"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{{
		Name:  "create-encryption-key",
		Usage: "Print a fresh 32-byte field key, optionally wrapped by a KMS keeper",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "kms-key-uri",
				Usage: "Wrap the key with this keeper (base64key://..., gcpkms://..., awskms://...)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withContainer(ctx, func(c *app.Container) error {
				return commands.RunCreateEncryptionKey(ctx, c.KMSService(), c.Logger(),
					commands.Output, cmd.String("kms-key-uri"))
			})
		},
	}}
}
