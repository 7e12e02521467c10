package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/sealedfields/cmd/app/commands"
	"github.com/allisson/sealedfields/internal/app"
)

func getSystemCommands(version string) []*cli.Command {
	serve := &cli.Command{
		Name:  "server",
		Usage: "Serve the hook and read APIs; also drains the delivery queue when WORKER_ENABLED=true",
		Action: func(ctx context.Context, _ *cli.Command) error {
			return commands.RunServer(ctx, version)
		},
	}

	migrateCmd := &cli.Command{
		Name:  "migrate",
		Usage: "Apply pending schema migrations for DB_DRIVER",
		Action: func(ctx context.Context, _ *cli.Command) error {
			return withContainer(ctx, func(c *app.Container) error {
				cfg := c.Config()
				return commands.RunMigrations(c.Logger(), cfg.DBDriver, cfg.DBConnectionString)
			})
		},
	}

	cleanAudit := &cli.Command{
		Name:  "clean-audit-logs",
		Usage: "Purge delivery audit entries past a retention window",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "days", Aliases: []string{"d"}, Required: true, Usage: "Retention window in days"},
			&cli.BoolFlag{Name: "dry-run", Aliases: []string{"n"}, Usage: "Only count matching entries"},
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withContainer(ctx, func(c *app.Container) error {
				auditLogs, err := c.AuditLogUseCase()
				if err != nil {
					return err
				}
				return commands.RunCleanAuditLogs(ctx, auditLogs, c.Logger(), commands.Output,
					int(cmd.Int("days")), cmd.Bool("dry-run"), cmd.String("format"))
			})
		},
	}

	return []*cli.Command{serve, migrateCmd, cleanAudit}
}
