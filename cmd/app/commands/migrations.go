package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

var migrationSources = map[string]string{
	"postgres": "file://migrations/postgresql",
	"mysql":    "file://migrations/mysql",
}

// RunMigrations applies every pending migration for dbDriver. Paths are relative
// to the working directory.
func RunMigrations(logger *slog.Logger, dbDriver, dbConnectionString string) error {
	source, ok := migrationSources[dbDriver]
	if !ok {
		return fmt.Errorf("unsupported database driver %q (valid options: postgres, mysql)", dbDriver)
	}

	m, err := migrate.New(source, dbConnectionString)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("schema already up to date", slog.String("driver", dbDriver))
		return nil
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	schemaVersion, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	logger.Info("migrations applied",
		slog.String("driver", dbDriver),
		slog.Uint64("version", uint64(schemaVersion)),
		slog.Bool("dirty", dirty),
	)
	return nil
}
