package sqlstore

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/banks_etl/pkg/database"
	migrate "github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// RunMigrations applies the embedded migrations on a dedicated connection.
// Closing the migrate instance closes that connection, so the application pool
// must be opened separately.
func RunMigrations(ctx context.Context, logger *slog.Logger, driver, dsn string) error {
	logger.Debug("Running database migrations...")

	migrationDB, err := database.Open(ctx, driver, dsn)
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}

	var dbDriver migratedb.Driver
	switch driver {
	case database.SQLite:
		dbDriver, err = sqlite.WithInstance(migrationDB, &sqlite.Config{})
	case database.Postgres:
		dbDriver, err = postgres.WithInstance(migrationDB, &postgres.Config{})
	case database.MySQL:
		dbDriver, err = mysql.WithInstance(migrationDB, &mysql.Config{})
	default:
		err = fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		database.Close(migrationDB)
		return fmt.Errorf("could not create %s driver instance for migrations: %w", driver, err)
	}

	source, err := iofs.New(embedMigrations, "migrations")
	if err != nil {
		database.Close(migrationDB)
		return fmt.Errorf("could not read embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driver, dbDriver)
	if err != nil {
		database.Close(migrationDB)
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	upErr := m.Up()
	sourceErr, dbErr := m.Close()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", upErr)
	}
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Debug("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
