package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// migrationLogger adapts slog to migrate.Logger.
type migrationLogger struct {
	logger *slog.Logger
}

func (l migrationLogger) Printf(format string, v ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l migrationLogger) Verbose() bool {
	return false
}

// Migrate applies every pending embedded migration.
// It works on a dedicated connection and leaves the pool open.
func Migrate(ctx context.Context, sqlDB *sql.DB, logger *slog.Logger) error {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return errors.Wrap(err, "failed to open embedded migrations")
	}

	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to acquire migration connection")
	}
	defer conn.Close()

	driver, err := pgxmigrate.WithConnection(ctx, conn, &pgxmigrate.Config{})
	if err != nil {
		return errors.Wrap(err, "failed to create migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", source, "pgx5", driver)
	if err != nil {
		return errors.Wrap(err, "failed to create migrate instance")
	}
	m.Log = migrationLogger{logger: logger}

	previous, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return errors.Wrap(err, "failed to read migration version")
	}
	if dirty {
		return errors.Errorf("database is dirty at migration version %d; fix it and force the version manually", previous)
	}

	startTime := time.Now()
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply", slog.Uint64("version", uint64(previous)))

		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "failed to apply migrations from version %d", previous)
	}

	current, _, _ := m.Version()
	logger.Info("Database migrations applied",
		slog.Uint64("from", uint64(previous)),
		slog.Uint64("to", uint64(current)),
		slog.Duration("elapsed", time.Since(startTime)),
	)

	return nil
}
