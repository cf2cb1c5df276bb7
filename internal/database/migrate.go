package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for goose
	"github.com/pressly/goose/v3"
)

// Migrate applies any pending goose migrations from dir. It opens a short
// lived database/sql connection because goose does not speak the pgx pool
// API directly.
func Migrate(connString, dir string) error {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToOpenMigrationConn, err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			slog.Warn(LogMsgMigrationConnCloseFailed, "error", cerr)
		}
	}()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetMigrationDialect, err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRunMigrations, err)
	}

	slog.Info(LogMsgMigrationsApplied, "dir", dir)
	return nil
}
