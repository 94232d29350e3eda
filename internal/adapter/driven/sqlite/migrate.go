package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SchemaError reports that the withdrawals table could not be created or
// verified. The store is unusable until it is resolved.
type SchemaError struct {
	// DirtyVersion is the migration recorded as interrupted in
	// schema_migrations, or 0 if the failure was something else.
	DirtyVersion int
	Err          error
}

func (e *SchemaError) Error() string {
	if e.DirtyVersion != 0 {
		return fmt.Sprintf(
			"ensure withdrawals schema: migration %d was interrupted and left the ledger dirty; "+
				"repair the withdrawals table by hand, then set schema_migrations.dirty to 0: %v",
			e.DirtyVersion, e.Err,
		)
	}
	return fmt.Sprintf("ensure withdrawals schema: %v", e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// newSchemaError wraps err, noting when golang-migrate refused to run because
// an earlier migration stopped halfway. That state never clears on its own.
func newSchemaError(err error) *SchemaError {
	schemaErr := &SchemaError{Err: err}
	var dirty migrate.ErrDirty
	if errors.As(err, &dirty) {
		schemaErr.DirtyVersion = dirty.Version
	}
	return schemaErr
}

// applySchema brings conn up to the newest embedded migration. Applied
// migrations are skipped. The first migration uses CREATE TABLE IF NOT EXISTS,
// so ledger files the producer created before any migration bookkeeping are
// adopted rather than rejected.
func applySchema(conn *sql.DB) error {
	m, err := migrator(conn)
	if err != nil {
		return err
	}
	if err := m.Up(); !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// migrator pairs the embedded migration files with conn.
func migrator(conn *sql.DB) (*migrate.Migrate, error) {
	files, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("load embedded migrations: %w", err)
	}
	target, err := migratesqlite.WithInstance(conn, &migratesqlite.Config{})
	if err != nil {
		return nil, fmt.Errorf("attach migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", files, "sqlite", target)
	if err != nil {
		return nil, fmt.Errorf("build migrator: %w", err)
	}
	return m, nil
}
