package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/ericfisherdev/fishledger/internal/domain/port/driven"
)

// DB owns the single SQLite connection to the withdrawal ledger file.
// Every use of the connection goes through withConn, which holds mu for the
// whole operation, so schema setup and lookups never overlap.
type DB struct {
	mu     sync.Mutex
	conn   *sql.DB
	path   string
	closed bool
}

// NewDB opens the ledger file with WAL mode, busy timeout and synchronous
// NORMAL. The file is created if it does not exist. The pool is capped at one
// connection so the lock and the handle describe the same resource.
func NewDB(ctx context.Context, dbPath string) (*DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)",
		dbPath,
	)

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping database %s: %w", dbPath, err)
	}

	return &DB{conn: conn, path: dbPath}, nil
}

// Path returns the file the DB was opened on.
func (db *DB) Path() string {
	return db.path
}

// withConn runs fn with exclusive use of the connection. Returns
// driven.ErrStoreClosed without calling fn once Close has run.
func (db *DB) withConn(ctx context.Context, fn func(conn *sql.DB) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.closed {
		return driven.ErrStoreClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(db.conn)
}

// Close waits for any in-flight operation and closes the connection.
// Calling Close more than once is a no-op.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.closed {
		return nil
	}
	db.closed = true

	if err := db.conn.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
