package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"testing"

	"github.com/ericfisherdev/fishledger/internal/domain/model"
)

// setupTestDB creates a named shared in-memory SQLite database for testing.
// A unique name derived from t.Name() ensures isolation between parallel tests.
// The schema is not applied; call EnsureSchema or setupTestRepo for that.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	// Percent-encode the test name so it's a safe SQLite URI filename component
	// and cannot be misinterpreted as query parameters in the "file:%s?..." DSN.
	safeName := url.PathEscape(t.Name())
	// WAL mode is not applicable to in-memory databases; omit journal_mode pragma.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)", safeName)

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("create test db: %v", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	if err := conn.PingContext(context.Background()); err != nil {
		_ = conn.Close()
		t.Fatalf("ping test db: %v", err)
	}

	db := &DB{conn: conn, path: dsn}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// setupTestRepo returns a WithdrawalRepo over a fresh in-memory database
// with the schema applied.
func setupTestRepo(t *testing.T) (*WithdrawalRepo, *DB) {
	t.Helper()

	db := setupTestDB(t)
	repo := NewWithdrawalRepo(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return repo, db
}

// insertWithdrawal writes a row the way the external producer does.
func insertWithdrawal(t *testing.T, db *DB, w model.Withdrawal) {
	t.Helper()

	const query = `INSERT INTO withdrawals (crane_id, steam_id, specific_withdrawn, received_at)
		VALUES (?, ?, ?, ?)`
	if _, err := db.conn.ExecContext(context.Background(), query, w.SourceID, w.ActorID, w.Payload, w.ReceivedAt); err != nil {
		t.Fatalf("insert withdrawal: %v", err)
	}
}
