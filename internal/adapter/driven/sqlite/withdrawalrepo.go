package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/ericfisherdev/fishledger/internal/domain/model"
	"github.com/ericfisherdev/fishledger/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.WithdrawalStore = (*WithdrawalRepo)(nil)

// WithdrawalRepo is the SQLite implementation of the WithdrawalStore port interface.
type WithdrawalRepo struct {
	db *DB
}

// NewWithdrawalRepo creates a new WithdrawalRepo backed by the given DB.
func NewWithdrawalRepo(db *DB) *WithdrawalRepo {
	return &WithdrawalRepo{db: db}
}

// EnsureSchema creates the withdrawals table if it is missing. Idempotent.
// Any failure is returned as a *SchemaError; an interrupted earlier migration
// keeps failing until the ledger is repaired by hand.
func (r *WithdrawalRepo) EnsureSchema(ctx context.Context) error {
	if err := r.db.withConn(ctx, applySchema); err != nil {
		return newSchemaError(err)
	}
	return nil
}

// FindByReceivedAt returns the first record, by rowid, whose received_at
// equals receivedAt. Returns driven.ErrWithdrawalNotFound if none does.
func (r *WithdrawalRepo) FindByReceivedAt(ctx context.Context, receivedAt uint64) (model.Withdrawal, error) {
	// received_at is a signed 64-bit column; larger values cannot be stored.
	if receivedAt > math.MaxInt64 {
		return model.Withdrawal{}, fmt.Errorf("find withdrawal at %d: %w", receivedAt, driven.ErrWithdrawalNotFound)
	}

	const query = `SELECT crane_id, steam_id, specific_withdrawn, received_at
		FROM withdrawals
		WHERE received_at = ?
		ORDER BY rowid ASC
		LIMIT 1`

	var w model.Withdrawal
	err := r.db.withConn(ctx, func(conn *sql.DB) error {
		return conn.QueryRowContext(ctx, query, int64(receivedAt)).Scan(
			&w.SourceID, &w.ActorID, &w.Payload, &w.ReceivedAt,
		)
	})
	switch {
	case err == nil:
		return w, nil
	case errors.Is(err, sql.ErrNoRows):
		return model.Withdrawal{}, fmt.Errorf("find withdrawal at %d: %w", receivedAt, driven.ErrWithdrawalNotFound)
	case errors.Is(err, driven.ErrStoreClosed), errors.Is(err, sql.ErrConnDone):
		return model.Withdrawal{}, fmt.Errorf("find withdrawal at %d: %w", receivedAt, driven.ErrStoreClosed)
	default:
		return model.Withdrawal{}, fmt.Errorf("find withdrawal at %d: %w: %w", receivedAt, driven.ErrStoreIO, err)
	}
}
