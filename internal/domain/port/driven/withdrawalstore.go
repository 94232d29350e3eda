// Package driven defines secondary port interfaces for external adapters.
package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/fishledger/internal/domain/model"
)

// Sentinel errors returned by WithdrawalStore implementations.
var (
	// ErrWithdrawalNotFound indicates no record has the requested received_at.
	ErrWithdrawalNotFound = errors.New("withdrawal not found")

	// ErrStoreIO wraps a failed read that may succeed if retried.
	ErrStoreIO = errors.New("withdrawal store i/o")

	// ErrStoreClosed indicates the store can no longer serve any request.
	ErrStoreClosed = errors.New("withdrawal store closed")
)

// WithdrawalStore defines the driven port for reading withdrawal records.
// EnsureSchema is idempotent. FindByReceivedAt returns ErrWithdrawalNotFound
// when nothing matches and the lowest-rowid record when several do.
type WithdrawalStore interface {
	EnsureSchema(ctx context.Context) error
	FindByReceivedAt(ctx context.Context, receivedAt uint64) (model.Withdrawal, error)
}
