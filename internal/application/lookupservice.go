// Package application contains use-case orchestration services.
package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ericfisherdev/fishledger/internal/domain/model"
	"github.com/ericfisherdev/fishledger/internal/domain/payload"
	"github.com/ericfisherdev/fishledger/internal/domain/port/driven"
)

// Stage names the pipeline step a lookup failed in.
type Stage string

const (
	StageFetch  Stage = "fetch"
	StageDecode Stage = "decode"
)

// LookupError reports a failed lookup. It only affects the one query; the
// service is ready for the next timestamp.
type LookupError struct {
	ReceivedAt uint64
	Stage      Stage
	Err        error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup %d: %s: %v", e.ReceivedAt, e.Stage, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err means the store can no longer serve lookups.
func IsFatal(err error) bool {
	return errors.Is(err, driven.ErrStoreClosed)
}

// Rendering is the result of a successful lookup: the stored record, its
// decoded vector and the three display strings.
type Rendering struct {
	Withdrawal model.Withdrawal
	Vector     model.QuantityVector
	Cells      []Cell
	Indexes    string
	Quantities string
	Summary    string
}

// LookupService turns a timestamp into a rendered withdrawal. It holds no
// per-query state.
type LookupService struct {
	store    driven.WithdrawalStore
	codec    payload.Codec
	recorder driven.LookupRecorder
}

// NewLookupService creates a LookupService. recorder may be nil.
func NewLookupService(store driven.WithdrawalStore, codec payload.Codec, recorder driven.LookupRecorder) *LookupService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &LookupService{
		store:    store,
		codec:    codec,
		recorder: recorder,
	}
}

// Lookup fetches the withdrawal received at receivedAt, decodes its payload
// and renders it. Errors are *LookupError wrapping driven.ErrWithdrawalNotFound,
// payload.ErrDecode or a store error.
func (s *LookupService) Lookup(ctx context.Context, receivedAt uint64) (*Rendering, error) {
	w, err := s.store.FindByReceivedAt(ctx, receivedAt)
	if err != nil {
		if errors.Is(err, driven.ErrWithdrawalNotFound) {
			s.recorder.RecordLookup(driven.LookupNotFound, nil)
		} else {
			s.recorder.RecordLookup(driven.LookupStoreError, nil)
		}
		return nil, &LookupError{ReceivedAt: receivedAt, Stage: StageFetch, Err: err}
	}

	v, err := s.codec.Decode(w.Payload)
	if err != nil {
		s.recorder.RecordLookup(driven.LookupDecodeError, nil)
		return nil, &LookupError{ReceivedAt: receivedAt, Stage: StageDecode, Err: err}
	}
	s.recorder.RecordLookup(driven.LookupFound, v)

	if len(v) > model.SpeciesCount() {
		slog.Debug("vector longer than species catalog",
			"received_at", receivedAt,
			"length", len(v),
			"catalog_size", model.SpeciesCount(),
		)
	}

	return &Rendering{
		Withdrawal: w,
		Vector:     v,
		Cells:      Cells(v),
		Indexes:    IndexList(v),
		Quantities: QuantityList(v),
		Summary:    Summary(v),
	}, nil
}

type nopRecorder struct{}

func (nopRecorder) RecordLookup(driven.LookupOutcome, model.QuantityVector) {}
