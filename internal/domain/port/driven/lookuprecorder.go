package driven

import "github.com/ericfisherdev/fishledger/internal/domain/model"

// LookupOutcome classifies how a single lookup ended.
type LookupOutcome string

const (
	LookupFound       LookupOutcome = "found"
	LookupNotFound    LookupOutcome = "not_found"
	LookupDecodeError LookupOutcome = "decode_error"
	LookupStoreError  LookupOutcome = "store_error"
)

// LookupRecorder receives the outcome of every lookup. The vector is only
// non-nil for LookupFound.
type LookupRecorder interface {
	RecordLookup(outcome LookupOutcome, v model.QuantityVector)
}
