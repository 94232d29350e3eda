package model

// Withdrawal is one persisted withdrawal event: how many units of each
// species an actor removed, keyed by the unix timestamp it was received at.
// Records are written by an external producer and never modified here.
type Withdrawal struct {
	SourceID   int64  // crane_id: the mechanism the withdrawal went through.
	ActorID    int64  // steam_id of the withdrawing player.
	Payload    []byte // Encoded QuantityVector, see package payload.
	ReceivedAt int64  // Unix seconds; exact-match lookup key.
}

// QuantityVector holds per-species withdrawn counts. Index i is the count of
// the species at catalog index i. Vectors may be longer than the catalog.
type QuantityVector []uint32

// Total returns the sum of all counts in the vector.
func (v QuantityVector) Total() uint64 {
	var total uint64
	for _, q := range v {
		total += uint64(q)
	}
	return total
}

// NonZero reports how many species have a count greater than zero.
func (v QuantityVector) NonZero() int {
	n := 0
	for _, q := range v {
		if q > 0 {
			n++
		}
	}
	return n
}
