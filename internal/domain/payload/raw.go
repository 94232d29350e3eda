package payload

import (
	"encoding/binary"

	"github.com/ericfisherdev/fishledger/internal/domain/model"
)

const countWidth = 4

// Raw is the default codec: counts written back to back as little-endian
// uint32 with no header.
type Raw struct{}

// Format returns FormatRaw.
func (Raw) Format() Format { return FormatRaw }

// Encode writes v as consecutive little-endian uint32 values.
func (Raw) Encode(v model.QuantityVector) []byte {
	return appendCounts(make([]byte, 0, len(v)*countWidth), v)
}

// Decode reads b as consecutive little-endian uint32 values.
// Returns a DecodeError if len(b) is not a multiple of four.
func (Raw) Decode(b []byte) (model.QuantityVector, error) {
	if len(b)%countWidth != 0 {
		return nil, &DecodeError{Format: FormatRaw, Length: len(b), Reason: "length is not a multiple of 4"}
	}
	return readCounts(b), nil
}

func appendCounts(dst []byte, v model.QuantityVector) []byte {
	for _, q := range v {
		dst = binary.LittleEndian.AppendUint32(dst, q)
	}
	return dst
}

func readCounts(b []byte) model.QuantityVector {
	v := make(model.QuantityVector, len(b)/countWidth)
	for i := range v {
		v[i] = binary.LittleEndian.Uint32(b[i*countWidth:])
	}
	return v
}
