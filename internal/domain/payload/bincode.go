package payload

import (
	"encoding/binary"
	"fmt"

	"github.com/ericfisherdev/fishledger/internal/domain/model"
)

const lengthPrefixWidth = 8

// Bincode reads and writes a uint64 element count followed by the raw counts.
type Bincode struct{}

// Format returns FormatBincode.
func (Bincode) Format() Format { return FormatBincode }

// Encode writes the element count then each count, all little-endian.
func (Bincode) Encode(v model.QuantityVector) []byte {
	buf := make([]byte, 0, lengthPrefixWidth+len(v)*countWidth)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(v)))
	return appendCounts(buf, v)
}

// Decode reads the element count and then that many counts. Bytes after the
// last count are ignored, as the producer's bincode reader does. A prefix
// promising more counts than the body holds is a DecodeError.
func (Bincode) Decode(b []byte) (model.QuantityVector, error) {
	if len(b) < lengthPrefixWidth {
		return nil, &DecodeError{Format: FormatBincode, Length: len(b), Reason: "missing length prefix"}
	}
	body := b[lengthPrefixWidth:]

	n := binary.LittleEndian.Uint64(b)
	if available := uint64(len(body) / countWidth); n > available {
		return nil, &DecodeError{
			Format: FormatBincode,
			Length: len(b),
			Reason: fmt.Sprintf("length prefix %d exceeds %d encoded counts", n, available),
		}
	}
	return readCounts(body[:n*countWidth]), nil
}
