// Package payload encodes and decodes the quantity vector stored in a
// withdrawal record's payload column.
package payload

import (
	"errors"
	"fmt"

	"github.com/ericfisherdev/fishledger/internal/domain/model"
)

// ErrDecode is matched by every DecodeError via errors.Is.
var ErrDecode = errors.New("decode payload")

// DecodeError reports a payload whose bytes cannot be read as a quantity vector.
type DecodeError struct {
	Format Format
	Length int
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s payload (%d bytes): %s", e.Format, e.Length, e.Reason)
}

// Is lets errors.Is(err, ErrDecode) match any DecodeError.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// Format identifies a payload layout.
type Format string

const (
	// FormatRaw is a bare array of little-endian uint32 counts; the element
	// count is the byte length divided by four.
	FormatRaw Format = "raw"
	// FormatBincode prefixes the same array with a little-endian uint64
	// element count, the layout the game server's bincode serializer writes.
	FormatBincode Format = "bincode"
)

// Codec converts a quantity vector to and from its stored bytes.
type Codec interface {
	Format() Format
	Encode(v model.QuantityVector) []byte
	Decode(b []byte) (model.QuantityVector, error)
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatRaw, FormatBincode:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown payload format %q: must be %q or %q", s, FormatRaw, FormatBincode)
	}
}

// ForFormat returns the codec for f.
func ForFormat(f Format) (Codec, error) {
	switch f {
	case FormatRaw:
		return Raw{}, nil
	case FormatBincode:
		return Bincode{}, nil
	default:
		return nil, fmt.Errorf("unknown payload format %q", f)
	}
}
