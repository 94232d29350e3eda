package application

import (
	"strconv"
	"strings"

	"github.com/ericfisherdev/fishledger/internal/domain/model"
)

// Cell is one position of a decoded vector with its display text.
type Cell struct {
	Index        int
	Quantity     uint32
	IndexText    string
	QuantityText string
}

// Cells pairs every index of v with its quantity and display text.
func Cells(v model.QuantityVector) []Cell {
	cells := make([]Cell, len(v))
	for i, q := range v {
		cells[i] = Cell{
			Index:        i,
			Quantity:     q,
			IndexText:    strconv.Itoa(i),
			QuantityText: PadQuantity(i, q),
		}
	}
	return cells
}

// PadQuantity formats q for the quantity list. Once the index has two digits,
// single-digit quantities get a leading zero so the columns line up with the
// index list.
func PadQuantity(index int, q uint32) string {
	s := strconv.FormatUint(uint64(q), 10)
	if index >= 10 && q < 10 {
		return "0" + s
	}
	return s
}

// IndexList renders the indexes of v as "[0, 1, 2]".
func IndexList(v model.QuantityVector) string {
	parts := make([]string, len(v))
	for i := range v {
		parts[i] = strconv.Itoa(i)
	}
	return bracket(parts)
}

// QuantityList renders the counts of v as "[3, 0, 5]" with PadQuantity applied.
func QuantityList(v model.QuantityVector) string {
	parts := make([]string, len(v))
	for i, q := range v {
		parts[i] = PadQuantity(i, q)
	}
	return bracket(parts)
}

// Summary renders "<quantity> <name>" for every non-zero count in index
// order, joined by ", ". Indexes past the catalog use UnknownSpeciesName.
func Summary(v model.QuantityVector) string {
	var parts []string
	for i, q := range v {
		if q == 0 {
			continue
		}
		parts = append(parts, strconv.FormatUint(uint64(q), 10)+" "+displayName(i))
	}
	return strings.Join(parts, ", ")
}

// UnknownSpeciesName is the summary text for an index with no catalog entry.
func UnknownSpeciesName(index int) string {
	return "unknown species #" + strconv.Itoa(index)
}

func displayName(index int) string {
	name, err := model.SpeciesName(index)
	if err != nil {
		return UnknownSpeciesName(index)
	}
	return name
}

func bracket(parts []string) string {
	return "[" + strings.Join(parts, ", ") + "]"
}
