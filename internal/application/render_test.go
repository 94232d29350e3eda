package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ericfisherdev/fishledger/internal/domain/model"
)

func TestPadQuantity(t *testing.T) {
	tests := []struct {
		name  string
		index int
		q     uint32
		want  string
	}{
		{name: "single digit index, zero", index: 0, q: 0, want: "0"},
		{name: "single digit index, single digit", index: 9, q: 7, want: "7"},
		{name: "single digit index, two digits", index: 3, q: 12, want: "12"},
		{name: "two digit index, zero", index: 10, q: 0, want: "00"},
		{name: "two digit index, single digit", index: 41, q: 5, want: "05"},
		{name: "two digit index, nine", index: 66, q: 9, want: "09"},
		{name: "two digit index, ten", index: 10, q: 10, want: "10"},
		{name: "two digit index, large", index: 99, q: 4294967295, want: "4294967295"},
		{name: "three digit index, single digit", index: 120, q: 1, want: "01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PadQuantity(tt.index, tt.q))
		})
	}
}

func TestIndexList(t *testing.T) {
	assert.Equal(t, "[]", IndexList(nil))
	assert.Equal(t, "[0]", IndexList(model.QuantityVector{7}))
	assert.Equal(t, "[0, 1, 2]", IndexList(model.QuantityVector{0, 0, 0}))
}

func TestQuantityList(t *testing.T) {
	v := make(model.QuantityVector, 12)
	v[0] = 3
	v[9] = 4
	v[10] = 12
	v[11] = 1

	assert.Equal(t, "[3, 0, 0, 0, 0, 0, 0, 0, 0, 4, 12, 01]", QuantityList(v))
	assert.Equal(t, "[]", QuantityList(model.QuantityVector{}))
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name string
		v    model.QuantityVector
		want string
	}{
		{name: "empty", v: nil, want: ""},
		{name: "all zero", v: model.QuantityVector{0, 0, 0}, want: ""},
		{name: "single", v: model.QuantityVector{0, 2}, want: "2 Anglerfish"},
		{name: "skips zeros in order", v: model.QuantityVector{3, 0, 1, 0, 0, 0, 0, 0, 0, 10}, want: "3 Anchovie, 1 Arctic Char, 10 Cod"},
		{name: "last catalog entry", v: withCount(67, 66, 8), want: "8 Stone Crab"},
		{name: "beyond catalog", v: withCount(70, 69, 2), want: "2 unknown species #69"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summary(tt.v))
		})
	}
}

func TestCells(t *testing.T) {
	v := withCount(12, 11, 5)

	cells := Cells(v)

	assert.Len(t, cells, 12)
	assert.Equal(t, Cell{Index: 0, Quantity: 0, IndexText: "0", QuantityText: "0"}, cells[0])
	assert.Equal(t, Cell{Index: 10, Quantity: 0, IndexText: "10", QuantityText: "00"}, cells[10])
	assert.Equal(t, Cell{Index: 11, Quantity: 5, IndexText: "11", QuantityText: "05"}, cells[11])
}

// withCount returns a zero vector of length n with v[index] = q.
func withCount(n, index int, q uint32) model.QuantityVector {
	v := make(model.QuantityVector, n)
	v[index] = q
	return v
}
