package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/fishledger/internal/domain/model"
	"github.com/ericfisherdev/fishledger/internal/domain/port/driven"
)

func TestLookupMetrics_RecordLookup(t *testing.T) {
	m := NewLookupMetrics()

	m.RecordLookup(driven.LookupFound, model.QuantityVector{3, 0, 5})
	m.RecordLookup(driven.LookupFound, model.QuantityVector{1})
	m.RecordLookup(driven.LookupNotFound, nil)
	m.RecordLookup(driven.LookupDecodeError, nil)

	assert.InDelta(t, 2, testutil.ToFloat64(m.lookups.WithLabelValues("found")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.lookups.WithLabelValues("not_found")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.lookups.WithLabelValues("decode_error")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.lookups.WithLabelValues("store_error")), 0)

	assert.InDelta(t, 4, testutil.ToFloat64(m.units.WithLabelValues("0")), 0)
	assert.InDelta(t, 5, testutil.ToFloat64(m.units.WithLabelValues("2")), 0)
	// Zero counts never create a series.
	assert.Equal(t, 2, testutil.CollectAndCount(m.units))
}

func TestLookupMetrics_WriteTextfile(t *testing.T) {
	m := NewLookupMetrics()
	m.RecordLookup(driven.LookupFound, model.QuantityVector{0, 2})

	path := filepath.Join(t.TempDir(), "fishledger.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, `fishledger_lookups_total{outcome="found"} 1`)
	assert.Contains(t, text, `fishledger_lookups_total{outcome="not_found"} 0`)
	assert.Contains(t, text, `fishledger_looked_up_units_total{species_index="1"} 2`)
	assert.True(t, strings.HasPrefix(text, "# HELP"))
}

func TestLookupMetrics_WriteTextfile_BadDir(t *testing.T) {
	m := NewLookupMetrics()

	err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write metrics textfile")
}
