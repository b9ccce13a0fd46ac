package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(k Key, raw, unit string) Record {
	return Record{Module: k.Module, File: k.File, Binary: k.Binary, Metric: k.Metric, Value: ParseValue(raw), Unit: unit}
}

func TestIndex_Lookup(t *testing.T) {
	records := []Record{
		rec(PerfKey(MetricCopyDuration), "1000", "microseconds"),
		rec(PerfKey(MetricPoolDuration), "10", "microseconds"),
		rec(OptimizationKey(MetricAvgDirect), "0.3", "ns"),
		rec(BasicsKey(MetricLiteralPoolingWorked), "yes", ""),
		rec(WebServerKey(MetricPooledTotalTime), "12", "ms"),
	}
	ix := NewIndex(records)

	t.Run("FindsEveryLoadedKey", func(t *testing.T) {
		assert.Equal(t, len(records), ix.Len())
		for _, r := range records {
			got, ok := ix.Lookup(r.Key())
			require.True(t, ok, r.Key())
			assert.Equal(t, r, got)
		}
	})

	t.Run("AbsentKeyIsNotAFault", func(t *testing.T) {
		_, ok := ix.Lookup(Key{Module: "x", File: "y", Binary: "z", Metric: "w"})
		assert.False(t, ok)

		_, ok = ix.StrcmpDuration()
		assert.False(t, ok)

		_, ok = ix.Number(PerfKey(MetricRodataSize))
		assert.False(t, ok)
	})

	t.Run("PartialKeyDoesNotMatch", func(t *testing.T) {
		k := PerfKey(MetricCopyDuration)
		k.Binary = "other"
		_, ok := ix.Lookup(k)
		assert.False(t, ok)
	})

	t.Run("NamedAccessors", func(t *testing.T) {
		r, ok := ix.CopyDuration()
		require.True(t, ok)
		assert.Equal(t, "1000", r.Value.String())

		r, ok = ix.PoolDuration()
		require.True(t, ok)
		assert.Equal(t, "10", r.Value.String())

		r, ok = ix.AvgDirect()
		require.True(t, ok)
		assert.Equal(t, "ns", r.Unit)

		r, ok = ix.LiteralPoolingWorked()
		require.True(t, ok)
		assert.True(t, r.Value.Truthy())

		_, ok = ix.WebServer(MetricPooledTotalTime)
		assert.True(t, ok)
	})

	t.Run("NumberSkipsTextValues", func(t *testing.T) {
		_, ok := ix.Number(BasicsKey(MetricLiteralPoolingWorked))
		assert.False(t, ok)

		v, ok := ix.Number(PerfKey(MetricCopyDuration))
		assert.True(t, ok)
		assert.Equal(t, 1000.0, v)
	})
}

func TestIndex_NumberSkipsNonFinite(t *testing.T) {
	ix := NewIndex([]Record{
		rec(PerfKey(MetricCopyDuration), "NaN", "microseconds"),
		rec(PerfKey(MetricPoolDuration), "inf", "microseconds"),
		rec(PerfKey(MetricRodataSize), "-inf", "bytes"),
	})

	for _, k := range []Key{PerfKey(MetricCopyDuration), PerfKey(MetricPoolDuration), PerfKey(MetricRodataSize)} {
		_, ok := ix.Number(k)
		assert.False(t, ok, k.Metric)

		r, ok := ix.Lookup(k)
		require.True(t, ok, k.Metric)
		assert.True(t, r.Value.IsNumeric(), k.Metric)
	}
}

func TestIndex_DuplicateKeysLastWins(t *testing.T) {
	ix := NewIndex([]Record{
		rec(PerfKey(MetricCopyDuration), "1", "microseconds"),
		rec(PerfKey(MetricCopyDuration), "2", "microseconds"),
	})

	assert.Equal(t, 1, ix.Len())
	v, ok := ix.Number(PerfKey(MetricCopyDuration))
	require.True(t, ok)
	assert.Equal(t, 2.0, v)
}

func TestIndex_NilAndEmpty(t *testing.T) {
	var nilIndex *Index
	_, ok := nilIndex.Lookup(PerfKey(MetricCopyDuration))
	assert.False(t, ok)

	empty := NewIndex(nil)
	assert.Equal(t, 0, empty.Len())
	_, ok = empty.AvgTemplate()
	assert.False(t, ok)
}
