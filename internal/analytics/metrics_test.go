package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	key string
	val float64
}

func TestSum(t *testing.T) {
	rows := []row{{"a", 1.5}, {"b", math.NaN()}, {"c", 2.5}, {"d", math.Inf(1)}}
	assert.Equal(t, 4.0, Sum(rows, func(r row) float64 { return r.val }))
	assert.Equal(t, 0.0, Sum([]row{}, func(r row) float64 { return r.val }))
}

func TestCountWhere(t *testing.T) {
	rows := []row{{"a", 1}, {"b", 5}, {"c", 10}}
	assert.Equal(t, 2, CountWhere(rows, func(r row) bool { return r.val >= 5 }))
	assert.Equal(t, 0, CountWhere(nil, func(r row) bool { return true }))
}

func TestGroupBySum_KeepsFirstSeenOrder(t *testing.T) {
	rows := []row{{"z", 1}, {"a", 2}, {"z", 3}, {"m", 4}, {"a", math.NaN()}}
	g := GroupBySum(rows, func(r row) string { return r.key }, func(r row) float64 { return r.val })

	assert.Equal(t, []string{"z", "a", "m"}, g.Keys())
	assert.Equal(t, 3, g.Len())

	z, ok := g.Get("z")
	require.True(t, ok)
	assert.Equal(t, 4.0, z)

	a, _ := g.Get("a")
	assert.Equal(t, 2.0, a)

	_, ok = g.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 10.0, g.Total())
}

func TestTopN(t *testing.T) {
	rows := []row{{"a", 1}, {"b", 3}, {"c", 3}, {"d", 2}, {"e", 3}}
	value := func(r row) float64 { return r.val }

	t.Run("ties keep input order", func(t *testing.T) {
		top := TopN(rows, value, 3)
		assert.Equal(t, []row{{"b", 3}, {"c", 3}, {"e", 3}}, top)
	})

	t.Run("input is not reordered", func(t *testing.T) {
		TopN(rows, value, 2)
		assert.Equal(t, "a", rows[0].key)
	})

	t.Run("smaller than n returns everything sorted", func(t *testing.T) {
		small := []row{{"x", 1}, {"y", 9}}
		top := TopN(small, value, 5)
		assert.Len(t, top, 2)
		assert.Equal(t, "y", top[0].key)
	})

	t.Run("non-positive n", func(t *testing.T) {
		assert.Empty(t, TopN(rows, value, 0))
		assert.Empty(t, TopN(rows, value, -1))
	})
}

func TestPercentageAndAverage(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(5, 0))
	assert.Equal(t, 25.0, Percentage(1, 4))
	assert.Equal(t, 0.0, Average(100, 0))
	assert.Equal(t, 25.0, Average(100, 4))
}
