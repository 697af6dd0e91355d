// Package analytics turns customer, order and product records into the
// metrics and series shown on the back-office dashboard and report pages.
//
// Every function is pure: inputs are never modified and degenerate input
// (empty slices, zero denominators, malformed fields) resolves to zero values
// rather than errors, NaN or Inf.
package analytics

import (
	"math"
	"sort"
)

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Sum adds selector(r) over records. Non-finite values contribute 0.
func Sum[T any](records []T, selector func(T) float64) float64 {
	var total float64
	for _, r := range records {
		total += finite(selector(r))
	}
	return total
}

// CountWhere counts the records matching predicate.
func CountWhere[T any](records []T, predicate func(T) bool) int {
	n := 0
	for _, r := range records {
		if predicate(r) {
			n++
		}
	}
	return n
}

// Grouped holds per-key sums in the order keys were first seen.
type Grouped[K comparable] struct {
	order []K
	sums  map[K]float64
}

func newGrouped[K comparable]() *Grouped[K] {
	return &Grouped[K]{sums: make(map[K]float64)}
}

func (g *Grouped[K]) add(key K, v float64) {
	if _, ok := g.sums[key]; !ok {
		g.order = append(g.order, key)
	}
	g.sums[key] += finite(v)
}

// Keys returns the keys in first-occurrence order.
func (g *Grouped[K]) Keys() []K {
	out := make([]K, len(g.order))
	copy(out, g.order)
	return out
}

func (g *Grouped[K]) Get(key K) (float64, bool) {
	v, ok := g.sums[key]
	return v, ok
}

func (g *Grouped[K]) Len() int {
	return len(g.order)
}

// Total is the sum across all groups.
func (g *Grouped[K]) Total() float64 {
	var total float64
	for _, k := range g.order {
		total += g.sums[k]
	}
	return total
}

// GroupBySum groups records by key and sums value per key.
func GroupBySum[T any, K comparable](records []T, key func(T) K, value func(T) float64) *Grouped[K] {
	g := newGrouped[K]()
	for _, r := range records {
		g.add(key(r), value(r))
	}
	return g
}

// TopN returns at most n records ranked by value, highest first. Ties keep
// their input order. The input slice is not reordered.
func TopN[T any](records []T, value func(T) float64, n int) []T {
	if n <= 0 || len(records) == 0 {
		return []T{}
	}
	ranked := make([]T, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return finite(value(ranked[i])) > finite(value(ranked[j]))
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Percentage returns 100*part/whole, or 0 when whole is 0.
func Percentage(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return finite(100 * part / whole)
}

// Average returns total/count, or 0 when count is 0.
func Average(total float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return finite(total / float64(count))
}
