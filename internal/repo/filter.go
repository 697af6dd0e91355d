package repo

import "strings"

type CustomerFilter struct {
	Search string
	Offset *int
	Limit  *int
}

type OrderFilter struct {
	Search     string
	Status     string
	CustomerID string
	ProductID  string
	Offset     *int
	Limit      *int
}

type ProductFilter struct {
	Search   string
	Category string
	// Stock is "in", "out" or empty for all.
	Stock  string
	Offset *int
	Limit  *int
}

const (
	StockIn  = "in"
	StockOut = "out"
)

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// active reports whether a listing filter value narrows the result. The UI
// sends "all" for an unset select.
func active(v string) bool {
	return v != "" && !strings.EqualFold(v, "all")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// paginate slices a filtered result; the total is the size before paging.
func paginate[T any](filtered []T, offset, limit *int) ([]T, int) {
	total := len(filtered)

	if offset != nil && *offset > total {
		return []T{}, total
	}

	start := 0
	if offset != nil {
		start = clamp(*offset, 0, total)
	}

	end := total
	if limit != nil && *limit > 0 {
		end = clamp(start+*limit, start, total)
	}

	return filtered[start:end], total
}
