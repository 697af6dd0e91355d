package analytics

import (
	"sort"

	"github.com/rogerio-castellano/backoffice-analytics/internal/models"
)

// LowStockLimit is the highest stock count still considered low.
const LowStockLimit = 5

// OthersLabel names the bucket that folds categories outside the top ranking.
const OthersLabel = "Others"

type CategoryTotal struct {
	Category string
	Total    float64
	Share    float64
}

type ProductRevenue struct {
	ProductID string
	Title     string
	Category  string
	Revenue   float64
	Share     float64
}

type InventorySummary struct {
	Total      int
	InStock    int
	LowStock   int
	OutOfStock int
	TopRated   *models.Product
}

func indexProducts(products []models.Product) map[string]models.Product {
	idx := make(map[string]models.Product, len(products))
	for _, p := range products {
		idx[p.ID] = p
	}
	return idx
}

// RevenueByCategory sums order totals per product category. Orders whose
// product is not in products are left out entirely: they are not attributed
// to any bucket and do not count toward Total().
func RevenueByCategory(orders []models.Order, products []models.Product) *Grouped[string] {
	idx := indexProducts(products)
	matched := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if _, ok := idx[o.ProductID]; ok {
			matched = append(matched, o)
		}
	}
	return GroupBySum(matched,
		func(o models.Order) string { return idx[o.ProductID].Category },
		orderTotal,
	)
}

// CategoryShares lists every category in first-seen order with its share of
// the matched revenue.
func CategoryShares(byCategory *Grouped[string]) []CategoryTotal {
	grand := byCategory.Total()
	out := make([]CategoryTotal, 0, byCategory.Len())
	for _, k := range byCategory.Keys() {
		v, _ := byCategory.Get(k)
		out = append(out, CategoryTotal{Category: k, Total: v, Share: Percentage(v, grand)})
	}
	return out
}

// TopCategories keeps the n highest-revenue categories and folds the rest
// into a single Others entry when their revenue is positive.
func TopCategories(byCategory *Grouped[string], n int) []CategoryTotal {
	all := CategoryShares(byCategory)
	if n < 0 {
		n = 0
	}
	top := TopN(all, func(c CategoryTotal) float64 { return c.Total }, len(all))
	if len(top) <= n {
		return top
	}

	rest := top[n:]
	out := append([]CategoryTotal{}, top[:n]...)
	others := Sum(rest, func(c CategoryTotal) float64 { return c.Total })
	if others > 0 {
		out = append(out, CategoryTotal{
			Category: OthersLabel,
			Total:    others,
			Share:    Percentage(others, byCategory.Total()),
		})
	}
	return out
}

// TopProductsByRevenue ranks product ids by summed order totals. Ids without
// a catalog entry keep their place under a placeholder title.
func TopProductsByRevenue(orders []models.Order, products []models.Product, n int) []ProductRevenue {
	idx := indexProducts(products)
	byProduct := GroupBySum(orders,
		func(o models.Order) string { return o.ProductID },
		orderTotal,
	)
	grand := TotalRevenue(orders)

	ranked := make([]ProductRevenue, 0, byProduct.Len())
	for _, id := range byProduct.Keys() {
		rev, _ := byProduct.Get(id)
		pr := ProductRevenue{
			ProductID: id,
			Title:     "Unknown Product",
			Category:  "General",
			Revenue:   rev,
			Share:     Percentage(rev, grand),
		}
		if p, ok := idx[id]; ok {
			pr.Title = p.Title
			pr.Category = p.Category
		}
		ranked = append(ranked, pr)
	}
	return TopN(ranked, func(p ProductRevenue) float64 { return p.Revenue }, n)
}

func TopProductsByRating(products []models.Product, n int) []models.Product {
	return TopN(products, func(p models.Product) float64 { return p.Rating }, n)
}

// Inventory counts stock levels across the catalog. Low stock is a subset of
// in stock.
func Inventory(products []models.Product) InventorySummary {
	s := InventorySummary{
		Total:      len(products),
		InStock:    CountWhere(products, func(p models.Product) bool { return p.Stock > 0 }),
		OutOfStock: CountWhere(products, func(p models.Product) bool { return p.Stock == 0 }),
		LowStock: CountWhere(products, func(p models.Product) bool {
			return p.Stock > 0 && p.Stock <= LowStockLimit
		}),
	}
	if top := TopProductsByRating(products, 1); len(top) == 1 {
		s.TopRated = &top[0]
	}
	return s
}

// StockLabel is the badge shown next to a product in listings.
func StockLabel(stock int) string {
	switch {
	case stock > 50:
		return "In Stock"
	case stock > 10:
		return "Low Stock"
	case stock > 0:
		return "Very Low"
	default:
		return "Out of Stock"
	}
}

// Categories returns the distinct product categories, sorted.
func Categories(products []models.Product) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range products {
		if _, ok := seen[p.Category]; ok || p.Category == "" {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}
