// Package charts reshapes analytics results into the field names and ordering
// the dashboard widgets consume. It renames and reorders; it does not compute.
package charts

import (
	"github.com/rogerio-castellano/backoffice-analytics/internal/analytics"
	"github.com/rogerio-castellano/backoffice-analytics/internal/models"
)

// MonthSales is one point of the sales line chart.
type MonthSales struct {
	Month string  `json:"month"`
	Sales float64 `json:"sales"`
}

// Slice is one wedge of a pie or donut chart.
type Slice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type DayOrders struct {
	Day    string `json:"day"`
	Orders int    `json:"orders"`
}

// NamedTotal is one bar of the revenue history chart.
type NamedTotal struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

type CustomerBar struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Orders     int     `json:"orders"`
	TotalSpent float64 `json:"totalSpent"`
}

type ProductRow struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
	Share    float64 `json:"share"`
}

// KPI is a headline card. Delta is omitted for cards without a trend.
type KPI struct {
	Title string   `json:"title"`
	Value float64  `json:"value"`
	Delta *float64 `json:"delta,omitempty"`
}

func MonthlySales(months []analytics.MonthTotal) []MonthSales {
	out := make([]MonthSales, len(months))
	for i, m := range months {
		out[i] = MonthSales{Month: m.Label, Sales: m.Total}
	}
	return out
}

func WeekdayOrders(days []analytics.DayCount) []DayOrders {
	out := make([]DayOrders, len(days))
	for i, d := range days {
		out[i] = DayOrders{Day: d.Label, Orders: d.Orders}
	}
	return out
}

func StatusSlices(statuses []analytics.StatusCount) []Slice {
	out := make([]Slice, len(statuses))
	for i, s := range statuses {
		out[i] = Slice{Name: string(s.Status), Value: float64(s.Count)}
	}
	return out
}

func SegmentSlices(s analytics.Segments) []Slice {
	return []Slice{
		{Name: "VIP", Value: float64(len(s.VIP))},
		{Name: "Regular", Value: float64(len(s.Regular))},
		{Name: "Low Value", Value: float64(len(s.Low))},
	}
}

func CategorySlices(categories []analytics.CategoryTotal) []Slice {
	out := make([]Slice, len(categories))
	for i, c := range categories {
		out[i] = Slice{Name: c.Category, Value: c.Total}
	}
	return out
}

func InventorySlices(inv analytics.InventorySummary) []Slice {
	return []Slice{
		{Name: "In Stock", Value: float64(inv.InStock)},
		{Name: "Low Stock", Value: float64(inv.LowStock)},
		{Name: "Out of Stock", Value: float64(inv.OutOfStock)},
	}
}

func RevenueBars(history []analytics.PeriodTotal) []NamedTotal {
	out := make([]NamedTotal, len(history))
	for i, p := range history {
		out[i] = NamedTotal{Name: p.Label, Total: p.Total}
	}
	return out
}

func CustomerBars(customers []models.Customer) []CustomerBar {
	out := make([]CustomerBar, len(customers))
	for i, c := range customers {
		out[i] = CustomerBar{ID: c.ID, Name: c.Name, Orders: c.Orders, TotalSpent: c.TotalSpent}
	}
	return out
}

func ProductRows(products []analytics.ProductRevenue) []ProductRow {
	out := make([]ProductRow, len(products))
	for i, p := range products {
		out[i] = ProductRow{ID: p.ProductID, Name: p.Title, Category: p.Category, Revenue: p.Revenue, Share: p.Share}
	}
	return out
}

func Card(title string, value float64) KPI {
	return KPI{Title: title, Value: value}
}

func TrendCard(title string, value, delta float64) KPI {
	return KPI{Title: title, Value: value, Delta: &delta}
}
