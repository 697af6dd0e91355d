package analytics

import (
	"sort"
	"time"

	"github.com/rogerio-castellano/backoffice-analytics/internal/models"
)

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var dayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// CanonicalStatuses is the fixed set reported by the status distribution.
var CanonicalStatuses = []models.OrderStatus{
	models.StatusPending,
	models.StatusShipped,
	models.StatusDelivered,
	models.StatusCanceled,
}

// MonthTotal is the revenue of one calendar month, all years combined.
// Index is 0 for January.
type MonthTotal struct {
	Index int
	Label string
	Total float64
}

type DayCount struct {
	Weekday time.Weekday
	Label   string
	Orders  int
}

type StatusCount struct {
	Status models.OrderStatus
	Count  int
}

// PeriodTotal is the revenue of one year+month bucket.
type PeriodTotal struct {
	Year  int
	Month time.Month
	Label string
	Total float64
}

type MonthComparison struct {
	Current  float64
	Previous float64
	Growth   float64
}

type SalesSummary struct {
	TotalRevenue      float64
	TotalOrders       int
	AverageOrderValue float64
	BestMonth         MonthTotal
	WorstMonth        MonthTotal
	Growth            float64
}

func orderTotal(o models.Order) float64 {
	return o.Total.Float()
}

type datedOrder struct {
	models.Order
	at time.Time
}

// dated keeps the orders whose date parses; the rest are left out of any
// date-based aggregate.
func dated(orders []models.Order) []datedOrder {
	out := make([]datedOrder, 0, len(orders))
	for _, o := range orders {
		if t, ok := o.Time(); ok {
			out = append(out, datedOrder{Order: o, at: t})
		}
	}
	return out
}

func MonthLabel(index int) string {
	if index < 0 || index >= len(monthLabels) {
		return ""
	}
	return monthLabels[index]
}

// TotalRevenue sums every order total.
func TotalRevenue(orders []models.Order) float64 {
	return Sum(orders, orderTotal)
}

// AverageOrderValue is total revenue divided by the number of orders.
func AverageOrderValue(orders []models.Order) float64 {
	return Average(TotalRevenue(orders), len(orders))
}

// MonthlyRevenue sums totals per calendar month (UTC) and returns the months
// that had at least one order, January first.
func MonthlyRevenue(orders []models.Order) []MonthTotal {
	byMonth := GroupBySum(dated(orders),
		func(o datedOrder) int { return int(o.at.Month()) - 1 },
		func(o datedOrder) float64 { return orderTotal(o.Order) },
	)

	months := byMonth.Keys()
	sort.Ints(months)

	out := make([]MonthTotal, 0, len(months))
	for _, m := range months {
		total, _ := byMonth.Get(m)
		out = append(out, MonthTotal{Index: m, Label: monthLabels[m], Total: total})
	}
	return out
}

// CalendarYearSales returns all twelve months, zeros included.
func CalendarYearSales(orders []models.Order) []MonthTotal {
	out := make([]MonthTotal, 12)
	for i := range out {
		out[i] = MonthTotal{Index: i, Label: monthLabels[i]}
	}
	for _, m := range MonthlyRevenue(orders) {
		out[m.Index].Total = m.Total
	}
	return out
}

// SummarizeSales computes the sales report KPIs from a twelve-month series.
// Ties for best and worst month go to the earlier month. Growth compares the
// last month of the series with the one before it.
func SummarizeSales(months []MonthTotal, orderCount int) SalesSummary {
	s := SalesSummary{TotalOrders: orderCount}
	if len(months) == 0 {
		return s
	}
	s.TotalRevenue = Sum(months, func(m MonthTotal) float64 { return m.Total })
	s.AverageOrderValue = Average(s.TotalRevenue, orderCount)

	s.BestMonth, s.WorstMonth = months[0], months[0]
	for _, m := range months[1:] {
		if m.Total > s.BestMonth.Total {
			s.BestMonth = m
		}
		if m.Total < s.WorstMonth.Total {
			s.WorstMonth = m
		}
	}

	if len(months) >= 2 {
		s.Growth = GrowthRate(months[len(months)-1].Total, months[len(months)-2].Total)
	}
	return s
}

// WeekdayVolume counts orders per day of week (UTC), Sunday first. All seven
// days are present.
func WeekdayVolume(orders []models.Order) []DayCount {
	out := make([]DayCount, 7)
	for i := range out {
		out[i] = DayCount{Weekday: time.Weekday(i), Label: dayLabels[i]}
	}
	for _, o := range dated(orders) {
		out[o.at.Weekday()].Orders++
	}
	return out
}

// StatusDistribution counts orders for each canonical status, in canonical
// order. Statuses outside the canonical set are not reported.
func StatusDistribution(orders []models.Order) []StatusCount {
	out := make([]StatusCount, 0, len(CanonicalStatuses))
	for _, status := range CanonicalStatuses {
		out = append(out, StatusCount{
			Status: status,
			Count:  CountWhere(orders, func(o models.Order) bool { return o.Status == status }),
		})
	}
	return out
}

// GrowthRate is the percentage change from previous to current. It is 0 when
// previous is 0.
func GrowthRate(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return finite((current - previous) / previous * 100)
}

func sameMonth(t time.Time, year int, month time.Month) bool {
	return t.Year() == year && t.Month() == month
}

// MonthOverMonth compares revenue of now's calendar month with the month
// before it.
func MonthOverMonth(orders []models.Order, now time.Time) MonthComparison {
	now = now.UTC()
	prev := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, time.UTC)

	var c MonthComparison
	for _, o := range dated(orders) {
		switch {
		case sameMonth(o.at, now.Year(), now.Month()):
			c.Current += orderTotal(o.Order)
		case sameMonth(o.at, prev.Year(), prev.Month()):
			c.Previous += orderTotal(o.Order)
		}
	}
	c.Growth = GrowthRate(c.Current, c.Previous)
	return c
}

// OrdersInMonth counts the orders placed in now's calendar month.
func OrdersInMonth(orders []models.Order, now time.Time) int {
	now = now.UTC()
	return CountWhere(dated(orders), func(o datedOrder) bool {
		return sameMonth(o.at, now.Year(), now.Month())
	})
}

// RevenueHistory sums totals per year and month, oldest first, labelled like
// "Jan 24".
func RevenueHistory(orders []models.Order) []PeriodTotal {
	byPeriod := GroupBySum(dated(orders),
		func(o datedOrder) int { return o.at.Year()*100 + int(o.at.Month()) },
		func(o datedOrder) float64 { return orderTotal(o.Order) },
	)

	periods := byPeriod.Keys()
	sort.Ints(periods)

	out := make([]PeriodTotal, 0, len(periods))
	for _, p := range periods {
		total, _ := byPeriod.Get(p)
		year, month := p/100, time.Month(p%100)
		out = append(out, PeriodTotal{
			Year:  year,
			Month: month,
			Label: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 06"),
			Total: total,
		})
	}
	return out
}

// SuccessRate is the share of delivered orders.
func SuccessRate(orders []models.Order) float64 {
	delivered := CountWhere(orders, func(o models.Order) bool { return o.Status == models.StatusDelivered })
	return Percentage(float64(delivered), float64(len(orders)))
}

// RecentOrders returns the n newest orders. Orders without a usable date
// sort after dated ones.
func RecentOrders(orders []models.Order, n int) []models.Order {
	if n <= 0 {
		return []models.Order{}
	}
	type entry struct {
		order models.Order
		at    time.Time
		ok    bool
	}
	entries := make([]entry, len(orders))
	for i, o := range orders {
		t, ok := o.Time()
		entries[i] = entry{order: o, at: t, ok: ok}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.ok != b.ok {
			return a.ok
		}
		return a.at.After(b.at)
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	out := make([]models.Order, len(entries))
	for i, e := range entries {
		out[i] = e.order
	}
	return out
}

// OrdersForCustomer returns the customer's orders in input order.
func OrdersForCustomer(orders []models.Order, customerID string) []models.Order {
	out := []models.Order{}
	for _, o := range orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out
}

// PendingForProduct returns the pending orders of a product.
func PendingForProduct(orders []models.Order, productID string) []models.Order {
	out := []models.Order{}
	for _, o := range orders {
		if o.ProductID == productID && o.Status == models.StatusPending {
			out = append(out, o)
		}
	}
	return out
}
