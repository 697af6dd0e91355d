package analytics

import (
	"time"

	"github.com/rogerio-castellano/backoffice-analytics/internal/models"
)

const (
	dashboardRecentOrders = 10
	reportRecentOrders    = 5
	revenueTopCategories  = 4
)

// Dashboard backs the landing page.
type Dashboard struct {
	TotalRevenue      float64
	TotalOrders       int
	TotalCustomers    int
	AverageOrderValue float64
	MonthlyRevenue    []MonthTotal
	Inventory         InventorySummary
	TopCustomers      []models.Customer
	RecentOrders      []models.Order
}

type SalesReport struct {
	Months  []MonthTotal
	Summary SalesSummary
}

type RevenueReport struct {
	TotalRevenue      float64
	Month             MonthComparison
	AverageOrderValue float64
	OrdersThisMonth   int
	ActiveCustomers   int
	History           []PeriodTotal
	Categories        []CategoryTotal
	CategoryRevenue   float64
	TopProducts       []ProductRevenue
}

type CustomerReport struct {
	Activity     CustomerActivity
	TotalRevenue float64
	TotalOrders  int
	Segments     Segments
	TopSpenders  []models.Customer
	TopBuyers    []models.Customer
}

type OrdersReport struct {
	MonthlyRevenue    []MonthTotal
	Statuses          []StatusCount
	Weekdays          []DayCount
	TotalRevenue      float64
	TotalOrders       int
	AverageOrderValue float64
	SuccessRate       float64
	RecentOrders      []models.Order
}

// BuildDashboard ranks customers on totals derived from the orders, never on
// the stored denormalized fields.
func BuildDashboard(ds models.Dataset) Dashboard {
	customers := DeriveCustomerTotals(ds.Customers, ds.Orders)
	return Dashboard{
		TotalRevenue:      TotalRevenue(ds.Orders),
		TotalOrders:       len(ds.Orders),
		TotalCustomers:    len(ds.Customers),
		AverageOrderValue: AverageOrderValue(ds.Orders),
		MonthlyRevenue:    MonthlyRevenue(ds.Orders),
		Inventory:         Inventory(ds.Products),
		TopCustomers:      TopCustomersByOrders(customers, DashboardTopN),
		RecentOrders:      RecentOrders(ds.Orders, dashboardRecentOrders),
	}
}

func BuildSalesReport(ds models.Dataset) SalesReport {
	months := CalendarYearSales(ds.Orders)
	return SalesReport{
		Months:  months,
		Summary: SummarizeSales(months, len(ds.Orders)),
	}
}

func BuildRevenueReport(ds models.Dataset, now time.Time) RevenueReport {
	byCategory := RevenueByCategory(ds.Orders, ds.Products)
	return RevenueReport{
		TotalRevenue:      TotalRevenue(ds.Orders),
		Month:             MonthOverMonth(ds.Orders, now),
		AverageOrderValue: AverageOrderValue(ds.Orders),
		OrdersThisMonth:   OrdersInMonth(ds.Orders, now),
		ActiveCustomers:   len(ds.Customers),
		History:           RevenueHistory(ds.Orders),
		Categories:        TopCategories(byCategory, revenueTopCategories),
		CategoryRevenue:   byCategory.Total(),
		TopProducts:       TopProductsByRevenue(ds.Orders, ds.Products, DashboardTopN),
	}
}

// BuildCustomerReport derives every customer total from the orders.
func BuildCustomerReport(ds models.Dataset, now time.Time) CustomerReport {
	customers := DeriveCustomerTotals(ds.Customers, ds.Orders)
	return CustomerReport{
		Activity:     SplitByActivity(customers, now),
		TotalRevenue: Sum(customers, func(c models.Customer) float64 { return c.TotalSpent }),
		TotalOrders:  int(Sum(customers, func(c models.Customer) float64 { return float64(c.Orders) })),
		Segments:     SegmentCustomers(customers),
		TopSpenders:  TopCustomersBySpend(customers, DashboardTopN),
		TopBuyers:    TopCustomersByOrders(customers, DashboardTopN),
	}
}

func BuildOrdersReport(ds models.Dataset) OrdersReport {
	return OrdersReport{
		MonthlyRevenue:    MonthlyRevenue(ds.Orders),
		Statuses:          StatusDistribution(ds.Orders),
		Weekdays:          WeekdayVolume(ds.Orders),
		TotalRevenue:      TotalRevenue(ds.Orders),
		TotalOrders:       len(ds.Orders),
		AverageOrderValue: AverageOrderValue(ds.Orders),
		SuccessRate:       SuccessRate(ds.Orders),
		RecentOrders:      RecentOrders(ds.Orders, reportRecentOrders),
	}
}
