package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/backoffice-analytics/internal/models"
)

func sampleDataset() models.Dataset {
	return models.Dataset{
		Customers: []models.Customer{
			{ID: "c1", Name: "Ada", Joined: "2024-05-20", TotalSpent: 1},
			{ID: "c2", Name: "Bo", Joined: "2022-01-01"},
		},
		Orders: []models.Order{
			{ID: "o1", CustomerID: "c1", ProductID: "p1", Total: 900, Status: models.StatusDelivered, Date: "2024-05-02"},
			{ID: "o2", CustomerID: "c1", ProductID: "p2", Total: 200, Status: models.StatusShipped, Date: "2024-04-10"},
			{ID: "o3", CustomerID: "c2", ProductID: "gone", Total: 100, Status: models.StatusCanceled, Date: "2024-05-03"},
		},
		Products: catalog,
	}
}

func TestBuildDashboard(t *testing.T) {
	d := BuildDashboard(sampleDataset())
	assert.Equal(t, 1200.0, d.TotalRevenue)
	assert.Equal(t, 3, d.TotalOrders)
	assert.Equal(t, 2, d.TotalCustomers)
	assert.Equal(t, 400.0, d.AverageOrderValue)
	require.Len(t, d.MonthlyRevenue, 2)
	require.NotEmpty(t, d.TopCustomers)
	assert.Equal(t, "c1", d.TopCustomers[0].ID)
	assert.Equal(t, 2, d.TopCustomers[0].Orders)
	assert.Equal(t, "o3", d.RecentOrders[0].ID)
}

func TestBuildDashboard_EmptyDataset(t *testing.T) {
	d := BuildDashboard(models.Dataset{})
	assert.Equal(t, 0.0, d.AverageOrderValue)
	assert.Empty(t, d.MonthlyRevenue)
	assert.Empty(t, d.TopCustomers)
	assert.Empty(t, d.RecentOrders)
}

func TestBuildRevenueReport(t *testing.T) {
	now := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)
	r := BuildRevenueReport(sampleDataset(), now)

	assert.Equal(t, 1000.0, r.Month.Current)
	assert.Equal(t, 200.0, r.Month.Previous)
	assert.Equal(t, 400.0, r.Month.Growth)
	assert.Equal(t, 2, r.OrdersThisMonth)
	assert.Equal(t, 1100.0, r.CategoryRevenue)
	require.Len(t, r.History, 2)
	assert.Equal(t, "Apr 24", r.History[0].Label)
	require.Len(t, r.TopProducts, 3)
	assert.Equal(t, "Phone", r.TopProducts[0].Title)
}

func TestBuildCustomerReport(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	r := BuildCustomerReport(sampleDataset(), now)

	assert.Equal(t, 1, r.Activity.New)
	assert.Equal(t, 1, r.Activity.Returning)
	assert.Equal(t, 1200.0, r.TotalRevenue)
	assert.Equal(t, 3, r.TotalOrders)
	assert.Len(t, r.Segments.VIP, 1)
	assert.Len(t, r.Segments.Low, 1)
	assert.Equal(t, "c1", r.TopSpenders[0].ID)
}

func TestBuildOrdersReport(t *testing.T) {
	r := BuildOrdersReport(sampleDataset())
	assert.Equal(t, 3, r.TotalOrders)
	assert.InDelta(t, 33.333, r.SuccessRate, 0.001)
	assert.Len(t, r.Weekdays, 7)
	assert.Len(t, r.Statuses, 4)
	assert.Len(t, r.RecentOrders, 3)
}

func TestBuildSalesReport(t *testing.T) {
	r := BuildSalesReport(sampleDataset())
	require.Len(t, r.Months, 12)
	assert.Equal(t, "May", r.Summary.BestMonth.Label)
	assert.Equal(t, 1000.0, r.Summary.BestMonth.Total)
}
