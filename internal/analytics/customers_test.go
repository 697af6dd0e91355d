package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/backoffice-analytics/internal/models"
)

func TestTierFor_Boundaries(t *testing.T) {
	tests := []struct {
		spent float64
		want  Tier
	}{
		{999.99, TierRegular},
		{1000.00, TierVIP},
		{300, TierRegular},
		{299.99, TierLow},
		{0, TierLow},
		{25000, TierVIP},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.spent), "spent=%v", tt.spent)
	}
}

func TestSegmentCustomers_Partitions(t *testing.T) {
	customers := []models.Customer{
		{ID: "a", TotalSpent: 999.99},
		{ID: "b", TotalSpent: 1000},
		{ID: "c", TotalSpent: 10},
		{ID: "d", TotalSpent: 450},
		{ID: "e", TotalSpent: 300},
	}

	s := SegmentCustomers(customers)
	assert.Len(t, s.VIP, 1)
	assert.Len(t, s.Regular, 3)
	assert.Len(t, s.Low, 1)

	seen := map[string]int{}
	for _, bucket := range [][]models.Customer{s.VIP, s.Regular, s.Low} {
		for _, c := range bucket {
			seen[c.ID]++
		}
	}
	require.Len(t, seen, len(customers))
	for id, n := range seen {
		assert.Equal(t, 1, n, "customer %s", id)
	}
}

func TestSegmentCustomers_Empty(t *testing.T) {
	s := SegmentCustomers(nil)
	assert.NotNil(t, s.VIP)
	assert.Empty(t, s.VIP)
	assert.Empty(t, s.Regular)
	assert.Empty(t, s.Low)
}

func TestDeriveCustomerTotals(t *testing.T) {
	customers := []models.Customer{
		{ID: "c1", Name: "Ada", Orders: 99, TotalSpent: 99999},
		{ID: "c2", Name: "Bo", Orders: 3, TotalSpent: 10},
	}
	orders := []models.Order{
		{ID: "1", CustomerID: "c1", Total: 100},
		{ID: "2", CustomerID: "c1", Total: 25.5},
		{ID: "3", CustomerID: "ghost", Total: 500},
	}

	got := DeriveCustomerTotals(customers, orders)
	require.Len(t, got, 2)
	assert.Equal(t, 125.5, got[0].TotalSpent)
	assert.Equal(t, 2, got[0].Orders)
	assert.Equal(t, 0.0, got[1].TotalSpent)
	assert.Equal(t, 0, got[1].Orders)

	assert.Equal(t, 99999.0, customers[0].TotalSpent, "input must not be modified")
}

func TestTopCustomers(t *testing.T) {
	customers := []models.Customer{
		{ID: "a", Orders: 1, TotalSpent: 500},
		{ID: "b", Orders: 7, TotalSpent: 50},
		{ID: "c", Orders: 7, TotalSpent: 900},
	}

	bySpend := TopCustomersBySpend(customers, 2)
	require.Len(t, bySpend, 2)
	assert.Equal(t, "c", bySpend[0].ID)
	assert.Equal(t, "a", bySpend[1].ID)

	byOrders := TopCustomersByOrders(customers, DashboardTopN)
	require.Len(t, byOrders, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{byOrders[0].ID, byOrders[1].ID, byOrders[2].ID})
}

func TestSplitByActivity(t *testing.T) {
	now := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	customers := []models.Customer{
		{ID: "new", Joined: "2024-03-20"},
		{ID: "edge", Joined: "2024-03-01"},
		{ID: "old", Joined: "2023-01-01"},
		{ID: "broken", Joined: "yesterday"},
	}

	got := SplitByActivity(customers, now)
	assert.Equal(t, 2, got.New)
	assert.Equal(t, 2, got.Returning)
}
