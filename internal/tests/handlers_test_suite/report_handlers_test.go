package handlers_test_suite

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"testing"

	"github.com/rogerio-castellano/backoffice-analytics/internal/charts"
	api "github.com/rogerio-castellano/backoffice-analytics/internal/http"
	handler "github.com/rogerio-castellano/backoffice-analytics/internal/http/handlers"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func decodeReport(t *testing.T, path string, dst any) {
	t.Helper()
	r := api.NewRouter()

	w := get(r, path)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if err := json.NewDecoder(w.Body).Decode(dst); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
}

func sliceValues(slices []charts.Slice) map[string]float64 {
	out := make(map[string]float64, len(slices))
	for _, s := range slices {
		out[s.Name] = s.Value
	}
	return out
}

func TestDashboardHandler(t *testing.T) {
	var resp handler.DashboardResponse
	decodeReport(t, "/reports/dashboard", &resp)

	expectedKPIs := []float64{1680, 5, 3, 336}
	for i, v := range expectedKPIs {
		if !almostEqual(resp.KPIs[i].Value, v) {
			t.Errorf("%s: expected %.2f, got %.2f", resp.KPIs[i].Title, v, resp.KPIs[i].Value)
		}
	}

	if len(resp.Sales) != 3 || resp.Sales[0].Month != "Jan" || resp.Sales[2].Month != "Jun" {
		t.Errorf("expected Jan, May, Jun sales points, got %+v", resp.Sales)
	}

	inventory := sliceValues(resp.Inventory)
	if inventory["In Stock"] != 2 || inventory["Low Stock"] != 1 || inventory["Out of Stock"] != 1 {
		t.Errorf("unexpected inventory %+v", resp.Inventory)
	}
	if resp.TopRated == nil || resp.TopRated.ID != "p1" {
		t.Errorf("expected p1 top rated, got %+v", resp.TopRated)
	}

	if len(resp.TopCustomers) != 3 || resp.TopCustomers[0].ID != "c1" || resp.TopCustomers[0].Orders != 2 {
		t.Errorf("unexpected top customers %+v", resp.TopCustomers)
	}
	if len(resp.RecentOrders) != 5 || resp.RecentOrders[0].ID != "o1002" || resp.RecentOrders[4].ID != "o1005" {
		t.Errorf("unexpected recent orders %+v", resp.RecentOrders)
	}
}

func TestSalesReportHandler(t *testing.T) {
	var resp handler.SalesReportResponse
	decodeReport(t, "/reports/sales", &resp)

	if len(resp.Sales) != 12 {
		t.Fatalf("expected 12 months, got %d", len(resp.Sales))
	}
	if resp.BestMonth != (charts.MonthSales{Month: "Jun", Sales: 1240}) {
		t.Errorf("unexpected best month %+v", resp.BestMonth)
	}
	if resp.WorstMonth != (charts.MonthSales{Month: "Feb", Sales: 0}) {
		t.Errorf("expected the first empty month as worst, got %+v", resp.WorstMonth)
	}
	if !almostEqual(resp.TotalRevenue, 1680) || resp.TotalOrders != 5 || !almostEqual(resp.AverageOrderValue, 336) {
		t.Errorf("unexpected totals %+v", resp)
	}
	if resp.Growth != 0 {
		t.Errorf("expected no growth between empty months, got %.2f", resp.Growth)
	}
}

func TestRevenueReportHandler(t *testing.T) {
	var resp handler.RevenueReportResponse
	decodeReport(t, "/reports/revenue", &resp)

	month := resp.KPIs[1]
	if !almostEqual(month.Value, 1240) || month.Delta == nil || !almostEqual(*month.Delta, 217.95) {
		t.Errorf("unexpected month-over-month card %+v", month)
	}
	if !almostEqual(resp.KPIs[3].Value, 2) {
		t.Errorf("expected 2 orders this month, got %.0f", resp.KPIs[3].Value)
	}

	if len(resp.History) != 3 || resp.History[0].Name != "Jan 24" || resp.History[2].Name != "Jun 24" {
		t.Errorf("unexpected history %+v", resp.History)
	}

	if !almostEqual(resp.CategoryRevenue, 1630) {
		t.Errorf("expected category revenue to exclude unknown products, got %.2f", resp.CategoryRevenue)
	}
	if len(resp.Categories) != 3 || resp.Categories[0].Name != "Electronics" {
		t.Errorf("unexpected categories %+v", resp.Categories)
	}

	if len(resp.TopProducts) != 4 || resp.TopProducts[0].ID != "p1" {
		t.Fatalf("unexpected top products %+v", resp.TopProducts)
	}
	if resp.TopProducts[2].Name != "Unknown Product" || resp.TopProducts[2].Category != "General" {
		t.Errorf("expected unknown product placeholder, got %+v", resp.TopProducts[2])
	}
}

func TestCustomerReportHandler(t *testing.T) {
	var resp handler.CustomerReportResponse
	decodeReport(t, "/reports/customers", &resp)

	if resp.NewCustomers != 1 || resp.ReturningCustomers != 2 {
		t.Errorf("expected 1 new and 2 returning, got %d and %d", resp.NewCustomers, resp.ReturningCustomers)
	}
	if !almostEqual(resp.TotalRevenue, 1680) || resp.TotalOrders != 5 {
		t.Errorf("unexpected totals %.2f / %d", resp.TotalRevenue, resp.TotalOrders)
	}

	segments := sliceValues(resp.Segments)
	if segments["VIP"] != 1 || segments["Regular"] != 1 || segments["Low Value"] != 1 {
		t.Errorf("unexpected segments %+v", resp.Segments)
	}
	if resp.TopSpenders[0].ID != "c1" || !almostEqual(resp.TopSpenders[0].TotalSpent, 1240) {
		t.Errorf("unexpected top spender %+v", resp.TopSpenders[0])
	}
}

func TestOrdersReportHandler(t *testing.T) {
	var resp handler.OrdersReportResponse
	decodeReport(t, "/reports/orders", &resp)

	statuses := sliceValues(resp.Statuses)
	expected := map[string]float64{"Pending": 1, "Shipped": 1, "Delivered": 2, "Canceled": 1}
	if len(statuses) != len(expected) {
		t.Fatalf("expected %d statuses, got %+v", len(expected), resp.Statuses)
	}
	for status, count := range expected {
		if statuses[status] != count {
			t.Errorf("%s: expected %.0f, got %.0f", status, count, statuses[status])
		}
	}

	if len(resp.Weekdays) != 7 || resp.Weekdays[1].Orders != 4 || resp.Weekdays[4].Orders != 1 {
		t.Errorf("unexpected weekday volume %+v", resp.Weekdays)
	}
	if !almostEqual(resp.KPIs[3].Value, 40) {
		t.Errorf("expected 40%% success rate, got %.2f", resp.KPIs[3].Value)
	}
	if len(resp.RecentOrders) != 5 {
		t.Errorf("expected 5 recent orders, got %d", len(resp.RecentOrders))
	}
}

func TestHealthHandler(t *testing.T) {
	r := api.NewRouter()

	w := send(r, http.MethodGet, "/healthz", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	handler.SetHealthCheck("broken", func(context.Context) error { return errors.New("down") })
	t.Cleanup(func() { handler.SetHealthCheck("broken", func(context.Context) error { return nil }) })

	w = send(r, http.MethodGet, "/healthz", nil, "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	var resp handler.HealthResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Status != "degraded" || resp.Checks["broken"] != "down" {
		t.Errorf("unexpected health %+v", resp)
	}
}
