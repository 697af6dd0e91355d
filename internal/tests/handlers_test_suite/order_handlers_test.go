package handlers_test_suite

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/rogerio-castellano/backoffice-analytics/internal/charts"
	api "github.com/rogerio-castellano/backoffice-analytics/internal/http"
	handler "github.com/rogerio-castellano/backoffice-analytics/internal/http/handlers"
	"github.com/rogerio-castellano/backoffice-analytics/internal/models"
)

func TestGetOrdersHandler_Filters(t *testing.T) {
	r := api.NewRouter()

	tests := []struct {
		name        string
		query       string
		expectedIDs []string
	}{
		{"all", "", []string{"o1001", "o1002", "o1003", "o1004", "o1005"}},
		{"canonical status", "?status=Canceled", []string{"o1004"}},
		{"legacy spelling", "?status=Cancelled", []string{"o1004"}},
		{"status all", "?status=all", []string{"o1001", "o1002", "o1003", "o1004", "o1005"}},
		{"search by customer", "?search=c2", []string{"o1003", "o1004"}},
		{"by product", "?productId=p1", []string{"o1001", "o1004"}},
		{"paged", "?offset=3&limit=5", []string{"o1004", "o1005"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, "/orders"+tt.query)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 OK, got %d", w.Code)
			}
			var resp handler.OrdersSearchResult
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			if len(resp.Data) != len(tt.expectedIDs) {
				t.Fatalf("expected %d orders, got %d", len(tt.expectedIDs), len(resp.Data))
			}
			for i, id := range tt.expectedIDs {
				if resp.Data[i].ID != id {
					t.Errorf("expected %s at %d, got %s", id, i, resp.Data[i].ID)
				}
			}
		})
	}
}

func TestGetOrdersHandler_InvalidPagination(t *testing.T) {
	r := api.NewRouter()
	for _, q := range []string{"?limit=abc", "?offset=x&limit=2", "?limit=-3"} {
		if w := get(r, "/orders"+q); w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400 Bad Request, got %d", q, w.Code)
		}
	}
}

func TestGetOrdersHandler_NormalizesRecords(t *testing.T) {
	r := api.NewRouter()

	w := get(r, "/orders?search=o1002")
	var resp handler.OrdersSearchResult
	json.NewDecoder(w.Body).Decode(&resp)

	if len(resp.Data) != 1 {
		t.Fatalf("expected 1 order, got %d", len(resp.Data))
	}
	if resp.Data[0].Total.Float() != 40 {
		t.Errorf("expected string total coerced to 40, got %v", resp.Data[0].Total)
	}
}

func TestGetOrderByIDHandler(t *testing.T) {
	r := api.NewRouter()

	w := get(r, "/orders/o1004")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handler.OrderDetailResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if resp.Status != models.StatusCanceled {
		t.Errorf("expected status Canceled, got %s", resp.Status)
	}
	if resp.CustomerName != "Bruno Lima" || resp.ProductTitle != "Laptop Pro" || resp.ProductCategory != "Electronics" {
		t.Errorf("unexpected joins %+v", resp)
	}
	if resp.StatusColor != "#ef4444" {
		t.Errorf("expected canceled color, got %s", resp.StatusColor)
	}
}

func TestGetOrderByIDHandler_UnknownProduct(t *testing.T) {
	r := api.NewRouter()

	w := get(r, "/orders/o1005")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handler.OrderDetailResponse
	json.NewDecoder(w.Body).Decode(&resp)

	if resp.ProductTitle != "" {
		t.Errorf("expected no product title, got %q", resp.ProductTitle)
	}
	if resp.CustomerName != "Carla Dias" {
		t.Errorf("expected Carla Dias, got %q", resp.CustomerName)
	}
}

func TestGetOrderByIDHandler_NotFound(t *testing.T) {
	r := api.NewRouter()
	if w := get(r, "/orders/o9999"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestGetOrderCalendarHandler(t *testing.T) {
	r := api.NewRouter()

	w := get(r, "/orders/calendar")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var events []charts.Event
	if err := json.NewDecoder(w.Body).Decode(&events); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(events) != 5 {
		t.Fatalf("expected 5 events, got %d", len(events))
	}
	if events[0].Title != "Order #o1001" || events[0].Color != "#10b981" {
		t.Errorf("unexpected first event %+v", events[0])
	}

	w = get(r, "/orders/calendar?status=Pending")
	json.NewDecoder(w.Body).Decode(&events)
	if len(events) != 1 || events[0].ID != "o1002" {
		t.Errorf("expected only o1002, got %+v", events)
	}
}

func TestExportOrdersHandler(t *testing.T) {
	r := api.NewRouter()

	w := get(r, "/orders/export")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("expected text/csv, got %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "orders.csv") {
		t.Errorf("expected attachment filename, got %s", cd)
	}

	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(records) != 6 {
		t.Fatalf("expected header and 5 rows, got %d", len(records))
	}
	if strings.Join(records[0], ",") != "id,customerId,productId,total,status,date" {
		t.Errorf("unexpected header %v", records[0])
	}
	if got := records[2]; got[0] != "o1002" || got[3] != "40.00" || got[4] != "Pending" {
		t.Errorf("unexpected row %v", got)
	}
}

func TestExportOrdersHandler_Filtered(t *testing.T) {
	r := api.NewRouter()

	w := get(r, "/orders/export?customerId=c1")
	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("expected header and 2 rows, got %d", len(records))
	}
}
