package handlers_integrated_test_suite

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"testing"

	api "github.com/rogerio-castellano/backoffice-analytics/internal/http"
	handler "github.com/rogerio-castellano/backoffice-analytics/internal/http/handlers"
	"github.com/rogerio-castellano/backoffice-analytics/internal/models"
)

func TestAuthFlow(t *testing.T) {
	t.Cleanup(clearAllUsersExceptAdmin)
	r := api.NewRouter()

	t.Run("Register persists the user", func(t *testing.T) {
		req := handler.RegisterRequest{Username: "pg_user", Password: "password1", Email: "pg@example.com"}
		if w := send(r, http.MethodPost, "/register", req, ""); w.Code != http.StatusCreated {
			t.Fatalf("expected 201 Created, got %d", w.Code)
		}
		if _, err := userRepo.GetByUsername("PG_USER"); err != nil {
			t.Errorf("expected stored user: %v", err)
		}
	})

	t.Run("Duplicate username is a conflict", func(t *testing.T) {
		req := handler.RegisterRequest{Username: "pg_user", Password: "password1"}
		if w := send(r, http.MethodPost, "/register", req, ""); w.Code != http.StatusConflict {
			t.Errorf("expected 409 Conflict, got %d", w.Code)
		}
	})

	t.Run("Profile update is stored", func(t *testing.T) {
		userToken, err := generateToken(r, "pg_user", "password1")
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}
		profile := handler.ProfileRequest{Name: "Pg User", Email: "pg.user@example.com"}
		if w := send(r, http.MethodPut, "/me", profile, userToken); w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		stored, _ := userRepo.GetByUsername("pg_user")
		if stored.Name != "Pg User" || stored.Email != "pg.user@example.com" {
			t.Errorf("unexpected stored profile %+v", stored)
		}
	})
}

func TestOrders_FromPostgres(t *testing.T) {
	r := api.NewRouter()

	w := get(r, "/orders?status=Cancelled")
	var resp handler.OrdersSearchResult
	json.NewDecoder(w.Body).Decode(&resp)
	if len(resp.Data) != 1 || resp.Data[0].ID != "o1004" || resp.Data[0].Status != models.StatusCanceled {
		t.Errorf("unexpected canceled orders %+v", resp.Data)
	}

	w = get(r, "/orders?offset=1&limit=2")
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Meta.TotalCount != 5 || len(resp.Data) != 2 || resp.Data[0].ID != "o1002" {
		t.Errorf("unexpected page %+v (total %d)", resp.Data, resp.Meta.TotalCount)
	}

	w = get(r, "/orders/o1002")
	var detail handler.OrderDetailResponse
	json.NewDecoder(w.Body).Decode(&detail)
	if detail.Total.Float() != 40 || detail.ProductTitle != "Desk Lamp" {
		t.Errorf("unexpected order detail %+v", detail)
	}

	w = get(r, "/orders/export")
	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil || len(records) != 6 {
		t.Errorf("expected header and 5 rows, got %d (%v)", len(records), err)
	}
}

func TestCustomersAndProducts_FromPostgres(t *testing.T) {
	r := api.NewRouter()

	w := get(r, "/customers?search=bruno")
	var customers handler.CustomersSearchResult
	json.NewDecoder(w.Body).Decode(&customers)
	if len(customers.Data) != 1 || customers.Data[0].TotalSpent != 390 || customers.Data[0].Tier != "Regular" {
		t.Errorf("unexpected customers %+v", customers.Data)
	}

	w = get(r, "/products?stock=out")
	var products handler.ProductsSearchResult
	json.NewDecoder(w.Body).Decode(&products)
	if len(products.Data) != 1 || products.Data[0].ID != "p3" {
		t.Errorf("unexpected products %+v", products.Data)
	}

	if w := get(r, "/products/p9"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestReports_FromPostgres(t *testing.T) {
	r := api.NewRouter()

	w := get(r, "/reports/dashboard")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var dashboard handler.DashboardResponse
	json.NewDecoder(w.Body).Decode(&dashboard)
	if dashboard.KPIs[0].Value != 1680 || dashboard.RecentOrders[0].ID != "o1002" {
		t.Errorf("unexpected dashboard %+v", dashboard.KPIs)
	}

	w = get(r, "/reports/revenue")
	var revenue handler.RevenueReportResponse
	json.NewDecoder(w.Body).Decode(&revenue)
	if revenue.CategoryRevenue != 1630 {
		t.Errorf("expected 1630 category revenue, got %.2f", revenue.CategoryRevenue)
	}

	if w := send(r, http.MethodGet, "/healthz", nil, ""); w.Code != http.StatusOK {
		t.Errorf("expected healthy database, got %d", w.Code)
	}
}
