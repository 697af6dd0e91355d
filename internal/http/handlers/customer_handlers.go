package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/backoffice-analytics/internal/analytics"
	"github.com/rogerio-castellano/backoffice-analytics/internal/models"
	repo "github.com/rogerio-castellano/backoffice-analytics/internal/repo"
)

func toCustomerResponse(c models.Customer) CustomerResponse {
	return CustomerResponse{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Orders:     c.Orders,
		TotalSpent: c.TotalSpent,
		Joined:     c.Joined,
		Tier:       string(analytics.TierFor(c.TotalSpent)),
	}
}

// GetCustomersHandler godoc
// @Summary Filter and paginate customers
// @Description Order counts and spend are derived from the order records.
// @Tags customers
// @Security BearerAuth
// @Produce json
// @Param search query string false "Match on name or email"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} CustomersSearchResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /customers [get]
func GetCustomersHandler(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := pageParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	customers, total, err := customerRepo.Filter(repo.CustomerFilter{
		Search: r.URL.Query().Get("search"),
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		log.Printf("Failed to filter customers: %v", err)
		http.Error(w, "could not filter customers", http.StatusInternalServerError)
		return
	}

	orders, err := orderRepo.GetAll()
	if err != nil {
		log.Printf("Failed to fetch orders: %v", err)
		http.Error(w, "could not fetch orders", http.StatusInternalServerError)
		return
	}

	resp := CustomersSearchResult{
		Data: make([]CustomerResponse, 0, len(customers)),
		Meta: Meta{TotalCount: total},
	}
	for _, c := range analytics.DeriveCustomerTotals(customers, orders) {
		resp.Data = append(resp.Data, toCustomerResponse(c))
	}
	respond(w, http.StatusOK, resp)
}

// GetCustomerByIDHandler godoc
// @Summary Customer profile with order history
// @Tags customers
// @Security BearerAuth
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} CustomerDetailResponse
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /customers/{id} [get]
func GetCustomerByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	customer, err := customerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrCustomerNotFound) {
			http.Error(w, "customer not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch customer", http.StatusInternalServerError)
		return
	}

	orders, err := orderRepo.GetAll()
	if err != nil {
		log.Printf("Failed to fetch orders of customer %s: %v", id, err)
		http.Error(w, "could not fetch orders", http.StatusInternalServerError)
		return
	}

	history := analytics.OrdersForCustomer(orders, id)
	derived := analytics.DeriveCustomerTotals([]models.Customer{customer}, history)[0]
	respond(w, http.StatusOK, CustomerDetailResponse{
		CustomerResponse: toCustomerResponse(derived),
		OrderHistory:     analytics.RecentOrders(history, len(history)),
	})
}
