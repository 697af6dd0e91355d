package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/backoffice-analytics/internal/charts"
	repo "github.com/rogerio-castellano/backoffice-analytics/internal/repo"
)

func orderFilterFromQuery(r *http.Request) repo.OrderFilter {
	q := r.URL.Query()
	return repo.OrderFilter{
		Search:     q.Get("search"),
		Status:     q.Get("status"),
		CustomerID: q.Get("customerId"),
		ProductID:  q.Get("productId"),
	}
}

// GetOrdersHandler godoc
// @Summary Filter and paginate orders
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param search query string false "Match on order or customer id"
// @Param status query string false "Pending, Processing, Shipped, Delivered, Canceled or all"
// @Param customerId query string false "Customer ID"
// @Param productId query string false "Product ID"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} OrdersSearchResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /orders [get]
func GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := pageParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	filter := orderFilterFromQuery(r)
	filter.Offset, filter.Limit = offset, limit

	orders, total, err := orderRepo.Filter(filter)
	if err != nil {
		log.Printf("Failed to filter orders: %v", err)
		http.Error(w, "could not filter orders", http.StatusInternalServerError)
		return
	}

	respond(w, http.StatusOK, OrdersSearchResult{Data: orders, Meta: Meta{TotalCount: total}})
}

// GetOrderByIDHandler godoc
// @Summary Order with its customer and product
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} OrderDetailResponse
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /orders/{id} [get]
func GetOrderByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	order, err := orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch order", http.StatusInternalServerError)
		return
	}

	resp := OrderDetailResponse{Order: order, StatusColor: charts.StatusColor(order.Status)}

	// Orders may reference records missing from the dataset.
	if c, err := customerRepo.GetByID(order.CustomerID); err == nil {
		resp.CustomerName = c.Name
	} else if !errors.Is(err, repo.ErrCustomerNotFound) {
		log.Printf("Failed to fetch customer %s: %v", order.CustomerID, err)
	}
	if p, err := productRepo.GetByID(order.ProductID); err == nil {
		resp.ProductTitle, resp.ProductCategory = p.Title, p.Category
	} else if !errors.Is(err, repo.ErrProductNotFound) {
		log.Printf("Failed to fetch product %s: %v", order.ProductID, err)
	}

	respond(w, http.StatusOK, resp)
}

// GetOrderCalendarHandler godoc
// @Summary Orders as calendar events
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param status query string false "Order status"
// @Param customerId query string false "Customer ID"
// @Success 200 {array} charts.Event
// @Failure 500 {string} string "Internal error"
// @Router /orders/calendar [get]
func GetOrderCalendarHandler(w http.ResponseWriter, r *http.Request) {
	orders, _, err := orderRepo.Filter(orderFilterFromQuery(r))
	if err != nil {
		log.Printf("Failed to filter orders: %v", err)
		http.Error(w, "could not filter orders", http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, charts.CalendarEvents(orders))
}
