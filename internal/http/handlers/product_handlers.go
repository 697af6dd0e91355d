package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/backoffice-analytics/internal/analytics"
	models "github.com/rogerio-castellano/backoffice-analytics/internal/models"
	repo "github.com/rogerio-castellano/backoffice-analytics/internal/repo"
)

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{Product: p, StockLabel: analytics.StockLabel(p.Stock)}
}

// GetProductsHandler godoc
// @Summary Filter and paginate products
// @Tags products
// @Security BearerAuth
// @Produce json
// @Param search query string false "Match on title or id"
// @Param category query string false "Category or all"
// @Param stock query string false "in, out or all"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := pageParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	q := r.URL.Query()
	stock := strings.ToLower(q.Get("stock"))
	switch stock {
	case "", "all", repo.StockIn, repo.StockOut:
	default:
		http.Error(w, "stock must be in, out or all", http.StatusBadRequest)
		return
	}

	products, total, err := productRepo.Filter(repo.ProductFilter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Stock:    stock,
		Offset:   offset,
		Limit:    limit,
	})
	if err != nil {
		log.Printf("Failed to filter products: %v", err)
		http.Error(w, "could not filter products", http.StatusInternalServerError)
		return
	}

	resp := ProductsSearchResult{
		Data: make([]ProductResponse, len(products)),
		Meta: Meta{TotalCount: total},
	}
	for i, p := range products {
		resp.Data[i] = toProductResponse(p)
	}
	respond(w, http.StatusOK, resp)
}

// GetProductByIDHandler godoc
// @Summary Product with revenue and pending orders
// @Tags products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ProductDetailResponse
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	orders, _, err := orderRepo.Filter(repo.OrderFilter{ProductID: id})
	if err != nil {
		log.Printf("Failed to fetch orders of product %s: %v", id, err)
		http.Error(w, "could not fetch orders", http.StatusInternalServerError)
		return
	}

	respond(w, http.StatusOK, ProductDetailResponse{
		ProductResponse: toProductResponse(product),
		Revenue:         analytics.TotalRevenue(orders),
		PendingOrders:   analytics.PendingForProduct(orders, id),
	})
}

// GetCategoriesHandler godoc
// @Summary Distinct product categories
// @Tags products
// @Security BearerAuth
// @Produce json
// @Success 200 {array} string
// @Failure 500 {string} string "Internal error"
// @Router /products/categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, analytics.Categories(products))
}
