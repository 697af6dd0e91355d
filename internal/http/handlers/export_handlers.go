package handlers

import (
	"encoding/csv"
	"log"
	"net/http"
	"strconv"

	"github.com/rogerio-castellano/backoffice-analytics/internal/models"
)

var orderCSVHeader = []string{"id", "customerId", "productId", "total", "status", "date"}

func orderCSVRecord(o models.Order) []string {
	return []string{
		o.ID,
		o.CustomerID,
		o.ProductID,
		strconv.FormatFloat(o.Total.Float(), 'f', 2, 64),
		string(o.Status),
		o.Date,
	}
}

// ExportOrdersHandler godoc
// @Summary Export orders as CSV
// @Description Accepts the same filters as the order listing, without pagination.
// @Tags orders
// @Security BearerAuth
// @Produce text/csv
// @Param search query string false "Match on order or customer id"
// @Param status query string false "Order status"
// @Param customerId query string false "Customer ID"
// @Param productId query string false "Product ID"
// @Success 200 {file} file
// @Failure 500 {string} string "Internal error"
// @Router /orders/export [get]
func ExportOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, _, err := orderRepo.Filter(orderFilterFromQuery(r))
	if err != nil {
		log.Printf("Failed to filter orders: %v", err)
		http.Error(w, "could not filter orders", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="orders.csv"`)

	writer := csv.NewWriter(w)
	if err := writer.Write(orderCSVHeader); err != nil {
		log.Printf("Failed to write CSV header: %v", err)
		return
	}
	for _, o := range orders {
		if err := writer.Write(orderCSVRecord(o)); err != nil {
			log.Printf("Failed to write CSV record: %v", err)
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Printf("Failed to flush CSV: %v", err)
	}
}
