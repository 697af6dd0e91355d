package handlers

import (
	"log"
	"net/http"

	"github.com/rogerio-castellano/backoffice-analytics/internal/analytics"
	"github.com/rogerio-castellano/backoffice-analytics/internal/charts"
	"github.com/rogerio-castellano/backoffice-analytics/internal/models"
)

// snapshot loads the dataset every report is computed from. It writes the
// error response itself and reports whether the caller may continue.
func snapshot(w http.ResponseWriter) (models.Dataset, bool) {
	ds, err := datasetRepo.Snapshot()
	if err != nil {
		log.Printf("Failed to load dataset: %v", err)
		http.Error(w, "failed to load data", http.StatusInternalServerError)
		return models.Dataset{}, false
	}
	return ds, true
}

func monthSales(m analytics.MonthTotal) charts.MonthSales {
	return charts.MonthlySales([]analytics.MonthTotal{m})[0]
}

// GetDashboardHandler godoc
// @Summary Landing page metrics
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} DashboardResponse
// @Failure 500 {string} string "Internal error"
// @Router /reports/dashboard [get]
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	ds, ok := snapshot(w)
	if !ok {
		return
	}
	d := analytics.BuildDashboard(ds)

	respond(w, http.StatusOK, DashboardResponse{
		KPIs: []charts.KPI{
			charts.Card("Total Revenue", d.TotalRevenue),
			charts.Card("Total Orders", float64(d.TotalOrders)),
			charts.Card("Total Customers", float64(d.TotalCustomers)),
			charts.Card("Average Order Value", d.AverageOrderValue),
		},
		Sales:        charts.MonthlySales(d.MonthlyRevenue),
		Inventory:    charts.InventorySlices(d.Inventory),
		TopRated:     d.Inventory.TopRated,
		TopCustomers: charts.CustomerBars(d.TopCustomers),
		RecentOrders: d.RecentOrders,
	})
}

// GetSalesReportHandler godoc
// @Summary Calendar-year sales with best and worst month
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SalesReportResponse
// @Failure 500 {string} string "Internal error"
// @Router /reports/sales [get]
func GetSalesReportHandler(w http.ResponseWriter, r *http.Request) {
	ds, ok := snapshot(w)
	if !ok {
		return
	}
	report := analytics.BuildSalesReport(ds)
	s := report.Summary

	respond(w, http.StatusOK, SalesReportResponse{
		Sales:             charts.MonthlySales(report.Months),
		TotalRevenue:      s.TotalRevenue,
		TotalOrders:       s.TotalOrders,
		AverageOrderValue: s.AverageOrderValue,
		BestMonth:         monthSales(s.BestMonth),
		WorstMonth:        monthSales(s.WorstMonth),
		Growth:            s.Growth,
	})
}

// GetRevenueReportHandler godoc
// @Summary Revenue trends, categories and top products
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} RevenueReportResponse
// @Failure 500 {string} string "Internal error"
// @Router /reports/revenue [get]
func GetRevenueReportHandler(w http.ResponseWriter, r *http.Request) {
	ds, ok := snapshot(w)
	if !ok {
		return
	}
	report := analytics.BuildRevenueReport(ds, now())

	respond(w, http.StatusOK, RevenueReportResponse{
		KPIs: []charts.KPI{
			charts.Card("Total Revenue", report.TotalRevenue),
			charts.TrendCard("This Month", report.Month.Current, report.Month.Growth),
			charts.Card("Average Order Value", report.AverageOrderValue),
			charts.Card("Orders This Month", float64(report.OrdersThisMonth)),
			charts.Card("Active Customers", float64(report.ActiveCustomers)),
		},
		History:         charts.RevenueBars(report.History),
		Categories:      charts.CategorySlices(report.Categories),
		CategoryRevenue: report.CategoryRevenue,
		TopProducts:     charts.ProductRows(report.TopProducts),
	})
}

// GetCustomerReportHandler godoc
// @Summary Customer activity, segments and top customers
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} CustomerReportResponse
// @Failure 500 {string} string "Internal error"
// @Router /reports/customers [get]
func GetCustomerReportHandler(w http.ResponseWriter, r *http.Request) {
	ds, ok := snapshot(w)
	if !ok {
		return
	}
	report := analytics.BuildCustomerReport(ds, now())

	respond(w, http.StatusOK, CustomerReportResponse{
		NewCustomers:       report.Activity.New,
		ReturningCustomers: report.Activity.Returning,
		TotalRevenue:       report.TotalRevenue,
		TotalOrders:        report.TotalOrders,
		Segments:           charts.SegmentSlices(report.Segments),
		TopSpenders:        charts.CustomerBars(report.TopSpenders),
		TopBuyers:          charts.CustomerBars(report.TopBuyers),
	})
}

// GetOrdersReportHandler godoc
// @Summary Order volume, statuses and weekdays
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} OrdersReportResponse
// @Failure 500 {string} string "Internal error"
// @Router /reports/orders [get]
func GetOrdersReportHandler(w http.ResponseWriter, r *http.Request) {
	ds, ok := snapshot(w)
	if !ok {
		return
	}
	report := analytics.BuildOrdersReport(ds)

	respond(w, http.StatusOK, OrdersReportResponse{
		KPIs: []charts.KPI{
			charts.Card("Total Orders", float64(report.TotalOrders)),
			charts.Card("Total Revenue", report.TotalRevenue),
			charts.Card("Average Order Value", report.AverageOrderValue),
			charts.Card("Success Rate", report.SuccessRate),
		},
		Sales:        charts.MonthlySales(report.MonthlyRevenue),
		Statuses:     charts.StatusSlices(report.Statuses),
		Weekdays:     charts.WeekdayOrders(report.Weekdays),
		RecentOrders: report.RecentOrders,
	})
}
