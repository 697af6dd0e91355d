package handlers

import (
	"time"

	"github.com/rogerio-castellano/backoffice-analytics/internal/charts"
	"github.com/rogerio-castellano/backoffice-analytics/internal/models"
)

type Meta struct {
	TotalCount int `json:"total_count"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type ProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type CustomerResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Orders     int     `json:"orders"`
	TotalSpent float64 `json:"totalSpent"`
	Joined     string  `json:"joined"`
	Tier       string  `json:"tier"`
}

type CustomersSearchResult struct {
	Data []CustomerResponse `json:"data"`
	Meta Meta               `json:"meta,omitempty"`
}

type CustomerDetailResponse struct {
	CustomerResponse
	OrderHistory []models.Order `json:"orderHistory"`
}

type OrdersSearchResult struct {
	Data []models.Order `json:"data"`
	Meta Meta           `json:"meta,omitempty"`
}

type OrderDetailResponse struct {
	models.Order
	CustomerName    string `json:"customerName"`
	ProductTitle    string `json:"productTitle"`
	ProductCategory string `json:"productCategory"`
	StatusColor     string `json:"statusColor"`
}

type ProductResponse struct {
	models.Product
	StockLabel string `json:"stockLabel"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta,omitempty"`
}

type ProductDetailResponse struct {
	ProductResponse
	Revenue       float64        `json:"revenue"`
	PendingOrders []models.Order `json:"pendingOrders"`
}

type DashboardResponse struct {
	KPIs         []charts.KPI         `json:"kpis"`
	Sales        []charts.MonthSales  `json:"sales"`
	Inventory    []charts.Slice       `json:"inventory"`
	TopRated     *models.Product      `json:"topRated,omitempty"`
	TopCustomers []charts.CustomerBar `json:"topCustomers"`
	RecentOrders []models.Order       `json:"recentOrders"`
}

type SalesReportResponse struct {
	Sales             []charts.MonthSales `json:"sales"`
	TotalRevenue      float64             `json:"totalRevenue"`
	TotalOrders       int                 `json:"totalOrders"`
	AverageOrderValue float64             `json:"averageOrderValue"`
	BestMonth         charts.MonthSales   `json:"bestMonth"`
	WorstMonth        charts.MonthSales   `json:"worstMonth"`
	Growth            float64             `json:"growth"`
}

type RevenueReportResponse struct {
	KPIs            []charts.KPI        `json:"kpis"`
	History         []charts.NamedTotal `json:"history"`
	Categories      []charts.Slice      `json:"categories"`
	CategoryRevenue float64             `json:"categoryRevenue"`
	TopProducts     []charts.ProductRow `json:"topProducts"`
}

type CustomerReportResponse struct {
	NewCustomers       int                  `json:"newCustomers"`
	ReturningCustomers int                  `json:"returningCustomers"`
	TotalRevenue       float64              `json:"totalRevenue"`
	TotalOrders        int                  `json:"totalOrders"`
	Segments           []charts.Slice       `json:"segments"`
	TopSpenders        []charts.CustomerBar `json:"topSpenders"`
	TopBuyers          []charts.CustomerBar `json:"topBuyers"`
}

type OrdersReportResponse struct {
	KPIs         []charts.KPI        `json:"kpis"`
	Sales        []charts.MonthSales `json:"sales"`
	Statuses     []charts.Slice      `json:"statuses"`
	Weekdays     []charts.DayOrders  `json:"weekdays"`
	RecentOrders []models.Order      `json:"recentOrders"`
}

type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
