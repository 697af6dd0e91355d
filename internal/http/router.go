package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/rogerio-castellano/backoffice-analytics/docs"
	"github.com/rogerio-castellano/backoffice-analytics/internal/http/handlers"
	mw "github.com/rogerio-castellano/backoffice-analytics/internal/http/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit)

	r.Get("/healthz", handlers.HealthHandler)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Post("/register", handlers.RegisterHandler)
	r.Post("/login", handlers.LoginHandler)

	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate)

		r.Post("/logout", handlers.LogoutHandler)
		r.Get("/me", handlers.MeHandler)
		r.Put("/me", handlers.UpdateMeHandler)

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", handlers.GetCustomersHandler)
			r.Get("/{id}", handlers.GetCustomerByIDHandler)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", handlers.GetOrdersHandler)
			r.Get("/calendar", handlers.GetOrderCalendarHandler)
			r.Get("/export", handlers.ExportOrdersHandler)
			r.Get("/{id}", handlers.GetOrderByIDHandler)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", handlers.GetProductsHandler)
			r.Get("/categories", handlers.GetCategoriesHandler)
			r.Get("/{id}", handlers.GetProductByIDHandler)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/dashboard", handlers.GetDashboardHandler)
			r.Get("/sales", handlers.GetSalesReportHandler)
			r.Get("/revenue", handlers.GetRevenueReportHandler)
			r.Get("/customers", handlers.GetCustomerReportHandler)
			r.Get("/orders", handlers.GetOrdersReportHandler)
		})
	})

	return r
}
