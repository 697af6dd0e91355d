package repo

import "github.com/rogerio-castellano/backoffice-analytics/internal/models"

// OrderRepository provides read access to orders.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (models.Order, error)
	Filter(of OrderFilter) ([]models.Order, int, error)
}
