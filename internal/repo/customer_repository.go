package repo

import "github.com/rogerio-castellano/backoffice-analytics/internal/models"

// CustomerRepository provides read access to customers.
type CustomerRepository interface {
	GetAll() ([]models.Customer, error)
	GetByID(id string) (models.Customer, error)
	Filter(cf CustomerFilter) ([]models.Customer, int, error)
}
