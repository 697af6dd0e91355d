package repo

import "github.com/rogerio-castellano/backoffice-analytics/internal/models"

// ProductRepository provides read access to the catalog.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (models.Product, error)
	Filter(pf ProductFilter) ([]models.Product, int, error)
}
