package repo

import (
	"fmt"

	"github.com/rogerio-castellano/backoffice-analytics/internal/models"
)

// DatasetRepository hands the analytics layer a complete snapshot of the
// records.
type DatasetRepository interface {
	Snapshot() (models.Dataset, error)
}

// CompositeDatasetRepository assembles a snapshot from the entity
// repositories, whichever backend they use.
type CompositeDatasetRepository struct {
	customerRepo CustomerRepository
	orderRepo    OrderRepository
	productRepo  ProductRepository
}

func NewCompositeDatasetRepository() *CompositeDatasetRepository {
	return &CompositeDatasetRepository{}
}

func (c *CompositeDatasetRepository) SetRepositories(
	customerRepo CustomerRepository,
	orderRepo OrderRepository,
	productRepo ProductRepository,
) {
	c.customerRepo = customerRepo
	c.orderRepo = orderRepo
	c.productRepo = productRepo
}

// Snapshot implements DatasetRepository.
func (c *CompositeDatasetRepository) Snapshot() (models.Dataset, error) {
	var ds models.Dataset
	var err error

	if ds.Customers, err = c.customerRepo.GetAll(); err != nil {
		return models.Dataset{}, fmt.Errorf("failed to load customers: %w", err)
	}
	if ds.Orders, err = c.orderRepo.GetAll(); err != nil {
		return models.Dataset{}, fmt.Errorf("failed to load orders: %w", err)
	}
	if ds.Products, err = c.productRepo.GetAll(); err != nil {
		return models.Dataset{}, fmt.Errorf("failed to load products: %w", err)
	}
	return ds, nil
}
