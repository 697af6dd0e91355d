package repo

import "github.com/rogerio-castellano/backoffice-analytics/internal/models"

// InMemoryProductRepository serves the catalog from the loaded dataset.
type InMemoryProductRepository struct {
	products []models.Product
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository(products []models.Product) *InMemoryProductRepository {
	return &InMemoryProductRepository{products: products}
}

func matchesFilter(p models.Product, pf ProductFilter) bool {
	if pf.Search != "" && !containsFold(p.Title, pf.Search) && !containsFold(p.ID, pf.Search) {
		return false
	}
	if active(pf.Category) && p.Category != pf.Category {
		return false
	}
	switch pf.Stock {
	case StockIn:
		if p.Stock <= 0 {
			return false
		}
	case StockOut:
		if p.Stock != 0 {
			return false
		}
	}
	return true
}

func (r *InMemoryProductRepository) Filter(pf ProductFilter) ([]models.Product, int, error) {
	filtered := []models.Product{}
	for _, p := range r.products {
		if matchesFilter(p, pf) {
			filtered = append(filtered, p)
		}
	}
	page, total := paginate(filtered, pf.Offset, pf.Limit)
	return page, total, nil
}

// GetAll retrieves all products from the repository.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	return append([]models.Product{}, r.products...), nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id string) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}
