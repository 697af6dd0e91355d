package repo

import "github.com/rogerio-castellano/backoffice-analytics/internal/models"

// InMemoryOrderRepository serves orders from the loaded dataset.
type InMemoryOrderRepository struct {
	orders []models.Order
}

func NewInMemoryOrderRepository(orders []models.Order) *InMemoryOrderRepository {
	return &InMemoryOrderRepository{orders: orders}
}

func (r *InMemoryOrderRepository) GetAll() ([]models.Order, error) {
	return append([]models.Order{}, r.orders...), nil
}

func (r *InMemoryOrderRepository) GetByID(id string) (models.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func matchesOrder(o models.Order, of OrderFilter) bool {
	if of.Search != "" && !containsFold(o.ID, of.Search) && !containsFold(o.CustomerID, of.Search) {
		return false
	}
	if active(of.Status) && o.Status != models.NormalizeStatus(of.Status) {
		return false
	}
	if of.CustomerID != "" && o.CustomerID != of.CustomerID {
		return false
	}
	if of.ProductID != "" && o.ProductID != of.ProductID {
		return false
	}
	return true
}

func (r *InMemoryOrderRepository) Filter(of OrderFilter) ([]models.Order, int, error) {
	filtered := []models.Order{}
	for _, o := range r.orders {
		if matchesOrder(o, of) {
			filtered = append(filtered, o)
		}
	}
	page, total := paginate(filtered, of.Offset, of.Limit)
	return page, total, nil
}
