package repo

import "github.com/rogerio-castellano/backoffice-analytics/internal/models"

// InMemoryCustomerRepository serves customers from the loaded dataset.
type InMemoryCustomerRepository struct {
	customers []models.Customer
}

func NewInMemoryCustomerRepository(customers []models.Customer) *InMemoryCustomerRepository {
	return &InMemoryCustomerRepository{customers: customers}
}

func (r *InMemoryCustomerRepository) GetAll() ([]models.Customer, error) {
	return append([]models.Customer{}, r.customers...), nil
}

func (r *InMemoryCustomerRepository) GetByID(id string) (models.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Customer{}, ErrCustomerNotFound
}

func (r *InMemoryCustomerRepository) Filter(cf CustomerFilter) ([]models.Customer, int, error) {
	filtered := []models.Customer{}
	for _, c := range r.customers {
		if cf.Search != "" &&
			!containsFold(c.Name, cf.Search) &&
			!containsFold(c.Email, cf.Search) &&
			!containsFold(c.ID, cf.Search) {
			continue
		}
		filtered = append(filtered, c)
	}
	page, total := paginate(filtered, cf.Offset, cf.Limit)
	return page, total, nil
}
