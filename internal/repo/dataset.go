package repo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rogerio-castellano/backoffice-analytics/internal/models"
)

const (
	CustomersFile = "customers.json"
	OrdersFile    = "orders.json"
	ProductsFile  = "products.json"
)

// LoadDataset reads the bundled mock data from dir. Totals and statuses are
// normalized while decoding; duplicate ids are rejected.
func LoadDataset(dir string) (models.Dataset, error) {
	var ds models.Dataset

	if err := readJSONFile(filepath.Join(dir, CustomersFile), &ds.Customers); err != nil {
		return models.Dataset{}, err
	}
	if err := readJSONFile(filepath.Join(dir, OrdersFile), &ds.Orders); err != nil {
		return models.Dataset{}, err
	}
	if err := readJSONFile(filepath.Join(dir, ProductsFile), &ds.Products); err != nil {
		return models.Dataset{}, err
	}

	if err := uniqueIDs(ds.Customers, func(c models.Customer) string { return c.ID }); err != nil {
		return models.Dataset{}, fmt.Errorf("customers: %w", err)
	}
	if err := uniqueIDs(ds.Orders, func(o models.Order) string { return o.ID }); err != nil {
		return models.Dataset{}, fmt.Errorf("orders: %w", err)
	}
	if err := uniqueIDs(ds.Products, func(p models.Product) string { return p.ID }); err != nil {
		return models.Dataset{}, fmt.Errorf("products: %w", err)
	}

	return ds, nil
}

func readJSONFile(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

func uniqueIDs[T any](records []T, id func(T) string) error {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		k := id(r)
		if _, dup := seen[k]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateID, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}
