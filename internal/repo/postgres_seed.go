package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rogerio-castellano/backoffice-analytics/internal/models"
)

// SeedPostgres copies a dataset into empty tables, keeping record order.
// Rows whose id already exists are left untouched.
func SeedPostgres(ctx context.Context, db *sql.DB, ds models.Dataset) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, c := range ds.Customers {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO customers (id, name, email, orders, total_spent, joined) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Name, c.Email, c.Orders, c.TotalSpent, c.Joined); err != nil {
			return fmt.Errorf("failed to seed customer %s: %w", c.ID, err)
		}
	}

	for _, o := range ds.Orders {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO orders (id, customer_id, product_id, total, status, date) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (id) DO NOTHING`,
			o.ID, o.CustomerID, o.ProductID, o.Total.Float(), string(o.Status), o.Date); err != nil {
			return fmt.Errorf("failed to seed order %s: %w", o.ID, err)
		}
	}

	for _, p := range ds.Products {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO products (id, title, category, brand, price, rating, stock) VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT (id) DO NOTHING`,
			p.ID, p.Title, p.Category, p.Brand, p.Price, p.Rating, p.Stock); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.ID, err)
		}
	}

	return tx.Commit()
}
