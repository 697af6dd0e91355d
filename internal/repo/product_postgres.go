package repo

import (
	"context"
	"database/sql"
	"errors"

	models "github.com/rogerio-castellano/backoffice-analytics/internal/models"
)

const productColumns = `id, title, category, brand, price::float8, rating::float8, stock`

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func scanProduct(s scanner) (models.Product, error) {
	var p models.Product
	err := s.Scan(&p.ID, &p.Title, &p.Category, &p.Brand, &p.Price, &p.Rating, &p.Stock)
	return p, err
}

func (r *PostgresProductRepository) GetAll() ([]models.Product, error) {
	return queryRows(r.db, `SELECT `+productColumns+` FROM products ORDER BY position`, nil, scanProduct)
}

func (r *PostgresProductRepository) GetByID(id string) (models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Filter(pf ProductFilter) ([]models.Product, int, error) {
	var w whereClause
	if pf.Search != "" {
		w.add("(LOWER(title) LIKE $%[1]d OR LOWER(id) LIKE $%[1]d)", likePattern(pf.Search))
	}
	if active(pf.Category) {
		w.add("category = $%[1]d", pf.Category)
	}
	switch pf.Stock {
	case StockIn:
		w.conds = append(w.conds, "stock > 0")
	case StockOut:
		w.conds = append(w.conds, "stock = 0")
	}
	return filterPage(r.db, productColumns, "products", "position", &w, pf.Offset, pf.Limit, scanProduct)
}
