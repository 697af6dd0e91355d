package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rogerio-castellano/backoffice-analytics/internal/models"
)

const orderColumns = `id, customer_id, product_id, total::float8, status, date`

type PostgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

func scanOrder(s scanner) (models.Order, error) {
	var (
		o      models.Order
		total  sql.NullFloat64
		status string
	)
	if err := s.Scan(&o.ID, &o.CustomerID, &o.ProductID, &total, &status, &o.Date); err != nil {
		return models.Order{}, err
	}
	if total.Valid {
		o.Total = models.Amount(total.Float64)
	}
	o.Status = models.NormalizeStatus(status)
	return o, nil
}

func (r *PostgresOrderRepository) GetAll() ([]models.Order, error) {
	return queryRows(r.db, `SELECT `+orderColumns+` FROM orders ORDER BY position`, nil, scanOrder)
}

func (r *PostgresOrderRepository) GetByID(id string) (models.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	o, err := scanOrder(r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrOrderNotFound
	}
	return o, err
}

func (r *PostgresOrderRepository) Filter(of OrderFilter) ([]models.Order, int, error) {
	var w whereClause
	if of.Search != "" {
		w.add("(LOWER(id) LIKE $%[1]d OR LOWER(customer_id) LIKE $%[1]d)", likePattern(of.Search))
	}
	if active(of.Status) {
		w.add("status = $%[1]d", string(models.NormalizeStatus(of.Status)))
	}
	if of.CustomerID != "" {
		w.add("customer_id = $%[1]d", of.CustomerID)
	}
	if of.ProductID != "" {
		w.add("product_id = $%[1]d", of.ProductID)
	}
	return filterPage(r.db, orderColumns, "orders", "position", &w, of.Offset, of.Limit, scanOrder)
}
