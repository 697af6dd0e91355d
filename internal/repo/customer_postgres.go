package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rogerio-castellano/backoffice-analytics/internal/models"
)

const customerColumns = `id, name, email, orders, total_spent::float8, joined`

type PostgresCustomerRepository struct {
	db *sql.DB
}

func NewPostgresCustomerRepository(db *sql.DB) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{db: db}
}

func scanCustomer(s scanner) (models.Customer, error) {
	var c models.Customer
	err := s.Scan(&c.ID, &c.Name, &c.Email, &c.Orders, &c.TotalSpent, &c.Joined)
	return c, err
}

func (r *PostgresCustomerRepository) GetAll() ([]models.Customer, error) {
	return queryRows(r.db, `SELECT `+customerColumns+` FROM customers ORDER BY position`, nil, scanCustomer)
}

func (r *PostgresCustomerRepository) GetByID(id string) (models.Customer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	c, err := scanCustomer(r.db.QueryRowContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Customer{}, ErrCustomerNotFound
	}
	return c, err
}

func (r *PostgresCustomerRepository) Filter(cf CustomerFilter) ([]models.Customer, int, error) {
	var w whereClause
	if cf.Search != "" {
		w.add("(LOWER(name) LIKE $%[1]d OR LOWER(email) LIKE $%[1]d OR LOWER(id) LIKE $%[1]d)", likePattern(cf.Search))
	}
	return filterPage(r.db, customerColumns, "customers", "position", &w, cf.Offset, cf.Limit, scanCustomer)
}
