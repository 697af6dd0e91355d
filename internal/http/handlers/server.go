package handlers

import (
	"context"
	"time"

	"github.com/rogerio-castellano/backoffice-analytics/internal/auth"
	repo "github.com/rogerio-castellano/backoffice-analytics/internal/repo"
)

var (
	customerRepo repo.CustomerRepository
	orderRepo    repo.OrderRepository
	productRepo  repo.ProductRepository
	userRepo     repo.UserRepository
	datasetRepo  repo.DatasetRepository

	tokenIssuer *auth.TokenIssuer
	sessions    auth.SessionStore
	lockout     auth.Lockout

	healthChecks = map[string]func(context.Context) error{}

	// now anchors the month-over-month and new-customer figures.
	now = func() time.Time { return time.Now().UTC() }
)

func SetCustomerRepo(r repo.CustomerRepository) {
	customerRepo = r
}

func SetOrderRepo(r repo.OrderRepository) {
	orderRepo = r
}

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetDatasetRepo(r repo.DatasetRepository) {
	datasetRepo = r
}

func SetTokenIssuer(t *auth.TokenIssuer) {
	tokenIssuer = t
}

func SetSessionStore(s auth.SessionStore) {
	sessions = s
}

func SetLockout(l auth.Lockout) {
	lockout = l
}

// SetHealthCheck registers a dependency probe reported by /healthz.
func SetHealthCheck(name string, check func(context.Context) error) {
	healthChecks[name] = check
}

// SetClock replaces the time source used by the time-relative reports.
func SetClock(clock func() time.Time) {
	now = clock
}
