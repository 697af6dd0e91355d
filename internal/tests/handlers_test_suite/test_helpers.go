package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/rogerio-castellano/backoffice-analytics/internal/auth"
	api "github.com/rogerio-castellano/backoffice-analytics/internal/http"
	handler "github.com/rogerio-castellano/backoffice-analytics/internal/http/handlers"
	mw "github.com/rogerio-castellano/backoffice-analytics/internal/http/middleware"
	rl "github.com/rogerio-castellano/backoffice-analytics/internal/http/rate_limiter"
	"github.com/rogerio-castellano/backoffice-analytics/internal/models"
	"github.com/rogerio-castellano/backoffice-analytics/internal/repo"
	"golang.org/x/time/rate"
)

const maxLoginAttempts = 3

var (
	token    string
	userRepo *repo.InMemoryUserRepository

	// fixedNow places the fixture in mid June 2024.
	fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
)

func init() {
	setupTestRepos("secret")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	rl.Configure(rate.Inf, 1)
	handler.SetClock(func() time.Time { return fixedNow })

	ds, err := repo.LoadDataset("testdata")
	if err != nil {
		panic(fmt.Sprintf("error loading fixture: %v", err))
	}

	customerRepo := repo.NewInMemoryCustomerRepository(ds.Customers)
	orderRepo := repo.NewInMemoryOrderRepository(ds.Orders)
	productRepo := repo.NewInMemoryProductRepository(ds.Products)
	handler.SetCustomerRepo(customerRepo)
	handler.SetOrderRepo(orderRepo)
	handler.SetProductRepo(productRepo)

	datasetRepo := repo.NewCompositeDatasetRepository()
	datasetRepo.SetRepositories(customerRepo, orderRepo, productRepo)
	handler.SetDatasetRepo(datasetRepo)

	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := auth.HashPassword(password)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: hash,
		Role:         "admin",
		Name:         "Admin",
		Email:        "admin@example.com",
	})

	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	sessions := auth.NewMemorySessionStore()
	handler.SetTokenIssuer(issuer)
	handler.SetSessionStore(sessions)
	handler.SetLockout(auth.NewMemoryLockout(maxLoginAttempts, time.Minute))
	mw.SetTokenIssuer(issuer)
	mw.SetSessionStore(sessions)
}

func generateToken(r http.Handler, username, password string) (string, error) {
	w := login(r, username, password)
	if w.Code != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d", w.Code)
	}

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func login(r http.Handler, username, password string) *httptest.ResponseRecorder {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	return send(r, http.MethodPost, "/login", payload, "")
}

func send(r http.Handler, method, path string, payload any, bearer string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	return send(r, http.MethodGet, path, nil, token)
}
