package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/rogerio-castellano/backoffice-analytics/internal/auth"
	"github.com/rogerio-castellano/backoffice-analytics/internal/config"
	"github.com/rogerio-castellano/backoffice-analytics/internal/db"
	api "github.com/rogerio-castellano/backoffice-analytics/internal/http"
	"github.com/rogerio-castellano/backoffice-analytics/internal/http/handlers"
	mw "github.com/rogerio-castellano/backoffice-analytics/internal/http/middleware"
	rl "github.com/rogerio-castellano/backoffice-analytics/internal/http/rate_limiter"
	"github.com/rogerio-castellano/backoffice-analytics/internal/redissvc"
	"github.com/rogerio-castellano/backoffice-analytics/internal/repo"
	"golang.org/x/time/rate"
)

// @title Back-office Analytics API
// @version 1.0
// @description Read-only reporting API over customers, orders and products.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	switch cfg.DataSource {
	case config.SourcePostgres:
		database := setupPostgres(ctx, cfg)
		defer database.Close()
	default:
		setupJSON(cfg)
	}

	closeSessions := setupSessions(ctx, cfg)
	defer closeSessions()

	rl.Configure(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	go rl.StartVisitorCleanupLoop()

	r := api.NewRouter()
	log.Printf("✅ Server running on %s (%s data)", cfg.HTTPAddr, cfg.DataSource)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal(err)
	}
}

func setupJSON(cfg *config.Config) {
	ds, err := repo.LoadDataset(cfg.DataDir)
	if err != nil {
		log.Fatalf("❌ Could not load dataset: %v", err)
	}
	log.Printf("Loaded %d customers, %d orders, %d products from %s",
		len(ds.Customers), len(ds.Orders), len(ds.Products), cfg.DataDir)

	wireRepositories(
		repo.NewInMemoryCustomerRepository(ds.Customers),
		repo.NewInMemoryOrderRepository(ds.Orders),
		repo.NewInMemoryProductRepository(ds.Products),
		repo.NewInMemoryUserRepository(),
	)
}

func setupPostgres(ctx context.Context, cfg *config.Config) *sql.DB {
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	if err := db.Migrate(ctx, database); err != nil {
		log.Fatal("❌ Could not migrate database:", err)
	}

	// Seed from the bundled files when they are present.
	if ds, err := repo.LoadDataset(cfg.DataDir); err == nil {
		if err := repo.SeedPostgres(ctx, database, ds); err != nil {
			log.Fatalf("❌ Could not seed database: %v", err)
		}
		log.Printf("Seeded database from %s", cfg.DataDir)
	} else {
		log.Printf("Skipping seed: %v", err)
	}

	wireRepositories(
		repo.NewPostgresCustomerRepository(database),
		repo.NewPostgresOrderRepository(database),
		repo.NewPostgresProductRepository(database),
		repo.NewPostgresUserRepository(database),
	)
	handlers.SetHealthCheck("postgres", database.PingContext)
	return database
}

func wireRepositories(
	customers repo.CustomerRepository,
	orders repo.OrderRepository,
	products repo.ProductRepository,
	users repo.UserRepository,
) {
	handlers.SetCustomerRepo(customers)
	handlers.SetOrderRepo(orders)
	handlers.SetProductRepo(products)
	handlers.SetUserRepo(users)

	datasetRepo := repo.NewCompositeDatasetRepository()
	datasetRepo.SetRepositories(customers, orders, products)
	handlers.SetDatasetRepo(datasetRepo)
}

// setupSessions prefers redis and falls back to in-process stores. The
// returned func releases the redis client, if any.
func setupSessions(ctx context.Context, cfg *config.Config) func() {
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	handlers.SetTokenIssuer(issuer)
	mw.SetTokenIssuer(issuer)

	var sessions auth.SessionStore
	var lockout auth.Lockout
	closer := func() {}

	if cfg.RedisAddr != "" {
		redisService := redissvc.NewRedisService(cfg.RedisAddr)
		if err := redisService.Ping(ctx); err != nil {
			log.Printf("Redis not available (%v), keeping sessions in memory", err)
			redisService.Close()
		} else {
			closer = func() { redisService.Close() }
			log.Printf("Redis connected (%s)", cfg.RedisAddr)
			sessions = auth.NewRedisSessionStore(redisService.Rdb())
			lockout = auth.NewRedisLockout(redisService.Rdb(), cfg.LoginMaxAttempts, cfg.LoginLockWindow)
			handlers.SetHealthCheck("redis", redisService.Ping)
		}
	}

	if sessions == nil {
		memory := auth.NewMemorySessionStore()
		go memory.StartCleaner(ctx, 30*time.Minute)
		sessions = memory
		lockout = auth.NewMemoryLockout(cfg.LoginMaxAttempts, cfg.LoginLockWindow)
	}

	handlers.SetSessionStore(sessions)
	handlers.SetLockout(lockout)
	mw.SetSessionStore(sessions)
	return closer
}
