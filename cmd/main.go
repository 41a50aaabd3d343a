package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"kapehan"
	"kapehan/internal/client"
	"kapehan/internal/config"
	"kapehan/internal/database"
	"kapehan/internal/logger"
	"kapehan/internal/services/menu"
	"kapehan/internal/services/orders"
	"kapehan/internal/storefront/catalog"
)

func main() {
	var (
		mode       = flag.String("mode", "", "Service mode (api-server, seed-menu, warm-cache)")
		port       = flag.Int("port", 0, "HTTP port (overrides config)")
		configPath = flag.String("config", "config.yaml", "Path to config file")
	)
	flag.Parse()

	if *mode == "" {
		fmt.Fprintf(os.Stderr, "Error: --mode flag is required\n")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	log := logger.New(*mode)
	requestID := logger.GenerateRequestID()

	// Set up graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("graceful_shutdown", requestID, "Received shutdown signal")
		cancel()
	}()

	switch *mode {
	case "api-server":
		if err := runAPIServer(ctx, cfg, log); err != nil {
			log.Error("service_failed", requestID, "API server failed", err)
			os.Exit(1)
		}
	case "seed-menu":
		if err := runSeedMenu(ctx, cfg, log); err != nil {
			log.Error("service_failed", requestID, "Menu seeding failed", err)
			os.Exit(1)
		}
	case "warm-cache":
		if err := runWarmCache(ctx, cfg, log); err != nil {
			log.Error("service_failed", requestID, "Cache warming failed", err)
			os.Exit(1)
		}
	default:
		log.Error("validation_failed", requestID, fmt.Sprintf("Unknown mode: %s", *mode), nil)
		os.Exit(1)
	}

	log.Info("service_stopped", requestID, "Service stopped gracefully")
}

// runAPIServer serves the items and orders API.
func runAPIServer(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	requestID := logger.GenerateRequestID()

	db, err := setupDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	log.Info("db_connected", requestID, "Connected to PostgreSQL database")

	menuHandler := menu.NewHandler(menu.NewService(menu.NewPostgresRepository(db), log), log)
	ordersHandler := orders.NewHandler(orders.NewService(orders.NewPostgresRepository(db), log), log)

	r := chi.NewRouter()
	r.Use(logger.RequestLogger(log))
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		if err := db.Ping(req.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Mount("/api/items", menuHandler.Routes())
	r.Mount("/api/orders", ordersHandler.Routes())

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Info("service_started", requestID, fmt.Sprintf("API server started on port %d", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server_failed", requestID, "HTTP server failed", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	return server.Shutdown(shutdownCtx)
}

// runSeedMenu loads the sample menu into the database and exits.
func runSeedMenu(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	requestID := logger.GenerateRequestID()

	db, err := setupDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := menu.Seed(ctx, menu.NewPostgresRepository(db)); err != nil {
		return fmt.Errorf("failed to seed menu: %w", err)
	}

	log.Info("menu_seeded", requestID, "Sample menu loaded")
	return nil
}

// runWarmCache fetches the menu through the items API and writes a fresh
// snapshot into the shared Redis store, so storefront instances start on a
// warm cache.
func runWarmCache(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	requestID := logger.GenerateRequestID()

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr(),
		DB:   cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	api := client.New(cfg.Storefront.APIBaseURL)
	cat := catalog.New(api, catalog.NewRedisStore(rdb), log, catalog.WithTTL(cfg.CacheTTL()))

	products, err := cat.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh catalog: %w", err)
	}

	log.Info("cache_warmed", requestID, fmt.Sprintf("Cached %d products", len(products)))
	return nil
}

// setupDatabase connects to PostgreSQL and applies the embedded schema.
func setupDatabase(ctx context.Context, cfg *config.Config, log *logger.Logger) (*database.DB, error) {
	db, err := database.New(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	migrations, err := fs.Sub(kapehan.MigrationFiles, "migrations")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	if err := db.RunMigrations(ctx, migrations); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}
