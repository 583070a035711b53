package main

import (
	"context"
	"database/sql"
	"fmt"
	"fuel-custody-service/internal/adapters/repositories"
	"fuel-custody-service/internal/adapters/settings"
	"fuel-custody-service/internal/api"
	"fuel-custody-service/internal/config"
	"fuel-custody-service/internal/ports"
	"fuel-custody-service/internal/services"
	"fuel-custody-service/internal/sim"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis) behind ports and starts the
// HTTP server alongside the fleet simulator loop.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/custody.db")
	seedDir := config.Get("SEED_DIR", "data/seeds")
	port := config.Get("PORT", "8080")
	fleetSize := config.GetInt("FLEET_SIZE", 12)
	tickSeconds := config.GetInt("TICK_SECONDS", 3)
	lookupDelayMs := config.GetInt("LOOKUP_DELAY_MS", 400)

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(db, seedDir); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := newSettingsStore(ctx)

	txRepo := repositories.NewSQLTransactionRepository(db)
	dirRepo := repositories.NewSQLDirectoryRepository(db)

	simulator := sim.NewSimulator(fleetSize, time.Duration(tickSeconds)*time.Second)
	consignments := services.NewConsignmentService(txRepo, dirRepo, time.Duration(lookupDelayMs)*time.Millisecond)

	router := api.NewRouter(api.Deps{
		Simulator:    simulator,
		Transactions: txRepo,
		Consignments: consignments,
		Stock:        repositories.NewSQLStockRepository(db),
		Incidents:    repositories.NewSQLIncidentRepository(db),
		Directory:    dirRepo,
		Users:        repositories.NewSQLUserRepository(db),
		Settings:     store,
	})

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		simulator.Run(gctx)
		return nil
	})

	g.Go(func() error {
		log.Printf("Server listening addr=:%s fleet=%d", port, fleetSize)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	log.Println("Server stopped")
}

// newSettingsStore prefers Redis when REDIS_ADDR is set, falling back to the
// in-memory store so local runs need no extra services.
func newSettingsStore(ctx context.Context) ports.SettingsStore {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return settings.NewMemorySettingsStore(nil)
	}

	store, err := settings.NewRedisSettingsStore(ctx, addr, os.Getenv("REDIS_PASSWORD"), config.GetInt("REDIS_DB", 0))
	if err != nil {
		log.Printf("Redis unavailable addr=%s err=%v (falling back to in-memory settings)", addr, err)
		return settings.NewMemorySettingsStore(nil)
	}
	return store
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedDir string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedDir); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
