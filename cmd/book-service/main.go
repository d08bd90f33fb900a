package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmehra2102/bookstore-services/internal/catalog/application"
	cataloghttp "github.com/dmehra2102/bookstore-services/internal/catalog/infrastructure/http"
	catalogpg "github.com/dmehra2102/bookstore-services/internal/catalog/infrastructure/postgres"
	"github.com/dmehra2102/bookstore-services/pkg/httpx"
	"github.com/dmehra2102/bookstore-services/pkg/logging"
	"github.com/dmehra2102/bookstore-services/pkg/shutdown"
	"github.com/dmehra2102/bookstore-services/pkg/tracing"
)

func main() {
	log := logging.New("book-service")

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// Configuration
	pgURL := storeURL()
	httpAddr := env("HTTP_ADDR", ":3000")
	otlpURL := env("OTLP_URL", "http://localhost:4318")

	tp, err := tracing.Init(ctx, "book-service", otlpURL, log)
	if err != nil {
		log.Error("otel init failed", "err", err)
		os.Exit(1)
	}
	defer func() { _ = tp.Shutdown(context.Background()) }()

	// Postgres setup: the catalog is fail-fast. A store that is not ready
	// at boot kills the process; the orchestrator restarts it.
	pool, err := pgxpool.New(ctx, pgURL)
	if err != nil {
		log.Error("pg config invalid", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := catalogpg.NewRepository(log, pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Error("db connection failed", "err", err)
		os.Exit(1)
	}
	if err := repo.Seed(ctx); err != nil {
		log.Error("seed failed", "err", err)
		os.Exit(1)
	}

	svc := application.NewService(repo)
	handler := cataloghttp.NewHandler(log, svc)

	r := chi.NewRouter()
	r.Mount("/", handler.Routes())
	srv := &http.Server{
		Addr:         httpAddr,
		Handler:      httpx.WithRequestID(httpx.WithLogging(log, r)),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("book-service listening", "addr", httpAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	log.Info("book-service shutdown complete")
}

// storeURL assembles the pool DSN from the DB_* variables, each with a
// documented default.
func storeURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		env("DB_USER", "postgres"),
		env("DB_PASSWORD", "postgres"),
		env("DB_HOST", "localhost"),
		env("DB_PORT", "5432"),
		env("DB_NAME", "bookstore"),
	)
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
