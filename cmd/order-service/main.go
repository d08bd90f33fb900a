package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmehra2102/bookstore-services/internal/order/application"
	catalogclient "github.com/dmehra2102/bookstore-services/internal/order/infrastructure/catalog"
	orderhttp "github.com/dmehra2102/bookstore-services/internal/order/infrastructure/http"
	orderpg "github.com/dmehra2102/bookstore-services/internal/order/infrastructure/postgres"
	"github.com/dmehra2102/bookstore-services/pkg/httpx"
	"github.com/dmehra2102/bookstore-services/pkg/logging"
	"github.com/dmehra2102/bookstore-services/pkg/shutdown"
	"github.com/dmehra2102/bookstore-services/pkg/startup"
	"github.com/dmehra2102/bookstore-services/pkg/tracing"
)

// storeRetryInterval is the fixed delay between startup connection attempts.
const storeRetryInterval = 5 * time.Second

// catalogTimeout bounds every existence check against the book-service.
const catalogTimeout = 3 * time.Second

func main() {
	log := logging.New("order-service")

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// Configuration
	pgURL := storeURL()
	httpAddr := env("HTTP_ADDR", ":3001")
	catalogURL := env("CATALOG_URL", "http://book-service:3000")
	otlpURL := env("OTLP_URL", "http://localhost:4318")

	tp, err := tracing.Init(ctx, "order-service", otlpURL, log)
	if err != nil {
		log.Error("otel init failed", "err", err)
		os.Exit(1)
	}
	defer func() { _ = tp.Shutdown(context.Background()) }()

	pool, err := pgxpool.New(ctx, pgURL)
	if err != nil {
		log.Error("pg config invalid", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := orderpg.NewRepository(log, pool)

	// The order service races its own datastore at boot: retry the
	// connect-and-ensure-schema step forever with a fixed delay and only
	// then expose the HTTP surface. The loop runs exactly once.
	if err := startup.Retry(ctx, log, storeRetryInterval, repo.EnsureSchema); err != nil {
		log.Info("startup interrupted before the store became ready", "err", err)
		return
	}

	catalog := catalogclient.NewClient(log, catalogURL, catalogTimeout)
	svc := application.NewService(repo, catalog)
	handler := orderhttp.NewHandler(log, svc)

	r := chi.NewRouter()
	r.Mount("/", handler.Routes())
	srv := &http.Server{
		Addr:         httpAddr,
		Handler:      httpx.WithRequestID(httpx.WithLogging(log, r)),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("order-service listening", "addr", httpAddr, "catalog", catalogURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	log.Info("order-service shutdown complete")
}

// storeURL assembles the pool DSN from the DB_* variables. The host default
// is the in-cluster service name, not localhost: the order service is
// deployed next to its store, not on it.
func storeURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		env("DB_USER", "postgres"),
		env("DB_PASSWORD", "postgres"),
		env("DB_HOST", "postgres"),
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
