package integration

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	catalogapp "github.com/dmehra2102/bookstore-services/internal/catalog/application"
	cataloghttp "github.com/dmehra2102/bookstore-services/internal/catalog/infrastructure/http"
	catalogpg "github.com/dmehra2102/bookstore-services/internal/catalog/infrastructure/postgres"
	orderapp "github.com/dmehra2102/bookstore-services/internal/order/application"
	"github.com/dmehra2102/bookstore-services/internal/order/domain"
	catalogclient "github.com/dmehra2102/bookstore-services/internal/order/infrastructure/catalog"
	orderhttp "github.com/dmehra2102/bookstore-services/internal/order/infrastructure/http"
	orderpg "github.com/dmehra2102/bookstore-services/internal/order/infrastructure/postgres"
)

// TestOrderFlow runs both services against a real postgres and walks the
// cross-service order creation paths end to end. Requires docker.
func TestOrderFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	env, err := Setup(ctx)
	if err != nil {
		t.Skipf("container environment unavailable: %v", err)
	}
	defer env.Teardown(ctx)

	log := slog.New(slog.DiscardHandler)

	pool, err := pgxpool.New(ctx, env.PGURL)
	if err != nil {
		t.Fatalf("pool: %v", err)
	}
	defer pool.Close()

	// Catalog side, seeded like the real boot path.
	bookRepo := catalogpg.NewRepository(log, pool)
	if err := bookRepo.EnsureSchema(ctx); err != nil {
		t.Fatalf("books schema: %v", err)
	}
	if err := bookRepo.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	catalogSrv := httptest.NewServer(cataloghttp.NewHandler(log, catalogapp.NewService(bookRepo)).Routes())
	defer catalogSrv.Close()

	// Order side.
	orderRepo := orderpg.NewRepository(log, pool)
	if err := orderRepo.EnsureSchema(ctx); err != nil {
		t.Fatalf("orders schema: %v", err)
	}
	client := catalogclient.NewClient(log, catalogSrv.URL, 3*time.Second)
	orderSrv := httptest.NewServer(orderhttp.NewHandler(log, orderapp.NewService(orderRepo, client)).Routes())
	defer orderSrv.Close()

	countOrders := func(t *testing.T) int {
		t.Helper()
		var n int
		if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n); err != nil {
			t.Fatalf("count orders: %v", err)
		}
		return n
	}

	t.Run("existing book yields created order", func(t *testing.T) {
		resp, err := http.Post(orderSrv.URL+"/api/orders", "application/json",
			strings.NewReader(`{"book_id":1,"customer_name":"Ana","quantity":2}`))
		if err != nil {
			t.Fatalf("post: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201, got %d", resp.StatusCode)
		}
		var got domain.Order
		if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.BookID != 1 || got.CustomerName != "Ana" || got.Quantity != 2 || got.Status != "completed" {
			t.Fatalf("unexpected order: %+v", got)
		}
		if got.ID == 0 || got.CreatedAt.IsZero() {
			t.Fatalf("store-assigned fields missing: %+v", got)
		}
	})

	t.Run("absent book is rejected and nothing persisted", func(t *testing.T) {
		before := countOrders(t)
		resp, err := http.Post(orderSrv.URL+"/api/orders", "application/json",
			strings.NewReader(`{"book_id":999,"customer_name":"Ana"}`))
		if err != nil {
			t.Fatalf("post: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", resp.StatusCode)
		}
		var body struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Error != "Cannot order: Book does not exist" {
			t.Fatalf("unexpected error body: %q", body.Error)
		}
		if countOrders(t) != before {
			t.Fatal("rejected order left a row behind")
		}
	})

	t.Run("unreachable catalog fails the request", func(t *testing.T) {
		deadClient := catalogclient.NewClient(log, "http://127.0.0.1:1", 500*time.Millisecond)
		deadSrv := httptest.NewServer(orderhttp.NewHandler(log, orderapp.NewService(orderRepo, deadClient)).Routes())
		defer deadSrv.Close()

		before := countOrders(t)
		resp, err := http.Post(deadSrv.URL+"/api/orders", "application/json",
			strings.NewReader(`{"book_id":1,"customer_name":"Ana"}`))
		if err != nil {
			t.Fatalf("post: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", resp.StatusCode)
		}
		if countOrders(t) != before {
			t.Fatal("failed order left a row behind")
		}
	})

	t.Run("partial book update leaves other fields", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPut, catalogSrv.URL+"/api/books/1", strings.NewReader(`{"price":19.99}`))
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("put: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		var got map[string]any
		if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got["title"] != "Clean Code" || got["author"] != "Robert C. Martin" {
			t.Fatalf("partial update touched other fields: %v", got)
		}
	})
}
