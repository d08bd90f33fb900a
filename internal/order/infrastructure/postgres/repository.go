package postgres

import (
	"context"
	"log/slog"

	"github.com/dmehra2102/bookstore-services/internal/order/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

// EnsureSchema creates the orders table when it does not exist yet. It also
// serves as the startup connectivity probe: it fails while the store is
// still coming up.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			book_id INTEGER NOT NULL,
			customer_name VARCHAR(255) NOT NULL,
			quantity INTEGER DEFAULT 1,
			status VARCHAR(50) DEFAULT 'completed',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`)
	return err
}

const orderColumns = `id, book_id, customer_name, quantity, status, created_at`

func (r *Repository) Insert(ctx context.Context, o domain.Order) (domain.Order, error) {
	var created domain.Order
	err := r.pool.QueryRow(ctx,
		`INSERT INTO orders (book_id, customer_name, quantity, status) VALUES ($1,$2,$3,$4) RETURNING `+orderColumns,
		o.BookID, o.CustomerName, o.Quantity, o.Status).
		Scan(&created.ID, &created.BookID, &created.CustomerName, &created.Quantity, &created.Status, &created.CreatedAt)
	if err != nil {
		return domain.Order{}, err
	}
	return created, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.BookID, &o.CustomerName, &o.Quantity, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
