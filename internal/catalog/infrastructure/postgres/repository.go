package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmehra2102/bookstore-services/internal/catalog/application"
	"github.com/dmehra2102/bookstore-services/internal/catalog/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

// EnsureSchema creates the books table when it does not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS books (
			id SERIAL PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			author VARCHAR(255) NOT NULL,
			price DECIMAL(10, 2) NOT NULL,
			stock INTEGER DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`)
	return err
}

// Seed inserts the starter inventory when the table is empty.
func (r *Repository) Seed(ctx context.Context) error {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO books (title, author, price, stock) VALUES
		('Clean Code', 'Robert C. Martin', 29.99, 15),
		('Design Patterns', 'Gang of Four', 39.99, 10),
		('The Pragmatic Programmer', 'David Thomas', 34.99, 8),
		('Refactoring', 'Martin Fowler', 44.99, 12),
		('Domain-Driven Design', 'Eric Evans', 49.99, 5)`)
	if err != nil {
		return err
	}
	r.log.Info("seeded starter books", "count", 5)
	return nil
}

const bookColumns = `id, title, author, price, stock, created_at`

func scanBook(row pgx.Row) (domain.Book, error) {
	var b domain.Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Price, &b.Stock, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Book{}, application.ErrNotFound
	}
	if err != nil {
		return domain.Book{}, err
	}
	return b, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Book, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+bookColumns+` FROM books ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []domain.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *Repository) Get(ctx context.Context, id int64) (domain.Book, error) {
	return scanBook(r.pool.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE id=$1`, id))
}

func (r *Repository) Insert(ctx context.Context, b domain.Book) (domain.Book, error) {
	return scanBook(r.pool.QueryRow(ctx,
		`INSERT INTO books (title, author, price, stock) VALUES ($1,$2,$3,$4) RETURNING `+bookColumns,
		b.Title, b.Author, b.Price, b.Stock))
}

func (r *Repository) Update(ctx context.Context, b domain.Book) (domain.Book, error) {
	return scanBook(r.pool.QueryRow(ctx,
		`UPDATE books SET title=$1, author=$2, price=$3, stock=$4 WHERE id=$5 RETURNING `+bookColumns,
		b.Title, b.Author, b.Price, b.Stock, b.ID))
}

func (r *Repository) Delete(ctx context.Context, id int64) (domain.Book, error) {
	return scanBook(r.pool.QueryRow(ctx, `DELETE FROM books WHERE id=$1 RETURNING `+bookColumns, id))
}
