package application

import (
	"context"

	"github.com/dmehra2102/bookstore-services/internal/catalog/domain"
)

// BookRepository is the store-side port of the catalog.
type BookRepository interface {
	List(ctx context.Context) ([]domain.Book, error)
	Get(ctx context.Context, id int64) (domain.Book, error)
	Insert(ctx context.Context, b domain.Book) (domain.Book, error)
	Update(ctx context.Context, b domain.Book) (domain.Book, error)
	Delete(ctx context.Context, id int64) (domain.Book, error)
}
