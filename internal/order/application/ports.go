package application

import (
	"context"

	"github.com/dmehra2102/bookstore-services/internal/order/domain"
)

// OrderRepository is the store-side port of the order service.
type OrderRepository interface {
	Insert(ctx context.Context, o domain.Order) (domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
}

// CatalogBook is the order service's view of a catalog record; only the
// fields the workflow reads are carried.
type CatalogBook struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Stock int    `json:"stock"`
}

// CatalogClient performs the remote existence check. Implementations must
// return ErrBookNotFound for an explicit catalog 404 and any other error for
// everything else (network failure, timeout, malformed response, non-404
// error status) so the workflow can tell a client mistake from a dependency
// outage.
type CatalogClient interface {
	GetBook(ctx context.Context, id int64) (CatalogBook, error)
}
