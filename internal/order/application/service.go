package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmehra2102/bookstore-services/internal/order/domain"
)

var (
	// ErrBookNotFound: the catalog answered and the book does not exist.
	ErrBookNotFound = errors.New("book does not exist")
	// ErrCatalogUnreachable: the catalog could not answer. Wraps the cause.
	ErrCatalogUnreachable = errors.New("catalog unreachable")
	// ErrStoreFailure: the order row could not be written. Wraps the cause.
	ErrStoreFailure = errors.New("order store failure")
)

type Service struct {
	repo    OrderRepository
	catalog CatalogClient
}

func NewService(repo OrderRepository, catalog CatalogClient) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// CreateOrder runs the create workflow: existence check against the remote
// catalog, then a single insert. The check is point-in-time only; a book
// deleted between check and insert still yields an order. No step is
// retried — a failed check or insert fails the whole request.
func (s *Service) CreateOrder(ctx context.Context, bookID int64, customerName string, quantity int) (domain.Order, error) {
	_, err := s.catalog.GetBook(ctx, bookID)
	if errors.Is(err, ErrBookNotFound) {
		return domain.Order{}, ErrBookNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("%w: %v", ErrCatalogUnreachable, err)
	}

	created, err := s.repo.Insert(ctx, domain.NewOrder(bookID, customerName, quantity))
	if err != nil {
		return domain.Order{}, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	return created, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}
