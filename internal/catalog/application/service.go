package application

import (
	"context"
	"errors"

	"github.com/dmehra2102/bookstore-services/internal/catalog/domain"
)

// ErrNotFound signals that no book exists with the requested id.
var ErrNotFound = errors.New("book not found")

type Service struct {
	repo BookRepository
}

func NewService(repo BookRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListBooks(ctx context.Context) ([]domain.Book, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetBook(ctx context.Context, id int64) (domain.Book, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) CreateBook(ctx context.Context, b domain.Book) (domain.Book, error) {
	return s.repo.Insert(ctx, b)
}

// UpdateBook merges the patch over the current record and writes the result
// back. The read and the write are separate statements; a concurrent update
// landing between them is lost.
func (s *Service) UpdateBook(ctx context.Context, id int64, patch domain.BookPatch) (domain.Book, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Book{}, err
	}
	return s.repo.Update(ctx, patch.Apply(current))
}

func (s *Service) DeleteBook(ctx context.Context, id int64) (domain.Book, error) {
	return s.repo.Delete(ctx, id)
}
