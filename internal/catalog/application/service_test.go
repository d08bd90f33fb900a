package application

import (
	"context"
	"errors"
	"testing"

	"github.com/dmehra2102/bookstore-services/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

type fakeRepo struct {
	books   map[int64]domain.Book
	updated *domain.Book
}

func newFakeRepo(books ...domain.Book) *fakeRepo {
	m := make(map[int64]domain.Book, len(books))
	for _, b := range books {
		m[b.ID] = b
	}
	return &fakeRepo{books: m}
}

func (f *fakeRepo) List(ctx context.Context) ([]domain.Book, error) {
	out := make([]domain.Book, 0, len(f.books))
	for _, b := range f.books {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRepo) Get(ctx context.Context, id int64) (domain.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return domain.Book{}, ErrNotFound
	}
	return b, nil
}

func (f *fakeRepo) Insert(ctx context.Context, b domain.Book) (domain.Book, error) {
	b.ID = int64(len(f.books) + 1)
	f.books[b.ID] = b
	return b, nil
}

func (f *fakeRepo) Update(ctx context.Context, b domain.Book) (domain.Book, error) {
	f.updated = &b
	f.books[b.ID] = b
	return b, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) (domain.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return domain.Book{}, ErrNotFound
	}
	delete(f.books, id)
	return b, nil
}

func TestUpdateBookMergesOverExisting(t *testing.T) {
	repo := newFakeRepo(domain.Book{
		ID:     1,
		Title:  "Refactoring",
		Author: "Martin Fowler",
		Price:  decimal.RequireFromString("44.99"),
		Stock:  12,
	})
	svc := NewService(repo)

	price := decimal.RequireFromString("39.99")
	got, err := svc.UpdateBook(context.Background(), 1, domain.BookPatch{Price: &price})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if !got.Price.Equal(price) {
		t.Errorf("price not merged: %s", got.Price)
	}
	if got.Title != "Refactoring" || got.Stock != 12 {
		t.Errorf("unrelated fields changed: %+v", got)
	}
	if repo.updated == nil {
		t.Fatal("merged record never written back")
	}
}

func TestUpdateBookEmptyPatchWritesUnchangedRecord(t *testing.T) {
	book := domain.Book{ID: 2, Title: "Domain-Driven Design", Author: "Eric Evans", Price: decimal.RequireFromString("49.99"), Stock: 5}
	repo := newFakeRepo(book)
	svc := NewService(repo)

	got, err := svc.UpdateBook(context.Background(), 2, domain.BookPatch{})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if got != book {
		t.Errorf("no-op patch modified the record: %+v", got)
	}
}

func TestUpdateBookUnknownID(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.UpdateBook(context.Background(), 42, domain.BookPatch{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestDeleteBookReturnsRemovedRecord(t *testing.T) {
	book := domain.Book{ID: 3, Title: "Design Patterns", Author: "Gang of Four", Price: decimal.RequireFromString("39.99"), Stock: 10}
	repo := newFakeRepo(book)
	svc := NewService(repo)

	got, err := svc.DeleteBook(context.Background(), 3)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if got != book {
		t.Errorf("expected the removed record back, got: %+v", got)
	}
	if _, err := svc.GetBook(context.Background(), 3); !errors.Is(err, ErrNotFound) {
		t.Fatalf("record still present after delete: %v", err)
	}
}
