package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Book is a catalog record. ID and CreatedAt are store-assigned and
// immutable once set.
type Book struct {
	ID        int64           `json:"id"`
	Title     string          `json:"title"`
	Author    string          `json:"author"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
}

// BookPatch is a partial update. A nil field means "leave unchanged"; there
// is no way to set a field to its zero value by omitting it.
type BookPatch struct {
	Title  *string          `json:"title"`
	Author *string          `json:"author"`
	Price  *decimal.Decimal `json:"price"`
	Stock  *int             `json:"stock"`
}

// Apply merges the patch over b field by field and returns the result. An
// empty patch is a no-op. The merge is defined here, not with a COALESCE in
// SQL, so the contract holds regardless of store engine.
func (p BookPatch) Apply(b Book) Book {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Price != nil {
		b.Price = *p.Price
	}
	if p.Stock != nil {
		b.Stock = *p.Stock
	}
	return b
}
