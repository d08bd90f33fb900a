package domain

import "time"

// StatusCompleted is the status every order is created with. There is no
// further lifecycle in this system.
const StatusCompleted = "completed"

type Order struct {
	ID           int64     `json:"id"`
	BookID       int64     `json:"book_id"`
	CustomerName string    `json:"customer_name"`
	Quantity     int       `json:"quantity"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewOrder builds an order pending persistence. Quantity 0 defaults to 1;
// an absent quantity and an explicit zero are indistinguishable here.
func NewOrder(bookID int64, customerName string, quantity int) Order {
	if quantity == 0 {
		quantity = 1
	}
	return Order{
		BookID:       bookID,
		CustomerName: customerName,
		Quantity:     quantity,
		Status:       StatusCompleted,
	}
}
