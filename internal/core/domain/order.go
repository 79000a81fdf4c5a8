package domain

import "time"

type (
	Customer struct {
		Name          string
		Email         string
		Address       string
		Phone         string
		PaymentMethod string
	}

	OrderItem struct {
		ProductID   int
		Name        string
		Description string
		Price       float64
		Quantity    int
	}

	// Order is an immutable snapshot of a completed checkout.
	Order struct {
		ID            string
		Customer      Customer
		Items         []OrderItem
		Total         float64
		TotalQuantity int
		PlacedAt      time.Time
	}

	// SelectionItem selects one cart line for checkout.
	// Quantity 0 means "use the cart's current quantity, else 1".
	SelectionItem struct {
		ProductID int
		Quantity  int
	}

	// Selection picks the checkout mode. Both fields nil means
	// full-cart checkout.
	Selection struct {
		Single *SelectionItem
		Batch  []SelectionItem
	}
)
