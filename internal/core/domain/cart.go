package domain

type (
	// CartItem is one product-quantity pairing in the active cart.
	// Product fields are captured at add time and may go stale
	// relative to the catalog; checkout re-resolves them.
	CartItem struct {
		ProductID   int
		Name        string
		Description string
		Price       float64
		ImageURL    string
		Quantity    int
	}

	// CartSummary is derived from the current lines, never stored.
	CartSummary struct {
		TotalQuantity int
		TotalPrice    float64
	}
)

// SummarizeCart recomputes the aggregate from scratch.
func SummarizeCart(items []CartItem) CartSummary {
	var s CartSummary
	for _, it := range items {
		s.TotalQuantity += it.Quantity
		s.TotalPrice += float64(it.Quantity) * it.Price
	}
	return s
}
