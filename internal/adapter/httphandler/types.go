package httphandler

import "github.com/ecogoods/storefront/internal/core/domain"

type (
	ProductView struct {
		ID            int     `json:"id"`
		Name          string  `json:"name"`
		Description   string  `json:"description"`
		Category      string  `json:"category"`
		CategoryLabel string  `json:"category_label"`
		Price         float64 `json:"price"`
		DisplayPrice  string  `json:"display_price"`
		ImageURL      string  `json:"image_url"`
		Stock         int     `json:"stock"`
	}

	CartItemView struct {
		ProductID       int     `json:"product_id"`
		Name            string  `json:"name"`
		Description     string  `json:"description"`
		Price           float64 `json:"price"`
		DisplayPrice    string  `json:"display_price"`
		ImageURL        string  `json:"image_url"`
		Quantity        int     `json:"quantity"`
		Subtotal        float64 `json:"subtotal"`
		DisplaySubtotal string  `json:"display_subtotal"`
	}

	CartView struct {
		Items         []CartItemView `json:"items"`
		TotalQuantity int            `json:"total_quantity"`
		TotalPrice    float64        `json:"total_price"`
		DisplayTotal  string         `json:"display_total"`
	}

	AddCartItemRequest struct {
		ProductID int `json:"product_id"`
	}

	CustomerPayload struct {
		Name          string `json:"name"`
		Email         string `json:"email"`
		Address       string `json:"address"`
		Phone         string `json:"phone"`
		PaymentMethod string `json:"payment_method"`
	}

	SelectionItemPayload struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}

	CheckoutRequest struct {
		Customer   CustomerPayload        `json:"customer"`
		SingleItem *SelectionItemPayload  `json:"single_item,omitempty"`
		BatchItems []SelectionItemPayload `json:"batch_items,omitempty"`
	}

	CheckoutResponse struct {
		OrderID string `json:"order_id"`
	}

	OrderItemView struct {
		ProductID    int     `json:"product_id"`
		Name         string  `json:"name"`
		Description  string  `json:"description"`
		Price        float64 `json:"price"`
		DisplayPrice string  `json:"display_price"`
		Quantity     int     `json:"quantity"`
	}

	OrderView struct {
		ID            string          `json:"id"`
		Customer      CustomerPayload `json:"customer"`
		Items         []OrderItemView `json:"items"`
		Total         float64         `json:"total"`
		DisplayTotal  string          `json:"display_total"`
		TotalQuantity int             `json:"total_quantity"`
		PlacedAt      string          `json:"placed_at"`
	}

	RegisterRequest struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	ProfileView struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
	}

	ProfileUpdateRequest struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
	}

	PreferenceValue struct {
		Value string `json:"value"`
	}
)

func toCustomerPayload(c domain.Customer) CustomerPayload {
	return CustomerPayload{
		Name:          c.Name,
		Email:         c.Email,
		Address:       c.Address,
		Phone:         c.Phone,
		PaymentMethod: c.PaymentMethod,
	}
}

func (p CustomerPayload) toDomain() domain.Customer {
	return domain.Customer{
		Name:          p.Name,
		Email:         p.Email,
		Address:       p.Address,
		Phone:         p.Phone,
		PaymentMethod: p.PaymentMethod,
	}
}

func toProfileView(u domain.User) ProfileView {
	return ProfileView{
		Name:    u.Name,
		Email:   u.Email,
		Address: u.Address,
		Phone:   u.Phone,
	}
}
