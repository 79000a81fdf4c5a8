package service

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/ecogoods/storefront/internal/core/domain"
	"github.com/ecogoods/storefront/internal/core/port"
	"github.com/ecogoods/storefront/pkg/retry"
)

var _ port.OrderAppender = (*OrdersService)(nil)
var _ port.OrderLister = (*OrdersService)(nil)

// OrdersService keeps the append-only order history. The in-memory
// list is authoritative; the snapshot write is best-effort.
type OrdersService struct {
	mu     sync.Mutex
	store  port.SnapshotStore
	orders []domain.Order
}

func NewOrdersService(store port.SnapshotStore) *OrdersService {
	s := &OrdersService{store: store}
	s.orders = loadOrders(store)
	return s
}

func (s *OrdersService) Append(o domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, o)
	s.persist()
}

// List returns the history most-recent-first. Storage keeps append
// order; the reversal happens here at the read boundary.
func (s *OrdersService) List() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Order, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		out = append(out, s.orders[i])
	}
	return out
}

func (s *OrdersService) persist() {
	const op = "OrdersService.persist"
	log := slog.With("op", op)

	stored := make([]storedOrder, 0, len(s.orders))
	for _, o := range s.orders {
		stored = append(stored, toStoredOrder(o))
	}

	data, err := json.Marshal(stored)
	if err != nil {
		log.Error("failed to encode order history", "err", err)
		return
	}

	err = retry.Do(retry.Config{MaxAttempts: 3}, func() error {
		return s.store.Set(keyOrders, data)
	})
	if err != nil {
		log.Error("failed to write order history", "err", err)
	}
}

func loadOrders(store port.SnapshotStore) []domain.Order {
	const op = "service.loadOrders"
	log := slog.With("op", op)

	data, err := store.Get(keyOrders)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Warn("failed to read order history", "err", err)
		}
		return nil
	}

	var stored []storedOrder
	if err := json.Unmarshal(data, &stored); err != nil {
		log.Warn("malformed order history", "err", err)
		return nil
	}

	orders := make([]domain.Order, 0, len(stored))
	for _, o := range stored {
		orders = append(orders, o.toDomain())
	}
	return orders
}

type (
	storedOrder struct {
		ID            string            `json:"id"`
		Customer      storedCustomer    `json:"customer"`
		Items         []storedOrderItem `json:"items"`
		Total         float64           `json:"total"`
		TotalQuantity int               `json:"totalQuantity"`
		PlacedAt      string            `json:"placedAt"`
	}

	storedCustomer struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
		Payment string `json:"payment"`
	}

	storedOrderItem struct {
		ProductID   int     `json:"id"`
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Quantity    int     `json:"quantity"`
	}
)

func toStoredOrder(o domain.Order) storedOrder {
	items := make([]storedOrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, storedOrderItem(it))
	}
	return storedOrder{
		ID: o.ID,
		Customer: storedCustomer{
			Name:    o.Customer.Name,
			Email:   o.Customer.Email,
			Address: o.Customer.Address,
			Phone:   o.Customer.Phone,
			Payment: o.Customer.PaymentMethod,
		},
		Items:         items,
		Total:         o.Total,
		TotalQuantity: o.TotalQuantity,
		PlacedAt:      o.PlacedAt.UTC().Format(time.RFC3339),
	}
}

func (o storedOrder) toDomain() domain.Order {
	items := make([]domain.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, domain.OrderItem(it))
	}

	// A stale or hand-edited snapshot may carry an unparsable
	// timestamp; the order is still worth showing.
	placedAt, err := time.Parse(time.RFC3339, o.PlacedAt)
	if err != nil {
		placedAt = time.Time{}
	}

	return domain.Order{
		ID: o.ID,
		Customer: domain.Customer{
			Name:          o.Customer.Name,
			Email:         o.Customer.Email,
			Address:       o.Customer.Address,
			Phone:         o.Customer.Phone,
			PaymentMethod: o.Customer.Payment,
		},
		Items:         items,
		Total:         o.Total,
		TotalQuantity: o.TotalQuantity,
		PlacedAt:      placedAt,
	}
}
