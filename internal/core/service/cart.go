package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ecogoods/storefront/internal/core/domain"
	"github.com/ecogoods/storefront/internal/core/port"
	"github.com/ecogoods/storefront/pkg/retry"
)

var _ port.CartViewer = (*CartService)(nil)
var _ port.CartMutator = (*CartService)(nil)

// CartService owns the live cart line list. At most one line exists
// per product id and quantities never drop below one; the aggregate is
// recomputed from the lines after every mutation. Each mutation writes
// the snapshot best-effort before returning.
type CartService struct {
	mu      sync.Mutex
	catalog port.Catalog
	store   port.SnapshotStore
	items   []domain.CartItem
}

func NewCartService(catalog port.Catalog, store port.SnapshotStore) *CartService {
	s := &CartService{catalog: catalog, store: store}
	s.items = loadCartItems(store)
	return s
}

// Add captures the product's localized fields into a new line, or
// increments the existing line's quantity by one.
func (s *CartService) Add(productID int, lang string) error {
	const op = "CartService.Add"

	p, ok := s.catalog.ProductByID(productID)
	if !ok {
		return fmt.Errorf("%s: id %d: %w", op, productID, domain.ErrProductNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity++
			s.persist()
			return nil
		}
	}

	lp := domain.LocalizeProduct(p, lang)
	s.items = append(s.items, domain.CartItem{
		ProductID:   p.ID,
		Name:        lp.Name,
		Description: lp.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Quantity:    1,
	})
	s.persist()
	return nil
}

// Remove deletes the line if present. Removing an absent line is a
// no-op.
func (s *CartService) Remove(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(productID)
	s.persist()
}

func (s *CartService) Increment(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity++
			s.persist()
			return
		}
	}
}

// Decrement lowers the line's quantity by one; at quantity one the
// line is removed. Absent lines are a no-op.
func (s *CartService) Decrement(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity--
			if s.items[i].Quantity <= 0 {
				s.removeLocked(productID)
			}
			s.persist()
			return
		}
	}
}

func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist()
}

func (s *CartService) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]domain.CartItem, len(s.items))
	copy(cp, s.items)
	return cp
}

func (s *CartService) Summary() domain.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.SummarizeCart(s.items)
}

func (s *CartService) removeLocked(productID int) {
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	s.items = kept
}

// persist writes the line list to the snapshot store. Failures are
// logged and swallowed: the snapshot is a convenience cache, the
// in-memory lines stay authoritative for the session.
func (s *CartService) persist() {
	const op = "CartService.persist"
	log := slog.With("op", op)

	if len(s.items) == 0 {
		if err := s.store.Delete(keyCartItems); err != nil {
			log.Error("failed to delete cart snapshot", "err", err)
		}
		return
	}

	stored := make([]storedCartItem, 0, len(s.items))
	for _, it := range s.items {
		stored = append(stored, storedCartItem(it))
	}

	data, err := json.Marshal(stored)
	if err != nil {
		log.Error("failed to encode cart snapshot", "err", err)
		return
	}

	err = retry.Do(retry.Config{MaxAttempts: 3}, func() error {
		return s.store.Set(keyCartItems, data)
	})
	if err != nil {
		log.Error("failed to write cart snapshot", "err", err)
	}
}

func loadCartItems(store port.SnapshotStore) []domain.CartItem {
	const op = "service.loadCartItems"
	log := slog.With("op", op)

	data, err := store.Get(keyCartItems)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Warn("failed to read cart snapshot", "err", err)
		}
		return nil
	}

	var stored []storedCartItem
	if err := json.Unmarshal(data, &stored); err != nil {
		log.Warn("malformed cart snapshot", "err", err)
		return nil
	}

	items := make([]domain.CartItem, 0, len(stored))
	for _, it := range stored {
		if it.Quantity < 1 {
			continue
		}
		items = append(items, domain.CartItem(it))
	}
	return items
}

type storedCartItem struct {
	ProductID   int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageURL"`
	Quantity    int     `json:"quantity"`
}
