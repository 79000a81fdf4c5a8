package service

import (
	"fmt"
	"time"

	"github.com/ecogoods/storefront/internal/core/domain"
	"github.com/ecogoods/storefront/internal/core/port"
)

const orderIDPrefix = "ECO-"

var _ port.CheckoutSubmitter = (*CheckoutService)(nil)

type cartAccess interface {
	port.CartViewer
	port.CartMutator
}

// CheckoutService assembles immutable orders from the cart, a single
// item, or an explicit batch subset, then consumes the source lines.
type CheckoutService struct {
	catalog port.Catalog
	cart    cartAccess
	orders  port.OrderAppender
}

func NewCheckoutService(catalog port.Catalog, cart cartAccess, orders port.OrderAppender) CheckoutService {
	return CheckoutService{catalog: catalog, cart: cart, orders: orders}
}

// Submit resolves the selection against the catalog in the caller's
// language, appends exactly one order and removes the consumed lines.
// An empty resolved set returns domain.ErrEmptySelection and leaves
// both the cart and the history untouched.
func (s CheckoutService) Submit(c domain.Customer, sel domain.Selection, lang string) (string, error) {
	const op = "CheckoutService.Submit"

	items := s.resolve(sel, lang)
	if len(items) == 0 {
		return "", fmt.Errorf("%s: %w", op, domain.ErrEmptySelection)
	}

	var total float64
	var totalQuantity int
	for _, it := range items {
		total += float64(it.Quantity) * it.Price
		totalQuantity += it.Quantity
	}

	// Millisecond-timestamp ids can collide across exact-timestamp
	// submissions; accepted for this storefront.
	now := time.Now()
	order := domain.Order{
		ID:            fmt.Sprintf("%s%d", orderIDPrefix, now.UnixMilli()),
		Customer:      c,
		Items:         items,
		Total:         total,
		TotalQuantity: totalQuantity,
		PlacedAt:      now.UTC(),
	}

	s.orders.Append(order)
	s.consume(sel)

	return order.ID, nil
}

func (s CheckoutService) resolve(sel domain.Selection, lang string) []domain.OrderItem {
	switch {
	case sel.Single != nil:
		return s.resolveBatch([]domain.SelectionItem{*sel.Single}, lang)
	case sel.Batch != nil:
		return s.resolveBatch(sel.Batch, lang)
	default:
		return s.resolveFullCart(lang)
	}
}

// resolveFullCart re-resolves every cart line against the catalog so
// the order carries current names and prices. Lines whose product left
// the catalog keep their cached fields.
func (s CheckoutService) resolveFullCart(lang string) []domain.OrderItem {
	cartItems := s.cart.Items()
	items := make([]domain.OrderItem, 0, len(cartItems))
	for _, it := range cartItems {
		item := domain.OrderItem{
			ProductID:   it.ProductID,
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price,
			Quantity:    it.Quantity,
		}

		if p, ok := s.catalog.ProductByID(it.ProductID); ok {
			lp := domain.LocalizeProduct(p, lang)
			if lp.Name != "" {
				item.Name = lp.Name
			}
			if lp.Description != "" {
				item.Description = lp.Description
			}
			item.Price = p.Price
		}
		items = append(items, item)
	}
	return items
}

// resolveBatch builds items for an explicit selection. Unknown product
// ids are skipped; a zero quantity falls back to the cart's current
// quantity for that product, else one.
func (s CheckoutService) resolveBatch(sel []domain.SelectionItem, lang string) []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(sel))
	for _, si := range sel {
		p, ok := s.catalog.ProductByID(si.ProductID)
		if !ok {
			continue
		}

		qty := si.Quantity
		if qty < 1 {
			qty = s.cartQuantity(si.ProductID)
		}

		lp := domain.LocalizeProduct(p, lang)
		items = append(items, domain.OrderItem{
			ProductID:   p.ID,
			Name:        lp.Name,
			Description: lp.Description,
			Price:       p.Price,
			Quantity:    qty,
		})
	}
	return items
}

func (s CheckoutService) cartQuantity(productID int) int {
	for _, it := range s.cart.Items() {
		if it.ProductID == productID {
			return it.Quantity
		}
	}
	return 1
}

func (s CheckoutService) consume(sel domain.Selection) {
	switch {
	case sel.Single != nil:
		s.cart.Remove(sel.Single.ProductID)
	case sel.Batch != nil:
		for _, si := range sel.Batch {
			s.cart.Remove(si.ProductID)
		}
	default:
		s.cart.Clear()
	}
}
