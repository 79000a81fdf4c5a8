package httphandler

import (
	"net/http"
	"time"

	"github.com/ecogoods/storefront/internal/core/port"
	"github.com/ecogoods/storefront/pkg/money"
)

// GET /v1/orders?lang=xx (200 OK)

type OrdersHandler struct {
	orders port.OrderLister
	prefs  port.PreferenceKeeper
}

func RegisterOrders(mux *http.ServeMux, orders port.OrderLister, prefs port.PreferenceKeeper) {
	h := OrdersHandler{orders, prefs}
	mux.HandleFunc("GET /v1/orders", h.ListOrders)
}

func (h OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	lang := activeLanguage(r, h.prefs)

	orders := h.orders.List()
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		items := make([]OrderItemView, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, OrderItemView{
				ProductID:    it.ProductID,
				Name:         it.Name,
				Description:  it.Description,
				Price:        it.Price,
				DisplayPrice: money.Format(it.Price, lang),
				Quantity:     it.Quantity,
			})
		}

		var placedAt string
		if !o.PlacedAt.IsZero() {
			placedAt = o.PlacedAt.Format(time.RFC3339)
		}

		views = append(views, OrderView{
			ID:            o.ID,
			Customer:      toCustomerPayload(o.Customer),
			Items:         items,
			Total:         o.Total,
			DisplayTotal:  money.Format(o.Total, lang),
			TotalQuantity: o.TotalQuantity,
			PlacedAt:      placedAt,
		})
	}

	writeJSON(w, http.StatusOK, views)
}
