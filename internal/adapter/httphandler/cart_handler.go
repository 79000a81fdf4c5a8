package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ecogoods/storefront/internal/core/domain"
	"github.com/ecogoods/storefront/internal/core/port"
	"github.com/ecogoods/storefront/pkg/money"
)

// GET    /v1/cart?lang=xx (200 OK)
// POST   /v1/cart/items JSON {"product_id" int} (201 Created, 404 Not found)
// POST   /v1/cart/items/{id}/increment (200 OK)
// POST   /v1/cart/items/{id}/decrement (200 OK)
// DELETE /v1/cart/items/{id} (200 OK)
// DELETE /v1/cart (200 OK)

type cartPort interface {
	port.CartViewer
	port.CartMutator
}

type CartHandler struct {
	cart  cartPort
	prefs port.PreferenceKeeper
}

func RegisterCart(mux *http.ServeMux, cart cartPort, prefs port.PreferenceKeeper) {
	h := CartHandler{cart, prefs}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.AddItem)
	mux.HandleFunc("POST /v1/cart/items/{id}/increment", h.IncrementItem)
	mux.HandleFunc("POST /v1/cart/items/{id}/decrement", h.DecrementItem)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", h.RemoveItem)
	mux.HandleFunc("DELETE /v1/cart", h.ClearCart)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cartView(activeLanguage(r, h.prefs)))
}

func (h CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.AddItem"
	log := slog.With("op", op)

	var req AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	lang := activeLanguage(r, h.prefs)
	if err := h.cart.Add(req.ProductID, lang); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to add item", http.StatusInternalServerError)
		log.Error("failed to add item", "err", err)
		return
	}

	writeJSON(w, http.StatusCreated, h.cartView(lang))
}

func (h CartHandler) IncrementItem(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.cart.Increment)
}

func (h CartHandler) DecrementItem(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.cart.Decrement)
}

func (h CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.cart.Remove)
}

func (h CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear()
	writeJSON(w, http.StatusOK, h.cartView(activeLanguage(r, h.prefs)))
}

func (h CartHandler) adjust(w http.ResponseWriter, r *http.Request, fn func(int)) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	fn(id)
	writeJSON(w, http.StatusOK, h.cartView(activeLanguage(r, h.prefs)))
}

func (h CartHandler) cartView(lang string) CartView {
	items := h.cart.Items()
	summary := h.cart.Summary()

	views := make([]CartItemView, 0, len(items))
	for _, it := range items {
		subtotal := float64(it.Quantity) * it.Price
		views = append(views, CartItemView{
			ProductID:       it.ProductID,
			Name:            it.Name,
			Description:     it.Description,
			Price:           it.Price,
			DisplayPrice:    money.Format(it.Price, lang),
			ImageURL:        it.ImageURL,
			Quantity:        it.Quantity,
			Subtotal:        subtotal,
			DisplaySubtotal: money.Format(subtotal, lang),
		})
	}

	return CartView{
		Items:         views,
		TotalQuantity: summary.TotalQuantity,
		TotalPrice:    summary.TotalPrice,
		DisplayTotal:  money.Format(summary.TotalPrice, lang),
	}
}
