package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ecogoods/storefront/internal/core/domain"
	"github.com/ecogoods/storefront/internal/core/port"
)

// POST /v1/checkout JSON CheckoutRequest (201 Created, 422 Unprocessable entity)

type CheckoutHandler struct {
	checkout port.CheckoutSubmitter
	prefs    port.PreferenceKeeper
}

func RegisterCheckout(mux *http.ServeMux, checkout port.CheckoutSubmitter, prefs port.PreferenceKeeper) {
	h := CheckoutHandler{checkout, prefs}
	mux.HandleFunc("POST /v1/checkout", h.Submit)
}

func (h CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.Submit"
	log := slog.With("op", op)

	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	sel := domain.Selection{}
	if req.SingleItem != nil {
		sel.Single = &domain.SelectionItem{
			ProductID: req.SingleItem.ProductID,
			Quantity:  req.SingleItem.Quantity,
		}
	} else if req.BatchItems != nil {
		sel.Batch = make([]domain.SelectionItem, 0, len(req.BatchItems))
		for _, it := range req.BatchItems {
			sel.Batch = append(sel.Batch, domain.SelectionItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
			})
		}
	}

	orderID, err := h.checkout.Submit(req.Customer.toDomain(), sel, activeLanguage(r, h.prefs))
	if err != nil {
		if errors.Is(err, domain.ErrEmptySelection) {
			// recoverable: the client should send the user back
			// to browsing
			http.Error(w, "nothing to check out", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "failed to place order", http.StatusInternalServerError)
		log.Error("failed to place order", "err", err)
		return
	}

	log.Info("order placed", "orderID", orderID)
	writeJSON(w, http.StatusCreated, CheckoutResponse{OrderID: orderID})
}
