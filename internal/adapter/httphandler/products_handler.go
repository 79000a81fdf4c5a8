package httphandler

import (
	"net/http"
	"strconv"

	"github.com/ecogoods/storefront/internal/core/domain"
	"github.com/ecogoods/storefront/internal/core/port"
	"github.com/ecogoods/storefront/pkg/money"
)

// GET /v1/products?lang=xx (200 OK)
// GET /v1/products/{id}?lang=xx (200 OK, 404 Not found)

type ProductsHandler struct {
	catalog port.Catalog
	prefs   port.PreferenceKeeper
}

func RegisterProducts(mux *http.ServeMux, catalog port.Catalog, prefs port.PreferenceKeeper) {
	h := ProductsHandler{catalog, prefs}
	mux.HandleFunc("GET /v1/products", h.ListProducts)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
}

func (h ProductsHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	lang := activeLanguage(r, h.prefs)

	ps := h.catalog.Products()
	views := make([]ProductView, 0, len(ps))
	for _, p := range ps {
		views = append(views, h.toView(p, lang))
	}

	writeJSON(w, http.StatusOK, views)
}

func (h ProductsHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	p, ok := h.catalog.ProductByID(id)
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, h.toView(p, activeLanguage(r, h.prefs)))
}

func (h ProductsHandler) toView(p domain.Product, lang string) ProductView {
	lp := domain.LocalizeProduct(p, lang)
	return ProductView{
		ID:            lp.ID,
		Name:          lp.Name,
		Description:   lp.Description,
		Category:      lp.CategoryKey,
		CategoryLabel: lp.CategoryLabel,
		Price:         lp.Price,
		DisplayPrice:  money.Format(lp.Price, lang),
		ImageURL:      lp.ImageURL,
		Stock:         lp.Stock,
	}
}
