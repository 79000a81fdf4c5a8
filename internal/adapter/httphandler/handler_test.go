package httphandler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecogoods/storefront/internal/adapter/catalog"
	"github.com/ecogoods/storefront/internal/adapter/httphandler"
	"github.com/ecogoods/storefront/internal/adapter/snapshot"
	"github.com/ecogoods/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	store := snapshot.NewMemStore()
	cat := catalog.New()

	cart := service.NewCartService(cat, store)
	orders := service.NewOrdersService(store)
	checkout := service.NewCheckoutService(cat, cart, orders)
	auth := service.NewAuthService(store)
	prefs := service.NewSettingsService(store)

	mux := http.NewServeMux()
	httphandler.RegisterProducts(mux, cat, prefs)
	httphandler.RegisterCart(mux, cart, prefs)
	httphandler.RegisterCheckout(mux, checkout, prefs)
	httphandler.RegisterOrders(mux, orders, prefs)
	httphandler.RegisterAuth(mux, auth)
	httphandler.RegisterSettings(mux, prefs)

	return httphandler.AllowJSON(mux)
}

func doJSON(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestProductsEndpoints(t *testing.T) {
	h := newTestHandler(t)

	t.Run("ListLocalized", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/v1/products?lang=en", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		views := decodeBody[[]httphandler.ProductView](t, rec)
		require.Len(t, views, 8)
		assert.Equal(t, "Eco Stainless Drink Bottle", views[0].Name)
		assert.Equal(t, "IDR 85,000", views[0].DisplayPrice)
	})

	t.Run("DetailUsesStoredLanguageByDefault", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/v1/products/1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		view := decodeBody[httphandler.ProductView](t, rec)
		assert.Equal(t, "Botol Minum Stainless Eco", view.Name)
		assert.Equal(t, "Rp 85.000", view.DisplayPrice)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/v1/products/999", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("BadID", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/v1/products/abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCartEndpoints(t *testing.T) {
	t.Run("AddAndRead", func(t *testing.T) {
		h := newTestHandler(t)

		rec := doJSON(t, h, http.MethodPost, "/v1/cart/items?lang=en", httphandler.AddCartItemRequest{ProductID: 1})
		require.Equal(t, http.StatusCreated, rec.Code)

		view := decodeBody[httphandler.CartView](t, rec)
		require.Len(t, view.Items, 1)
		assert.Equal(t, 1, view.TotalQuantity)
		assert.Equal(t, 85000.0, view.TotalPrice)
		assert.Equal(t, "IDR 85,000", view.DisplayTotal)
	})

	t.Run("AddUnknownProduct", func(t *testing.T) {
		h := newTestHandler(t)

		rec := doJSON(t, h, http.MethodPost, "/v1/cart/items", httphandler.AddCartItemRequest{ProductID: 999})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("QuantityFlow", func(t *testing.T) {
		h := newTestHandler(t)

		doJSON(t, h, http.MethodPost, "/v1/cart/items", httphandler.AddCartItemRequest{ProductID: 2})
		doJSON(t, h, http.MethodPost, "/v1/cart/items/2/increment", nil)
		doJSON(t, h, http.MethodPost, "/v1/cart/items/2/increment", nil)
		rec := doJSON(t, h, http.MethodPost, "/v1/cart/items/2/decrement", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		view := decodeBody[httphandler.CartView](t, rec)
		require.Len(t, view.Items, 1)
		assert.Equal(t, 2, view.Items[0].Quantity)

		rec = doJSON(t, h, http.MethodDelete, "/v1/cart/items/2", nil)
		view = decodeBody[httphandler.CartView](t, rec)
		assert.Empty(t, view.Items)
		assert.Zero(t, view.TotalQuantity)
	})

	t.Run("Clear", func(t *testing.T) {
		h := newTestHandler(t)

		doJSON(t, h, http.MethodPost, "/v1/cart/items", httphandler.AddCartItemRequest{ProductID: 1})
		doJSON(t, h, http.MethodPost, "/v1/cart/items", httphandler.AddCartItemRequest{ProductID: 2})
		rec := doJSON(t, h, http.MethodDelete, "/v1/cart", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		view := decodeBody[httphandler.CartView](t, rec)
		assert.Empty(t, view.Items)
	})

	t.Run("NonJSONBodyRejected", func(t *testing.T) {
		h := newTestHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewBufferString("product_id=1"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}

func TestCheckoutAndOrdersEndpoints(t *testing.T) {
	customer := httphandler.CustomerPayload{
		Name:          "Ayu Lestari",
		Email:         "ayu@example.com",
		Address:       "Jl. Melati 5, Bandung",
		Phone:         "+62-812-0000-1111",
		PaymentMethod: "COD",
	}

	t.Run("EmptyCart", func(t *testing.T) {
		h := newTestHandler(t)

		rec := doJSON(t, h, http.MethodPost, "/v1/checkout", httphandler.CheckoutRequest{Customer: customer})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("FullCartFlow", func(t *testing.T) {
		h := newTestHandler(t)

		doJSON(t, h, http.MethodPost, "/v1/cart/items", httphandler.AddCartItemRequest{ProductID: 1})
		doJSON(t, h, http.MethodPost, "/v1/cart/items", httphandler.AddCartItemRequest{ProductID: 4})

		rec := doJSON(t, h, http.MethodPost, "/v1/checkout?lang=en", httphandler.CheckoutRequest{Customer: customer})
		require.Equal(t, http.StatusCreated, rec.Code)

		resp := decodeBody[httphandler.CheckoutResponse](t, rec)
		assert.Contains(t, resp.OrderID, "ECO-")

		cartRec := doJSON(t, h, http.MethodGet, "/v1/cart", nil)
		cartView := decodeBody[httphandler.CartView](t, cartRec)
		assert.Empty(t, cartView.Items)

		ordersRec := doJSON(t, h, http.MethodGet, "/v1/orders?lang=en", nil)
		require.Equal(t, http.StatusOK, ordersRec.Code)
		orders := decodeBody[[]httphandler.OrderView](t, ordersRec)
		require.Len(t, orders, 1)
		assert.Equal(t, resp.OrderID, orders[0].ID)
		assert.Equal(t, 205000.0, orders[0].Total)
		assert.Equal(t, "IDR 205,000", orders[0].DisplayTotal)
		assert.NotEmpty(t, orders[0].PlacedAt)
	})

	t.Run("BatchLeavesUnselectedLines", func(t *testing.T) {
		h := newTestHandler(t)

		doJSON(t, h, http.MethodPost, "/v1/cart/items", httphandler.AddCartItemRequest{ProductID: 1})
		doJSON(t, h, http.MethodPost, "/v1/cart/items", httphandler.AddCartItemRequest{ProductID: 2})

		req := httphandler.CheckoutRequest{
			Customer:   customer,
			BatchItems: []httphandler.SelectionItemPayload{{ProductID: 1}},
		}
		rec := doJSON(t, h, http.MethodPost, "/v1/checkout", req)
		require.Equal(t, http.StatusCreated, rec.Code)

		cartRec := doJSON(t, h, http.MethodGet, "/v1/cart", nil)
		cartView := decodeBody[httphandler.CartView](t, cartRec)
		require.Len(t, cartView.Items, 1)
		assert.Equal(t, 2, cartView.Items[0].ProductID)
	})
}

func TestAuthEndpoints(t *testing.T) {
	t.Run("RegisterLoginProfile", func(t *testing.T) {
		h := newTestHandler(t)

		rec := doJSON(t, h, http.MethodPost, "/v1/auth/register", httphandler.RegisterRequest{
			Name: "Ayu", Email: "ayu@example.com", Password: "rahasia123",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(t, h, http.MethodPost, "/v1/auth/login", httphandler.LoginRequest{
			Email: "ayu@example.com", Password: "whatever",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, h, http.MethodPatch, "/v1/profile", httphandler.ProfileUpdateRequest{Address: "Bandung"})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, h, http.MethodGet, "/v1/profile", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		profile := decodeBody[httphandler.ProfileView](t, rec)
		assert.Equal(t, "Bandung", profile.Address)
	})

	t.Run("LoginWithoutProfile", func(t *testing.T) {
		h := newTestHandler(t)

		rec := doJSON(t, h, http.MethodPost, "/v1/auth/login", httphandler.LoginRequest{Email: "no@one.com"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Logout", func(t *testing.T) {
		h := newTestHandler(t)

		doJSON(t, h, http.MethodPost, "/v1/auth/register", httphandler.RegisterRequest{
			Name: "Ayu", Email: "ayu@example.com", Password: "pw",
		})
		rec := doJSON(t, h, http.MethodPost, "/v1/auth/logout", nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, h, http.MethodGet, "/v1/profile", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSettingsEndpoints(t *testing.T) {
	t.Run("LanguageRoundTrip", func(t *testing.T) {
		h := newTestHandler(t)

		rec := doJSON(t, h, http.MethodGet, "/v1/settings/language", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "id", decodeBody[httphandler.PreferenceValue](t, rec).Value)

		rec = doJSON(t, h, http.MethodPut, "/v1/settings/language", httphandler.PreferenceValue{Value: "en"})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, h, http.MethodGet, "/v1/settings/language", nil)
		assert.Equal(t, "en", decodeBody[httphandler.PreferenceValue](t, rec).Value)
	})

	t.Run("ThemeValidation", func(t *testing.T) {
		h := newTestHandler(t)

		rec := doJSON(t, h, http.MethodPut, "/v1/settings/theme", httphandler.PreferenceValue{Value: "solarized"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = doJSON(t, h, http.MethodPut, "/v1/settings/theme", httphandler.PreferenceValue{Value: "dark"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "dark", decodeBody[httphandler.PreferenceValue](t, rec).Value)
	})
}
