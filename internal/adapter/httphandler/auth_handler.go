package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ecogoods/storefront/internal/core/domain"
	"github.com/ecogoods/storefront/internal/core/port"
)

// POST  /v1/auth/register JSON RegisterRequest (201 Created, 400 Bad request)
// POST  /v1/auth/login JSON LoginRequest (200 OK, 401 Unauthorized)
// POST  /v1/auth/logout (204 No content)
// GET   /v1/profile (200 OK, 404 Not found)
// PATCH /v1/profile JSON ProfileUpdateRequest (200 OK, 404 Not found)

type authPort interface {
	port.Registrar
	port.Authenticator
	port.ProfileKeeper
}

type AuthHandler struct {
	auth authPort
}

func RegisterAuth(mux *http.ServeMux, auth authPort) {
	h := AuthHandler{auth}
	mux.HandleFunc("POST /v1/auth/register", h.Register)
	mux.HandleFunc("POST /v1/auth/login", h.Login)
	mux.HandleFunc("POST /v1/auth/logout", h.Logout)
	mux.HandleFunc("GET /v1/profile", h.GetProfile)
	mux.HandleFunc("PATCH /v1/profile", h.UpdateProfile)
}

func (h AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.Register"
	log := slog.With("op", op)

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	u, err := h.auth.Register(req.Name, req.Email, req.Password)
	if err != nil {
		http.Error(w, "failed to register", http.StatusBadRequest)
		log.Warn("failed to register", "err", err)
		return
	}

	writeJSON(w, http.StatusCreated, toProfileView(u))
}

func (h AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.Login"
	log := slog.With("op", op)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	u, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownUser) {
			http.Error(w, "unknown user", http.StatusUnauthorized)
			return
		}
		http.Error(w, "failed to login", http.StatusInternalServerError)
		log.Error("failed to login", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileView(u))
}

func (h AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	h.auth.Logout()
	w.WriteHeader(http.StatusNoContent)
}

func (h AuthHandler) GetProfile(w http.ResponseWriter, _ *http.Request) {
	u, err := h.auth.Current()
	if err != nil {
		http.Error(w, "no stored profile", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toProfileView(u))
}

func (h AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.UpdateProfile"
	log := slog.With("op", op)

	var req ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	u, err := h.auth.UpdateProfile(domain.User{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnknownUser) {
			http.Error(w, "no stored profile", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to update profile", http.StatusInternalServerError)
		log.Error("failed to update profile", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileView(u))
}
