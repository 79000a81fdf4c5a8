package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ecogoods/storefront/internal/core/port"
)

// GET /v1/settings/language (200 OK)  PUT /v1/settings/language (200 OK, 400 Bad request)
// GET /v1/settings/theme    (200 OK)  PUT /v1/settings/theme    (200 OK, 400 Bad request)

type SettingsHandler struct {
	prefs port.PreferenceKeeper
}

func RegisterSettings(mux *http.ServeMux, prefs port.PreferenceKeeper) {
	h := SettingsHandler{prefs}
	mux.HandleFunc("GET /v1/settings/language", h.GetLanguage)
	mux.HandleFunc("PUT /v1/settings/language", h.PutLanguage)
	mux.HandleFunc("GET /v1/settings/theme", h.GetTheme)
	mux.HandleFunc("PUT /v1/settings/theme", h.PutTheme)
}

func (h SettingsHandler) GetLanguage(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, PreferenceValue{Value: h.prefs.Language()})
}

func (h SettingsHandler) PutLanguage(w http.ResponseWriter, r *http.Request) {
	h.put(w, r, "SettingsHandler.PutLanguage", h.prefs.SetLanguage, h.prefs.Language)
}

func (h SettingsHandler) GetTheme(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, PreferenceValue{Value: h.prefs.Theme()})
}

func (h SettingsHandler) PutTheme(w http.ResponseWriter, r *http.Request) {
	h.put(w, r, "SettingsHandler.PutTheme", h.prefs.SetTheme, h.prefs.Theme)
}

func (h SettingsHandler) put(
	w http.ResponseWriter, r *http.Request,
	op string, set func(string) error, get func() string,
) {
	log := slog.With("op", op)

	var req PreferenceValue
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if err := set(req.Value); err != nil {
		http.Error(w, "invalid preference value", http.StatusBadRequest)
		log.Warn("rejected preference", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, PreferenceValue{Value: get()})
}
