package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ecogoods/storefront/internal/core/port"
)

// activeLanguage picks the display language for a request: explicit
// ?lang= query first, stored preference otherwise.
func activeLanguage(r *http.Request, prefs port.PreferenceKeeper) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return lang
	}
	return prefs.Language()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	const op = "httphandler.writeJSON"

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.With("op", op).Error("failed to write response body", "err", err)
	}
}
