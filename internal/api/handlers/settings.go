package handlers

import (
	"log"
	"net/http"

	"fuel-custody-service/internal/ports"
)

// SettingsHandler reads and writes the app's key-value settings
// (title, permission overrides). Writes persist immediately.
type SettingsHandler struct {
	Store ports.SettingsStore
}

func (h *SettingsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPut:
		h.update(w, r)
	default:
		w.Header().Set("Allow", "GET, PUT")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *SettingsHandler) list(w http.ResponseWriter, r *http.Request) {
	values, err := h.Store.All(r.Context())
	if err != nil {
		log.Printf("settings load failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, r, http.StatusOK, values)
}

func (h *SettingsHandler) update(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req) == 0 {
		writeError(w, r, http.StatusBadRequest, "no settings provided")
		return
	}

	for k, v := range req {
		if err := h.Store.Set(r.Context(), k, v); err != nil {
			log.Printf("settings save failed: key=%q err=%v", k, err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	values, err := h.Store.All(r.Context())
	if err != nil {
		log.Printf("settings reload failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, r, http.StatusOK, values)
}
