package handlers

import (
	"log"
	"net/http"
	"strings"

	"fuel-custody-service/internal/api/dto"
	"fuel-custody-service/internal/domain"
	"fuel-custody-service/internal/ports"
)

// DirectoryHandler exposes the WSM depot/station directory and login.
type DirectoryHandler struct {
	Dir   ports.DirectoryRepository
	Users ports.UserRepository
}

func (h *DirectoryHandler) ListDepots(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	depots, err := h.Dir.ListDepots(r.Context())
	if err != nil {
		log.Printf("list depots failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListDepotsResponse{Depots: make([]dto.DepotResponse, 0, len(depots))}
	for _, d := range depots {
		res.Depots = append(res.Depots, dto.FromDepot(d))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *DirectoryHandler) ListStations(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	stations, err := h.Dir.ListStations(r.Context())
	if err != nil {
		log.Printf("list stations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListStationsResponse{Stations: make([]dto.StationResponse, 0, len(stations))}
	for _, s := range stations {
		res.Stations = append(res.Stations, dto.FromStation(s))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Login matches or creates an account by role string. There is no
// credential validation; the response carries the capability set for
// the client to gate its views with.
func (h *DirectoryHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	role := strings.TrimSpace(strings.ToLower(req.Role))
	if role == "" {
		writeError(w, r, http.StatusBadRequest, "role is required")
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "Operator"
	}

	user, err := h.Users.FindOrCreateByRole(r.Context(), name, role)
	if err != nil {
		log.Printf("login failed: role=%q err=%v", role, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.LoginResponse{
		User:         *user,
		Capabilities: domain.Capabilities(user.Role),
	})
}
