package handlers

import (
	"net/http"

	"fuel-custody-service/internal/api/dto"
	"fuel-custody-service/internal/sim"
)

// FleetHandler exposes the live simulator state for the tracking map.
type FleetHandler struct {
	Sim *sim.Simulator
}

// Snapshot returns a consistent copy of the whole fleet. Readers never
// observe a partially advanced tick.
func (h *FleetHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	trucks := h.Sim.Snapshot()
	res := dto.FleetResponse{Trucks: make([]dto.TruckResponse, 0, len(trucks))}
	for _, t := range trucks {
		res.Trucks = append(res.Trucks, dto.FromTruck(t))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Reset rebuilds the simulated fleet, as a fresh tracking session does.
func (h *FleetHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	h.Sim.Reset()
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "reset"})
}
