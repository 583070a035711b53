package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"fuel-custody-service/internal/api/dto"
	"fuel-custody-service/internal/domain"
	"fuel-custody-service/internal/ports"
	"fuel-custody-service/internal/services"
)

// MonitoringHandler serves the wet-stock ledger, incidents and the
// derived risk analytics for the reports view. Risk output is
// recomputed from fresh snapshots on every request; nothing is cached
// between invocations.
type MonitoringHandler struct {
	Stock        ports.StockRepository
	IncidentRepo ports.IncidentRepository
}

func (h *MonitoringHandler) ListStock(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	records, err := h.Stock.ListStock(r.Context())
	if err != nil {
		log.Printf("list stock failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListStockResponse{Records: make([]dto.StockResponse, 0, len(records))}
	for _, rec := range records {
		res.Records = append(res.Records, dto.FromStock(rec))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Incidents dispatches the collection endpoint: GET lists, POST reports
// a new incident.
func (h *MonitoringHandler) Incidents(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listIncidents(w, r)
	case http.MethodPost:
		h.createIncident(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *MonitoringHandler) listIncidents(w http.ResponseWriter, r *http.Request) {
	incidents, err := h.IncidentRepo.ListIncidents(r.Context())
	if err != nil {
		log.Printf("list incidents failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListIncidentsResponse{Incidents: make([]dto.IncidentResponse, 0, len(incidents))}
	for _, inc := range incidents {
		res.Incidents = append(res.Incidents, dto.FromIncident(inc))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *MonitoringHandler) createIncident(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateIncidentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Location) == "" || strings.TrimSpace(req.Type) == "" {
		writeError(w, r, http.StatusBadRequest, "location and type are required")
		return
	}

	severity := domain.AlertSeverity(req.Severity)
	if severity != domain.SeverityHigh && severity != domain.SeverityMedium && severity != domain.SeverityLow {
		severity = domain.SeverityMedium
	}

	inc := &domain.Incident{
		ID:         uuid.NewString(),
		Location:   req.Location,
		Type:       req.Type,
		Severity:   severity,
		Timestamp:  time.Now(),
		Status:     domain.IncidentOpen,
		AssignedTo: req.AssignedTo,
	}
	if err := h.IncidentRepo.CreateIncident(r.Context(), inc); err != nil {
		log.Printf("create incident failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.FromIncident(inc))
}

func (h *MonitoringHandler) riskProfiles(r *http.Request) ([]domain.RiskProfile, error) {
	stocks, err := h.Stock.ListStock(r.Context())
	if err != nil {
		return nil, err
	}
	incidents, err := h.IncidentRepo.ListIncidents(r.Context())
	if err != nil {
		return nil, err
	}
	return services.BuildRiskProfiles(stocks, incidents), nil
}

func (h *MonitoringHandler) RiskProfiles(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	profiles, err := h.riskProfiles(r)
	if err != nil {
		log.Printf("risk profiles failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.RiskReportResponse{Profiles: profiles})
}

func (h *MonitoringHandler) RiskZones(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	profiles, err := h.riskProfiles(r)
	if err != nil {
		log.Printf("risk zones failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.GroupRiskResponse{Groups: services.AggregateByZone(profiles)})
}

func (h *MonitoringHandler) RiskOperators(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	profiles, err := h.riskProfiles(r)
	if err != nil {
		log.Printf("risk operators failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.GroupRiskResponse{Groups: services.AggregateByOperator(profiles)})
}

func (h *MonitoringHandler) EnforcementPlan(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	profiles, err := h.riskProfiles(r)
	if err != nil {
		log.Printf("enforcement plan failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.EnforcementResponse{Actions: services.PlanEnforcement(profiles)})
}
