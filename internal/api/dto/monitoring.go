package dto

import (
	"time"

	"fuel-custody-service/internal/domain"
)

type StockResponse struct {
	Location          string                 `json:"location"`
	Opening           int                    `json:"opening"`
	Current           int                    `json:"current"`
	Capacity          int                    `json:"capacity"`
	Variance          float64                `json:"variance"`
	Receipts          int                    `json:"receipts"`
	Withdrawals       int                    `json:"withdrawals"`
	Losses            int                    `json:"losses"`
	Company           string                 `json:"company"`
	CalculatedClosing int                    `json:"calculated_closing"`
	Discrepancy       int                    `json:"discrepancy"`
	PerFuel           []domain.FuelBreakdown `json:"per_fuel"`
}

type ListStockResponse struct {
	Records []StockResponse `json:"records"`
}

func FromStock(s *domain.StockRecord) StockResponse {
	return StockResponse{
		Location:          s.Location,
		Opening:           s.Opening,
		Current:           s.Current,
		Capacity:          s.Capacity,
		Variance:          s.Variance,
		Receipts:          s.Receipts,
		Withdrawals:       s.Withdrawals,
		Losses:            s.Losses,
		Company:           s.Company,
		CalculatedClosing: s.CalculatedClosing(),
		Discrepancy:       s.Discrepancy(),
		PerFuel:           s.PerFuel,
	}
}

type IncidentResponse struct {
	ID         string    `json:"id"`
	Location   string    `json:"location"`
	Type       string    `json:"type"`
	Severity   string    `json:"severity"`
	Timestamp  time.Time `json:"timestamp"`
	Status     string    `json:"status"`
	AssignedTo string    `json:"assigned_to"`
}

type ListIncidentsResponse struct {
	Incidents []IncidentResponse `json:"incidents"`
}

type CreateIncidentRequest struct {
	Location   string `json:"location"`
	Type       string `json:"type"`
	Severity   string `json:"severity"`
	AssignedTo string `json:"assigned_to"`
}

func FromIncident(inc *domain.Incident) IncidentResponse {
	return IncidentResponse{
		ID:         inc.ID,
		Location:   inc.Location,
		Type:       inc.Type,
		Severity:   string(inc.Severity),
		Timestamp:  inc.Timestamp,
		Status:     string(inc.Status),
		AssignedTo: inc.AssignedTo,
	}
}

type RiskReportResponse struct {
	Profiles []domain.RiskProfile `json:"profiles"`
}

type GroupRiskResponse struct {
	Groups []domain.GroupRisk `json:"groups"`
}

type EnforcementResponse struct {
	Actions []domain.EnforcementAction `json:"actions"`
}
