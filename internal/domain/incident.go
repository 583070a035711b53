package domain

import "time"

type IncidentStatus string

const (
	IncidentOpen          IncidentStatus = "open"
	IncidentInvestigating IncidentStatus = "investigating"
	IncidentResolved      IncidentStatus = "resolved"
)

// Reported event at a monitored location (theft, adulteration, seal
// tampering and the like). Severity reuses the alert scale.
type Incident struct {
	ID         string         `json:"id"`
	Location   string         `json:"location"`
	Type       string         `json:"type"`
	Severity   AlertSeverity  `json:"severity"`
	Timestamp  time.Time      `json:"timestamp"`
	Status     IncidentStatus `json:"status"`
	AssignedTo string         `json:"assigned_to"`
}
