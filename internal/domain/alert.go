package domain

import "time"

type AlertType string

const (
	AlertVolumeDrop       AlertType = "volume_drop"
	AlertDensityShift     AlertType = "density_shift"
	AlertRouteDeviation   AlertType = "route_deviation"
	AlertUnauthorizedStop AlertType = "unauthorized_stop"
	AlertTempAnomaly      AlertType = "temp_anomaly"
	AlertSealBreach       AlertType = "seal_breach"
	AlertGeofence         AlertType = "geofence"
)

type AlertSeverity string

const (
	SeverityHigh   AlertSeverity = "high"
	SeverityMedium AlertSeverity = "medium"
	SeverityLow    AlertSeverity = "low"
)

// Anomaly event attached to a truck at simulation start. The alert set
// is fixed for the lifetime of a run; only Acknowledged may change.
type TruckAlert struct {
	ID           string        `json:"id"`
	Type         AlertType     `json:"type"`
	Severity     AlertSeverity `json:"severity"`
	Message      string        `json:"message"`
	Timestamp    time.Time     `json:"timestamp"`
	Acknowledged bool          `json:"acknowledged"`
}
