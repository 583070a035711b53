package dto

import (
	"time"

	"fuel-custody-service/internal/domain"
)

type TruckAlertResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Severity     string    `json:"severity"`
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
	Acknowledged bool      `json:"acknowledged"`
}

type TruckResponse struct {
	ID          string `json:"id"`
	Plate       string `json:"plate"`
	Driver      string `json:"driver"`
	Transporter string `json:"transporter"`
	FuelType    string `json:"fuel_type"`

	Depot         string  `json:"depot"`
	Destination   string  `json:"destination"`
	RouteKey      string  `json:"route_key"`
	RouteProgress float64 `json:"route_progress"`
	Status        string  `json:"status"`

	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`

	SpeedKmh     float64 `json:"speed_kmh"`
	DwellMinutes int     `json:"dwell_minutes"`

	BaselineVolume int     `json:"baseline_volume"`
	CurrentVolume  int     `json:"current_volume"`
	CurrentTemp    float64 `json:"current_temp"`
	CurrentDensity float64 `json:"current_density"`

	VolumeVariancePct  float64 `json:"volume_variance_pct"`
	DensityVariancePct float64 `json:"density_variance_pct"`

	SealIntact        bool `json:"seal_intact"`
	GeofenceCompliant bool `json:"geofence_compliant"`

	Alerts []TruckAlertResponse `json:"alerts"`
}

type FleetResponse struct {
	Trucks []TruckResponse `json:"trucks"`
}

func FromTruck(t *domain.Truck) TruckResponse {
	alerts := make([]TruckAlertResponse, 0, len(t.Alerts))
	for _, a := range t.Alerts {
		alerts = append(alerts, TruckAlertResponse{
			ID:           a.ID,
			Type:         string(a.Type),
			Severity:     string(a.Severity),
			Message:      a.Message,
			Timestamp:    a.Timestamp,
			Acknowledged: a.Acknowledged,
		})
	}

	return TruckResponse{
		ID:          t.ID,
		Plate:       t.Plate,
		Driver:      t.Driver,
		Transporter: t.Transporter,
		FuelType:    string(t.FuelType),

		Depot:         t.Depot,
		Destination:   t.Destination,
		RouteKey:      t.RouteKey,
		RouteProgress: t.RouteProgress,
		Status:        string(t.Status),

		Lat: t.Position.Lat,
		Lon: t.Position.Lon,

		SpeedKmh:     t.SpeedKmh,
		DwellMinutes: int(t.DwellTime.Minutes()),

		BaselineVolume: t.BaselineVolume,
		CurrentVolume:  t.CurrentVolume,
		CurrentTemp:    t.CurrentTemp,
		CurrentDensity: t.CurrentDensity,

		VolumeVariancePct:  t.VolumeVariancePct,
		DensityVariancePct: t.DensityVariancePct,

		SealIntact:        t.SealIntact,
		GeofenceCompliant: t.GeofenceCompliant,

		Alerts: alerts,
	}
}
