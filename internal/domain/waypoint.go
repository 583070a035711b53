package domain

import "math"

// Immutable geographic coordinates (latitude, longitude).
type Waypoint struct {
	Lat float64
	Lon float64
}

// Return coordinates as [lat, lon] for external API compatibility.
func (w Waypoint) CoordsToList() []float64 { return []float64{w.Lat, w.Lon} }

func (w Waypoint) IsValid() bool {
	return !math.IsNaN(w.Lat) && !math.IsNaN(w.Lon) &&
		w.Lat >= -90 && w.Lat <= 90 && w.Lon >= -180 && w.Lon <= 180
}

// Represents a named transport corridor as an ordered waypoint polyline.
// Routes are shared read-only reference data and are never mutated after
// registration.
type Route struct {
	Key       string
	Waypoints []Waypoint
}
