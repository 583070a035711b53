package sim

import (
	"math"

	"fuel-custody-service/internal/domain"
)

// Interpolate computes the position on a corridor polyline for a
// progress fraction in [0,1].
//
// Progress is scaled across the full waypoint sequence: 0 maps to the
// first waypoint, 1 to the last, and intermediate values blend linearly
// within the segment the scaled index falls into. Pure function of its
// two inputs.
func Interpolate(route domain.Route, progress float64) domain.Waypoint {
	pts := route.Waypoints
	if len(pts) == 0 {
		return domain.Waypoint{}
	}
	if len(pts) == 1 || progress <= 0 {
		return pts[0]
	}
	if progress >= 1 {
		return pts[len(pts)-1]
	}

	scaled := progress * float64(len(pts)-1)
	i := int(math.Floor(scaled))
	// Guard the final segment: floor can land on the last index when
	// progress is just below 1.
	if i >= len(pts)-1 {
		i = len(pts) - 2
	}
	frac := scaled - float64(i)

	a, b := pts[i], pts[i+1]
	return domain.Waypoint{
		Lat: a.Lat + (b.Lat-a.Lat)*frac,
		Lon: a.Lon + (b.Lon-a.Lon)*frac,
	}
}
