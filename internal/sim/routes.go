package sim

import "fuel-custody-service/internal/domain"

// DefaultRouteKey is the corridor a truck falls back to when its route
// key is unknown, keeping the simulation live instead of failing.
const DefaultRouteKey = "mombasa-nairobi"

// Static registry of the 11 fuel corridors the demo covers. Read-only
// reference data; waypoints trace the main trunk roads between KPC
// depots and their supplied towns.
var routes = map[string]domain.Route{
	"mombasa-nairobi": {Key: "mombasa-nairobi", Waypoints: []domain.Waypoint{
		{Lat: -4.0435, Lon: 39.6682},
		{Lat: -3.8304, Lon: 39.2671},
		{Lat: -3.3962, Lon: 38.5561},
		{Lat: -2.6851, Lon: 38.1680},
		{Lat: -2.2573, Lon: 37.8247},
		{Lat: -1.8021, Lon: 37.4892},
		{Lat: -1.5217, Lon: 37.2634},
		{Lat: -1.2864, Lon: 36.8172},
	}},
	"nairobi-nakuru": {Key: "nairobi-nakuru", Waypoints: []domain.Waypoint{
		{Lat: -1.2864, Lon: 36.8172},
		{Lat: -1.1004, Lon: 36.6470},
		{Lat: -0.9230, Lon: 36.4581},
		{Lat: -0.7172, Lon: 36.4310},
		{Lat: -0.5601, Lon: 36.3121},
		{Lat: -0.3031, Lon: 36.0800},
	}},
	"nakuru-eldoret": {Key: "nakuru-eldoret", Waypoints: []domain.Waypoint{
		{Lat: -0.3031, Lon: 36.0800},
		{Lat: -0.1835, Lon: 35.9520},
		{Lat: 0.0512, Lon: 35.7301},
		{Lat: 0.2326, Lon: 35.5034},
		{Lat: 0.5143, Lon: 35.2698},
	}},
	"nairobi-kisumu": {Key: "nairobi-kisumu", Waypoints: []domain.Waypoint{
		{Lat: -1.2864, Lon: 36.8172},
		{Lat: -0.7172, Lon: 36.4310},
		{Lat: -0.3031, Lon: 36.0800},
		{Lat: -0.3689, Lon: 35.2834},
		{Lat: -0.2027, Lon: 35.0023},
		{Lat: -0.0917, Lon: 34.7680},
	}},
	"eldoret-kitale": {Key: "eldoret-kitale", Waypoints: []domain.Waypoint{
		{Lat: 0.5143, Lon: 35.2698},
		{Lat: 0.7421, Lon: 35.1506},
		{Lat: 1.0157, Lon: 35.0062},
	}},
	"kisumu-kakamega": {Key: "kisumu-kakamega", Waypoints: []domain.Waypoint{
		{Lat: -0.0917, Lon: 34.7680},
		{Lat: 0.0623, Lon: 34.7210},
		{Lat: 0.2827, Lon: 34.7519},
	}},
	"nairobi-nyeri": {Key: "nairobi-nyeri", Waypoints: []domain.Waypoint{
		{Lat: -1.2864, Lon: 36.8172},
		{Lat: -1.0388, Lon: 37.0834},
		{Lat: -0.7393, Lon: 37.1526},
		{Lat: -0.4246, Lon: 36.9478},
	}},
	"mombasa-malindi": {Key: "mombasa-malindi", Waypoints: []domain.Waypoint{
		{Lat: -4.0435, Lon: 39.6682},
		{Lat: -3.6305, Lon: 39.8499},
		{Lat: -3.2192, Lon: 40.1169},
	}},
	"nakuru-kericho": {Key: "nakuru-kericho", Waypoints: []domain.Waypoint{
		{Lat: -0.3031, Lon: 36.0800},
		{Lat: -0.3689, Lon: 35.6501},
		{Lat: -0.3692, Lon: 35.2834},
	}},
	"eldoret-malaba": {Key: "eldoret-malaba", Waypoints: []domain.Waypoint{
		{Lat: 0.5143, Lon: 35.2698},
		{Lat: 0.5635, Lon: 34.8530},
		{Lat: 0.6366, Lon: 34.2810},
	}},
	"nairobi-machakos": {Key: "nairobi-machakos", Waypoints: []domain.Waypoint{
		{Lat: -1.2864, Lon: 36.8172},
		{Lat: -1.4053, Lon: 37.0144},
		{Lat: -1.5217, Lon: 37.2634},
	}},
}

// RouteFor resolves a corridor by key, falling back to the default
// corridor for unknown keys.
func RouteFor(key string) domain.Route {
	if r, ok := routes[key]; ok {
		return r
	}
	return routes[DefaultRouteKey]
}

// RouteKeys returns all registered corridor keys.
func RouteKeys() []string {
	keys := make([]string, 0, len(routes))
	for k := range routes {
		keys = append(keys, k)
	}
	return keys
}
