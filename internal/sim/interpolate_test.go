package sim

import (
	"math"
	"testing"

	"fuel-custody-service/internal/domain"
)

func wpEqual(a, b domain.Waypoint) bool {
	return math.Abs(a.Lat-b.Lat) < 1e-9 && math.Abs(a.Lon-b.Lon) < 1e-9
}

func TestInterpolateEndpoints(t *testing.T) {
	for _, key := range RouteKeys() {
		route := RouteFor(key)
		pts := route.Waypoints

		if got := Interpolate(route, 0); !wpEqual(got, pts[0]) {
			t.Errorf("%s: progress 0 = %+v, want first waypoint %+v", key, got, pts[0])
		}
		if got := Interpolate(route, 1); !wpEqual(got, pts[len(pts)-1]) {
			t.Errorf("%s: progress 1 = %+v, want last waypoint %+v", key, got, pts[len(pts)-1])
		}
		if got := Interpolate(route, -0.5); !wpEqual(got, pts[0]) {
			t.Errorf("%s: negative progress = %+v, want first waypoint", key, got)
		}
		if got := Interpolate(route, 1.5); !wpEqual(got, pts[len(pts)-1]) {
			t.Errorf("%s: progress beyond 1 = %+v, want last waypoint", key, got)
		}
	}
}

func TestInterpolateMidSegment(t *testing.T) {
	route := RouteFor("eldoret-kitale") // 3 waypoints

	// progress 0.5 scales to index 1 exactly.
	if got := Interpolate(route, 0.5); !wpEqual(got, route.Waypoints[1]) {
		t.Fatalf("progress 0.5 = %+v, want middle waypoint %+v", got, route.Waypoints[1])
	}

	// progress 0.25 lands halfway along the first segment.
	a, b := route.Waypoints[0], route.Waypoints[1]
	want := domain.Waypoint{Lat: (a.Lat + b.Lat) / 2, Lon: (a.Lon + b.Lon) / 2}
	if got := Interpolate(route, 0.25); !wpEqual(got, want) {
		t.Fatalf("progress 0.25 = %+v, want segment midpoint %+v", got, want)
	}
}

func TestInterpolateNearArrival(t *testing.T) {
	// Progress just under 1 must stay inside the final segment rather
	// than index past the polyline.
	for _, key := range RouteKeys() {
		route := RouteFor(key)
		got := Interpolate(route, 0.9999999)
		last := route.Waypoints[len(route.Waypoints)-1]
		if math.Abs(got.Lat-last.Lat) > 0.01 || math.Abs(got.Lon-last.Lon) > 0.01 {
			t.Errorf("%s: near-arrival position %+v far from terminus %+v", key, got, last)
		}
	}
}

func TestInterpolateDegenerateRoutes(t *testing.T) {
	empty := domain.Route{Key: "empty"}
	if got := Interpolate(empty, 0.5); !wpEqual(got, domain.Waypoint{}) {
		t.Fatalf("empty route = %+v, want zero waypoint", got)
	}

	single := domain.Route{Key: "single", Waypoints: []domain.Waypoint{{Lat: 1, Lon: 2}}}
	if got := Interpolate(single, 0.7); !wpEqual(got, single.Waypoints[0]) {
		t.Fatalf("single-point route = %+v, want its only waypoint", got)
	}
}

func TestRouteForUnknownKeyFallsBack(t *testing.T) {
	got := RouteFor("no-such-corridor")
	if got.Key != DefaultRouteKey {
		t.Fatalf("fallback route key = %q, want %q", got.Key, DefaultRouteKey)
	}
}
