package sim

import (
	"testing"
	"time"

	"fuel-custody-service/internal/domain"
)

var buildTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func alertTypes(alerts []domain.TruckAlert) map[domain.AlertType]domain.TruckAlert {
	out := make(map[domain.AlertType]domain.TruckAlert, len(alerts))
	for _, a := range alerts {
		out[a.Type] = a
	}
	return out
}

func TestBuildTruckDeterminism(t *testing.T) {
	a := buildTruck(5, buildTime)
	b := buildTruck(5, buildTime)

	if a.ID != b.ID || a.Plate != b.Plate || a.Driver != b.Driver {
		t.Fatalf("identity fields diverged: %+v vs %+v", a, b)
	}
	if a.BaselineVolume != b.BaselineVolume || a.CurrentVolume != b.CurrentVolume {
		t.Fatalf("volumes diverged: %d/%d vs %d/%d",
			a.BaselineVolume, a.CurrentVolume, b.BaselineVolume, b.CurrentVolume)
	}
	if a.BaselineDensity != b.BaselineDensity || a.CurrentDensity != b.CurrentDensity {
		t.Fatal("densities diverged")
	}
	if a.RouteKey != b.RouteKey || a.RouteProgress != b.RouteProgress {
		t.Fatal("itineraries diverged")
	}
	if len(a.Alerts) != len(b.Alerts) {
		t.Fatalf("alert count diverged: %d vs %d", len(a.Alerts), len(b.Alerts))
	}
	// Alert IDs are fresh UUIDs each build; everything else must match.
	for i := range a.Alerts {
		if a.Alerts[i].Type != b.Alerts[i].Type || a.Alerts[i].Message != b.Alerts[i].Message {
			t.Fatalf("alert %d diverged: %+v vs %+v", i, a.Alerts[i], b.Alerts[i])
		}
	}
}

func TestBuildTruckCleanIndex(t *testing.T) {
	// Index 1 matches no anomaly condition: the per-truck density
	// jitter alone stays under the shift threshold.
	tr := buildTruck(1, buildTime)

	if len(tr.Alerts) != 0 {
		t.Fatalf("clean truck has %d alerts: %+v", len(tr.Alerts), tr.Alerts)
	}
	if tr.Status != domain.StatusInTransit {
		t.Fatalf("status = %q, want %q", tr.Status, domain.StatusInTransit)
	}
	if tr.RouteProgress < 0.05 || tr.RouteProgress >= 0.9 {
		t.Fatalf("initial progress %v out of [0.05,0.9)", tr.RouteProgress)
	}
	if !tr.SealIntact || !tr.GeofenceCompliant {
		t.Fatal("clean truck should have intact seal and geofence compliance")
	}
	if tr.CurrentVolume == tr.BaselineVolume && tr.CurrentTemp == tr.BaselineTemp {
		t.Fatal("expected thermal drift against baseline")
	}
}

func TestBuildTruckVolumeDropIndex(t *testing.T) {
	// 7 trips the i%7 condition only.
	tr := buildTruck(7, buildTime)

	byType := alertTypes(tr.Alerts)
	drop, ok := byType[domain.AlertVolumeDrop]
	if !ok {
		t.Fatalf("no volume_drop alert: %+v", tr.Alerts)
	}
	if drop.Acknowledged {
		t.Fatal("volume_drop on index 7 should be unacknowledged")
	}
	if drop.Severity != domain.SeverityHigh && drop.Severity != domain.SeverityMedium {
		t.Fatalf("unexpected severity %q", drop.Severity)
	}
	if tr.SealIntact {
		t.Fatal("truck with a deliberate loss should report a broken seal")
	}
	if tr.Status != domain.StatusAlert {
		t.Fatalf("status = %q, want %q", tr.Status, domain.StatusAlert)
	}
	if tr.CurrentVolume >= tr.BaselineVolume {
		t.Fatalf("current volume %d not below baseline %d", tr.CurrentVolume, tr.BaselineVolume)
	}
}

func TestBuildTruckUnauthorizedStopIndex(t *testing.T) {
	// 11 trips the i%11 condition only.
	tr := buildTruck(11, buildTime)

	byType := alertTypes(tr.Alerts)
	stop, ok := byType[domain.AlertUnauthorizedStop]
	if !ok {
		t.Fatalf("no unauthorized_stop alert: %+v", tr.Alerts)
	}
	if stop.Severity != domain.SeverityHigh {
		t.Fatalf("stop severity = %q, want high", stop.Severity)
	}
	if tr.DwellTime < 12*time.Minute || tr.DwellTime > 46*time.Minute {
		t.Fatalf("dwell %v out of [12m,46m]", tr.DwellTime)
	}
	if tr.SpeedKmh != 0 {
		t.Fatalf("dwelling truck speed = %v, want 0", tr.SpeedKmh)
	}
	if tr.GeofenceCompliant {
		t.Fatal("dwelling truck should be geofence non-compliant")
	}
	if tr.Status != domain.StatusAlert {
		t.Fatalf("status = %q, want %q", tr.Status, domain.StatusAlert)
	}
}

func TestBuildTruckPreAcknowledgedIndex(t *testing.T) {
	// 13 is an anomaly index whose alerts come pre-acknowledged, so the
	// truck stays in-transit despite carrying them.
	tr := buildTruck(13, buildTime)

	if len(tr.Alerts) == 0 {
		t.Fatal("index 13 should carry alerts")
	}
	for _, a := range tr.Alerts {
		if !a.Acknowledged {
			t.Fatalf("alert %q on index 13 not acknowledged", a.Type)
		}
	}
	if tr.Status != domain.StatusInTransit {
		t.Fatalf("status = %q, want %q", tr.Status, domain.StatusInTransit)
	}
}

func TestBuildTruckLoadingIndex(t *testing.T) {
	// Index 0 is a loading bay truck; loading outranks its (acknowledged)
	// alerts and pins progress to the depot.
	tr := buildTruck(0, buildTime)

	if tr.Status != domain.StatusLoading {
		t.Fatalf("status = %q, want %q", tr.Status, domain.StatusLoading)
	}
	if tr.RouteProgress != 0 {
		t.Fatalf("loading truck progress = %v, want 0", tr.RouteProgress)
	}
	depotStart := RouteFor(tr.RouteKey).Waypoints[0]
	if tr.Position != depotStart {
		t.Fatalf("loading truck position %+v, want depot %+v", tr.Position, depotStart)
	}
}

func TestBuildTruckBaselines(t *testing.T) {
	for i := 0; i < 40; i++ {
		tr := buildTruck(i, buildTime)
		if tr.BaselineVolume < 12000 || tr.BaselineVolume > 35000 || tr.BaselineVolume%1000 != 0 {
			t.Fatalf("truck %d baseline volume %d out of range", i, tr.BaselineVolume)
		}
		base := fuelBaselines[tr.FuelType]
		if tr.BaselineDensity < base.density-2 || tr.BaselineDensity > base.density+2 {
			t.Fatalf("truck %d baseline density %v outside %v±2", i, tr.BaselineDensity, base.density)
		}
		if _, ok := corridorEnds[tr.RouteKey]; !ok {
			t.Fatalf("truck %d assigned unknown corridor %q", i, tr.RouteKey)
		}
	}
}

func TestVariancePct(t *testing.T) {
	cases := []struct {
		current, baseline, want float64
	}{
		{950, 1000, 5.0},
		{1050, 1000, 5.0},
		{1000, 1000, 0},
		{992, 1000, 0.8},
		{5, 0, 0},
	}
	for _, c := range cases {
		if got := variancePct(c.current, c.baseline); got != c.want {
			t.Errorf("variancePct(%v, %v) = %v, want %v", c.current, c.baseline, got, c.want)
		}
	}
}
