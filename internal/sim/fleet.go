package sim

import (
	"context"
	"math"
	"sync"
	"time"

	"fuel-custody-service/internal/domain"
	"fuel-custody-service/internal/metrics"
)

// Progress at or beyond which a truck is considered arrived. The
// delivered transition is unconditional: it wins over an active alert
// status, so an alert truck that finishes its corridor still lands in
// the delivered terminal state.
const DeliveredThreshold = 0.99

// Per-tick tuning. Temperature and density drift independently; volume
// follows temperature through the fuel's thermal coefficient.
const (
	minProgressStep = 0.001
	maxProgressStep = 0.003
	maxTempStep     = 0.2
	maxDensityStep  = 0.15
	minSpeedKmh     = 55.0
	maxSpeedKmh     = 100.0
)

// Simulator owns the mutable truck collection and advances it on a
// fixed cadence. A single goroutine runs the tick loop; readers take
// consistent snapshots through Snapshot and never observe a partially
// advanced fleet.
type Simulator struct {
	mu       sync.Mutex
	trucks   []*domain.Truck
	rng      *LCG
	count    int
	interval time.Duration
	now      func() time.Time
}

func NewSimulator(count int, interval time.Duration) *Simulator {
	s := &Simulator{
		count:    count,
		interval: interval,
		now:      time.Now,
	}
	s.rebuild()
	return s
}

func (s *Simulator) rebuild() {
	now := s.now()
	trucks := make([]*domain.Truck, 0, s.count)
	for i := 0; i < s.count; i++ {
		trucks = append(trucks, buildTruck(i, now))
	}
	s.trucks = trucks
	// Tick perturbations use their own stream so re-seeding the fleet
	// restarts the whole run deterministically.
	s.rng = NewLCG(uint32(s.count) * 2654435761)
}

// Reset discards the fleet and rebuilds it from scratch, as happens on
// every fresh session of the tracking view.
func (s *Simulator) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rebuild()
}

// Snapshot returns deep copies of all trucks in index order.
func (s *Simulator) Snapshot() []*domain.Truck {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Truck, 0, len(s.trucks))
	for _, t := range s.trucks {
		out = append(out, t.Clone())
	}
	return out
}

// Tick advances every truck by one simulation step.
func (s *Simulator) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.trucks {
		s.advance(t)
	}
	metrics.SimulatorTicks.Add(1)
}

// Run drives Tick on the configured cadence until ctx is cancelled.
// There are no other stop semantics: the simulation runs indefinitely
// once started.
func (s *Simulator) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Tick()
		case <-ctx.Done():
			return
		}
	}
}

// advance is the per-truck transition: pure function of the truck and
// the tick RNG stream. Frozen trucks (delivered, loading) are skipped
// entirely, which also stops sensor mutation from the tick after
// arrival.
func (s *Simulator) advance(t *domain.Truck) {
	if t.Status.Frozen() {
		return
	}

	// A dwelling truck holds position until its stop drains; sensors
	// keep drifting while parked.
	if t.DwellTime > 0 {
		t.SpeedKmh = 0
		t.DwellTime -= s.interval
		if t.DwellTime < 0 {
			t.DwellTime = 0
		}
	} else {
		t.RouteProgress += s.rng.Between(minProgressStep, maxProgressStep)
		if t.RouteProgress > 1 {
			t.RouteProgress = 1
		}
		t.Position = Interpolate(RouteFor(t.RouteKey), t.RouteProgress)
		t.SpeedKmh = s.rng.Between(minSpeedKmh, maxSpeedKmh)
	}

	tempDelta := s.rng.Between(-maxTempStep, maxTempStep)
	t.CurrentTemp += tempDelta
	t.CurrentDensity += s.rng.Between(-maxDensityStep, maxDensityStep)

	// Legitimate thermal volume change, distinct from the one-off
	// illegal loss applied at truck creation.
	t.CurrentVolume += int(math.Round(float64(t.CurrentVolume) * t.FuelType.ThermalCoeff() * tempDelta))

	t.VolumeVariancePct = variancePct(float64(t.CurrentVolume), float64(t.BaselineVolume))
	t.DensityVariancePct = variancePct(t.CurrentDensity, t.BaselineDensity)

	t.Status = deriveStatus(t.RouteProgress, false, hasUnacknowledged(t.Alerts))
	if t.Status == domain.StatusDelivered {
		t.SpeedKmh = 0
	}
}

// deriveStatus is the single authoritative status function. Precedence:
// delivered beats everything (including alert), then loading, then an
// unacknowledged alert, then plain in-transit.
func deriveStatus(progress float64, loading, unackedAlert bool) domain.TruckStatus {
	switch {
	case progress >= DeliveredThreshold:
		return domain.StatusDelivered
	case loading:
		return domain.StatusLoading
	case unackedAlert:
		return domain.StatusAlert
	default:
		return domain.StatusInTransit
	}
}
