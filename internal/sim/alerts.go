package sim

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"fuel-custody-service/internal/domain"
)

// Alert derivation runs once per truck at fleet construction, never per
// tick. Everything here is keyed off an LCG seeded by the truck index,
// so the same index always yields the same baselines, losses and alert
// set (alert IDs aside).

// Index positions flagged as anomalous: two independent periodic
// conditions so alert trucks are spread across the fleet.
func isAlertIndex(i int) bool { return i%7 == 0 || i%13 == 0 }

// Every 11th truck gets an unauthorized-stop event.
func hasStopIndex(i int) bool { return i%11 == 0 }

// Alerts on every 13th truck come pre-acknowledged (demo artifact kept
// from the reference data set).
func preAcknowledgedIndex(i int) bool { return i%13 == 0 }

const densityShiftThresholdPct = 0.8

var fuelTypes = []domain.FuelType{domain.FuelDiesel, domain.FuelGasoline, domain.FuelKerosene}

// Ambient loading temperature (Celsius) and density (kg/m3) per fuel,
// before per-truck jitter.
var fuelBaselines = map[domain.FuelType]struct {
	temp    float64
	density float64
}{
	domain.FuelDiesel:   {temp: 24.0, density: 835.0},
	domain.FuelGasoline: {temp: 22.0, density: 745.0},
	domain.FuelKerosene: {temp: 23.0, density: 795.0},
}

var driverNames = []string{
	"J. Mwangi", "P. Otieno", "S. Kiptoo", "D. Wafula", "A. Hassan",
	"M. Njoroge", "E. Chebet", "K. Mutua", "B. Ouma", "T. Barasa",
}

var transporterNames = []string{
	"Rift Valley Haulage", "Coast Bulk Carriers", "Highlands Logistics",
	"Tsavo Petroleum Movers", "Lake Basin Transport",
}

// Depot and destination names per corridor key.
var corridorEnds = map[string]struct{ depot, destination string }{
	"mombasa-nairobi":  {"Kipevu Depot, Mombasa", "Nairobi Terminal"},
	"nairobi-nakuru":   {"Nairobi Terminal", "Nakuru Depot"},
	"nakuru-eldoret":   {"Nakuru Depot", "Eldoret Depot"},
	"nairobi-kisumu":   {"Nairobi Terminal", "Kisumu Depot"},
	"eldoret-kitale":   {"Eldoret Depot", "Kitale Distribution Point"},
	"kisumu-kakamega":  {"Kisumu Depot", "Kakamega Distribution Point"},
	"nairobi-nyeri":    {"Nairobi Terminal", "Nyeri Distribution Point"},
	"mombasa-malindi":  {"Kipevu Depot, Mombasa", "Malindi Distribution Point"},
	"nakuru-kericho":   {"Nakuru Depot", "Kericho Distribution Point"},
	"eldoret-malaba":   {"Eldoret Depot", "Malaba Border Point"},
	"nairobi-machakos": {"Nairobi Terminal", "Machakos Distribution Point"},
}

// Corridor assignment order; fixed slice rather than map iteration so
// truck index i always maps to the same corridor.
var corridorOrder = []string{
	"mombasa-nairobi", "nairobi-nakuru", "nakuru-eldoret", "nairobi-kisumu",
	"eldoret-kitale", "kisumu-kakamega", "nairobi-nyeri", "mombasa-malindi",
	"nakuru-kericho", "eldoret-malaba", "nairobi-machakos",
}

// buildTruck derives one truck, its seeded baselines and its fixed
// alert set from the truck index.
func buildTruck(i int, now time.Time) *domain.Truck {
	rng := NewLCG(uint32(i) + 1)

	routeKey := corridorOrder[i%len(corridorOrder)]
	ends := corridorEnds[routeKey]
	fuel := Pick(rng, fuelTypes)
	base := fuelBaselines[fuel]

	baselineVolume := (12 + rng.IntN(24)) * 1000
	baselineTemp := base.temp + rng.Between(-1.5, 1.5)
	baselineDensity := base.density + rng.Between(-2.0, 2.0)

	// Legitimate thermal volume change since loading.
	tempDelta := rng.Between(-2.0, 2.0)
	currentTemp := baselineTemp + tempDelta
	currentVolume := baselineVolume + int(math.Round(float64(baselineVolume)*fuel.ThermalCoeff()*tempDelta))

	alertTruck := isAlertIndex(i)

	// The anomaly signal: a one-off deliberate loss on flagged trucks,
	// distinct from thermal change.
	illegalLoss := 0
	if alertTruck {
		illegalLoss = int(math.Round(float64(baselineVolume) * rng.Between(0.03, 0.08)))
		currentVolume -= illegalLoss
	}

	densityShift := rng.Between(-2.5, 2.5)
	if alertTruck {
		densityShift *= 4
	}
	currentDensity := baselineDensity + densityShift

	loading := i%9 == 0
	progress := 0.0
	if !loading {
		progress = rng.Between(0.05, 0.9)
	}

	var dwell time.Duration
	if hasStopIndex(i) {
		dwell = time.Duration(12+rng.IntN(35)) * time.Minute
	}

	speed := 0.0
	if dwell == 0 && !loading {
		speed = rng.Between(55, 100)
	}

	t := &domain.Truck{
		ID:          fmt.Sprintf("TRK-%03d", i+1),
		Plate:       fmt.Sprintf("KC%c %03dJ", 'A'+byte(i%6), 100+i*7%900),
		Driver:      Pick(rng, driverNames),
		Transporter: Pick(rng, transporterNames),
		FuelType:    fuel,

		Depot:         ends.depot,
		Destination:   ends.destination,
		RouteKey:      routeKey,
		RouteProgress: progress,

		BaselineVolume:  baselineVolume,
		BaselineTemp:    baselineTemp,
		BaselineDensity: baselineDensity,

		CurrentVolume:  currentVolume,
		CurrentTemp:    currentTemp,
		CurrentDensity: currentDensity,

		SpeedKmh:   speed,
		DwellTime:  dwell,
		DepartedAt: now.Add(-time.Duration(1+rng.IntN(5)) * time.Hour),

		SealIntact:        !alertTruck || illegalLoss == 0,
		GeofenceCompliant: !hasStopIndex(i),
	}
	t.Position = Interpolate(RouteFor(routeKey), progress)
	t.VolumeVariancePct = variancePct(float64(currentVolume), float64(baselineVolume))
	t.DensityVariancePct = variancePct(currentDensity, baselineDensity)

	t.Alerts = deriveAlerts(i, t, illegalLoss, now)
	t.Status = deriveStatus(t.RouteProgress, loading, hasUnacknowledged(t.Alerts))
	return t
}

// deriveAlerts emits the fixed alert set for a freshly built truck.
func deriveAlerts(i int, t *domain.Truck, illegalLoss int, now time.Time) []domain.TruckAlert {
	acked := preAcknowledgedIndex(i)
	var alerts []domain.TruckAlert

	if illegalLoss > 0 {
		lossPct := float64(illegalLoss) / float64(t.BaselineVolume) * 100
		sev := domain.SeverityMedium
		if lossPct > 5 {
			sev = domain.SeverityHigh
		}
		alerts = append(alerts, domain.TruckAlert{
			ID:       uuid.NewString(),
			Type:     domain.AlertVolumeDrop,
			Severity: sev,
			Message: fmt.Sprintf("Volume loss of %d L detected (%.1f%% of loaded %d L)",
				illegalLoss, lossPct, t.BaselineVolume),
			Timestamp:    now,
			Acknowledged: acked,
		})
	}

	if t.DensityVariancePct > densityShiftThresholdPct {
		alerts = append(alerts, domain.TruckAlert{
			ID:       uuid.NewString(),
			Type:     domain.AlertDensityShift,
			Severity: domain.SeverityMedium,
			Message: fmt.Sprintf("Density shift of %.1f kg/m3 (%.2f%%) against loading baseline",
				t.CurrentDensity-t.BaselineDensity, t.DensityVariancePct),
			Timestamp:    now,
			Acknowledged: acked,
		})
	}

	if t.DwellTime > 0 {
		alerts = append(alerts, domain.TruckAlert{
			ID:       uuid.NewString(),
			Type:     domain.AlertUnauthorizedStop,
			Severity: domain.SeverityHigh,
			Message: fmt.Sprintf("Unscheduled stop of %d min outside designated rest area",
				int(t.DwellTime.Minutes())),
			Timestamp:    now,
			Acknowledged: acked,
		})
	}

	return alerts
}

func hasUnacknowledged(alerts []domain.TruckAlert) bool {
	for _, a := range alerts {
		if !a.Acknowledged {
			return true
		}
	}
	return false
}

func variancePct(current, baseline float64) float64 {
	if baseline == 0 {
		return 0
	}
	return math.Round(math.Abs(current-baseline)/baseline*1000) / 10
}
