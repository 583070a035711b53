package domain

import "time"

type FuelType string

const (
	FuelDiesel   FuelType = "Diesel"
	FuelGasoline FuelType = "Gasoline"
	FuelKerosene FuelType = "Kerosene"
)

// ThermalCoeff returns the volumetric expansion coefficient for a fuel
// type, in fractional volume change per degree Celsius.
func (f FuelType) ThermalCoeff() float64 {
	if f == FuelDiesel {
		return 0.00065
	}
	return 0.0012
}

type TruckStatus string

const (
	StatusLoading   TruckStatus = "loading"
	StatusInTransit TruckStatus = "in-transit"
	StatusAlert     TruckStatus = "alert"
	StatusDelivered TruckStatus = "delivered"
	StatusIdle      TruckStatus = "idle"
)

// Frozen reports whether a status stops simulation for the truck:
// no further progress or sensor mutation occurs while it holds.
func (s TruckStatus) Frozen() bool { return s == StatusDelivered || s == StatusLoading }

// Simulated custody unit moving fuel along a corridor.
//
// Baseline sensor readings are fixed at creation; current readings are
// mutated each simulation tick while the truck is neither loading nor
// delivered. Position is always derived from RouteKey + RouteProgress,
// never set directly.
type Truck struct {
	ID          string
	Plate       string
	Driver      string
	Transporter string
	FuelType    FuelType

	Depot         string
	Destination   string
	RouteKey      string
	RouteProgress float64

	Status TruckStatus

	BaselineVolume  int
	BaselineTemp    float64
	BaselineDensity float64

	CurrentVolume  int
	CurrentTemp    float64
	CurrentDensity float64

	Position Waypoint

	SpeedKmh   float64
	DwellTime  time.Duration
	DepartedAt time.Time

	Alerts []TruckAlert

	SealIntact        bool
	GeofenceCompliant bool

	VolumeVariancePct  float64
	DensityVariancePct float64
}

// Clone returns an independent copy so snapshot readers never share
// mutable state with the tick loop.
func (t *Truck) Clone() *Truck {
	cp := *t
	cp.Alerts = make([]TruckAlert, len(t.Alerts))
	copy(cp.Alerts, t.Alerts)
	return &cp
}
