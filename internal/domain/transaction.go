package domain

import (
	"strings"
	"time"
)

type TransactionStatus string

const (
	TransactionInTransit TransactionStatus = "in-transit"
	TransactionCompleted TransactionStatus = "completed"
)

// One fuel-transfer movement from a depot to a station, tracked from
// load-out to delivery confirmation.
//
// The in-memory model uses the short field names From/To/FuelType; the
// persistence and JSON boundary uses from_location/to_location/fuel_type
// (see adapters/repositories and api/dto).
type Transaction struct {
	ID          string
	From        string
	To          string
	Vehicle     string
	Status      TransactionStatus
	Volume      int
	FuelType    FuelType
	Date        time.Time
	CompletedAt *time.Time

	Driver      string
	Transporter string

	LoadingBay   string
	Compartments int

	SealLoading  string
	SealDelivery string

	MarkerType          string
	MarkerConcentration float64
	MarkerBatch         string

	Temperature float64
	Density     float64

	LoadingTicket    string
	ExpectedDelivery time.Time
	GPSLoading       Waypoint
	ApprovedBy       string
}

// NormalizePlate canonicalizes a vehicle registration for lookup:
// all whitespace stripped, uppercased. "KCA 123A" and "kca123a"
// normalize to the same key.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.Join(strings.Fields(plate), ""))
}
