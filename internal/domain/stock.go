package domain

// Per-fuel-type slice of a site ledger.
type FuelBreakdown struct {
	FuelType FuelType `json:"fuel_type"`
	Volume   int      `json:"volume"`
}

// One monitored site's wet-stock ledger snapshot.
//
// Variance is a fraction (0.18 means 18%), not a percentage. Losses,
// receipts and withdrawals are litres over the reporting window.
type StockRecord struct {
	Location    string          `json:"location"`
	Opening     int             `json:"opening"`
	Current     int             `json:"current"`
	Capacity    int             `json:"capacity"`
	Variance    float64         `json:"variance"`
	Receipts    int             `json:"receipts"`
	Withdrawals int             `json:"withdrawals"`
	Losses      int             `json:"losses"`
	Company     string          `json:"company"`
	PerFuel     []FuelBreakdown `json:"per_fuel"`
}

// CalculatedClosing is the book stock the ledger implies.
func (s StockRecord) CalculatedClosing() int {
	return s.Opening + s.Receipts - s.Withdrawals - s.Losses
}

// Discrepancy is physical stock minus book stock. Positive means a
// surplus against the ledger, negative an unexplained shortfall.
func (s StockRecord) Discrepancy() int {
	return s.Current - s.CalculatedClosing()
}
