package domain

// Fuel loading terminal.
type Depot struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Capacity int      `json:"capacity"`
	Position Waypoint `json:"position"`
}

// Retail or distribution site receiving consignments.
type Station struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Company  string   `json:"company"`
	Position Waypoint `json:"position"`
}
