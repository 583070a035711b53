package domain

type RiskLevel string

const (
	RiskCritical RiskLevel = "Critical"
	RiskHigh     RiskLevel = "High"
	RiskMedium   RiskLevel = "Medium"
	RiskLow      RiskLevel = "Low"
)

// ClassifyRisk maps a composite score onto the four-band scale.
func ClassifyRisk(score int) RiskLevel {
	switch {
	case score >= 75:
		return RiskCritical
	case score >= 50:
		return RiskHigh
	case score >= 25:
		return RiskMedium
	default:
		return RiskLow
	}
}

// Derived per-location risk view. Never stored; recomputed whenever the
// underlying stock or incident data changes.
type RiskProfile struct {
	Location string `json:"location"`
	Zone     string `json:"zone"`
	Company  string `json:"company"`

	VarianceScore    int `json:"variance_score"`
	DiscrepancyScore int `json:"discrepancy_score"`
	LossScore        int `json:"loss_score"`
	IncidentScore    int `json:"incident_score"`

	RiskScore int       `json:"risk_score"`
	RiskLevel RiskLevel `json:"risk_level"`
}

// Aggregated risk over a zone or operator grouping.
type GroupRisk struct {
	Name      string    `json:"name"`
	Locations int       `json:"locations"`
	AvgScore  int       `json:"avg_score"`
	RiskLevel RiskLevel `json:"risk_level"`
}

// Prioritized enforcement recommendation for one location.
type EnforcementAction struct {
	Location  string    `json:"location"`
	Priority  int       `json:"priority"`
	RiskScore int       `json:"risk_score"`
	RiskLevel RiskLevel `json:"risk_level"`
	Actions   []string  `json:"actions"`
}
