package services

import (
	"slices"
	"strings"

	"fuel-custody-service/internal/domain"
)

// Threshold above which a sub-score triggers its dedicated action.
const actionThreshold = 50

var riskPriority = map[domain.RiskLevel]int{
	domain.RiskCritical: 1,
	domain.RiskHigh:     2,
	domain.RiskMedium:   3,
	domain.RiskLow:      4,
}

// PlanEnforcement maps risk profiles to prioritized action lists. All
// matching threshold rules fire; a location matching none falls back to
// routine monitoring. Output is ordered by ascending priority with
// descending risk score as tie-break.
func PlanEnforcement(profiles []domain.RiskProfile) []domain.EnforcementAction {
	out := make([]domain.EnforcementAction, 0, len(profiles))

	for _, p := range profiles {
		var actions []string
		if p.VarianceScore >= actionThreshold {
			actions = append(actions, "Stock reconciliation audit")
		}
		if p.DiscrepancyScore >= actionThreshold {
			actions = append(actions, "Physical stock verification")
		}
		if p.LossScore >= actionThreshold {
			actions = append(actions, "Leakage investigation")
		}
		if p.IncidentScore >= actionThreshold {
			actions = append(actions, "Incident follow-up")
		}
		if p.RiskLevel == domain.RiskCritical {
			actions = append(actions, "Immediate site inspection")
		}
		if p.RiskLevel == domain.RiskHigh {
			actions = append(actions, "Priority monitoring")
		}
		if len(actions) == 0 {
			actions = []string{"Routine monitoring"}
		}

		out = append(out, domain.EnforcementAction{
			Location:  p.Location,
			Priority:  riskPriority[p.RiskLevel],
			RiskScore: p.RiskScore,
			RiskLevel: p.RiskLevel,
			Actions:   actions,
		})
	}

	slices.SortFunc(out, func(a, b domain.EnforcementAction) int {
		if a.Priority != b.Priority {
			return a.Priority - b.Priority
		}
		if a.RiskScore != b.RiskScore {
			return b.RiskScore - a.RiskScore
		}
		return strings.Compare(a.Location, b.Location)
	})
	return out
}
