package services

import (
	"math"
	"slices"
	"strings"

	"fuel-custody-service/internal/domain"
	"fuel-custody-service/internal/metrics"
)

// Composite risk scoring for monitored locations.
//
// Four sub-scores (variance, discrepancy, loss, incident), each clamped
// to [0,100], combine into a weighted 0-100 score. The engine holds no
// state between invocations; callers recompute whenever the underlying
// stock or incident snapshots change.

const (
	varianceFullScale    = 0.25 // variance fraction mapping to score 100
	discrepancyFullScale = 500.0
	lossFullScale        = 200.0

	weightVariance    = 0.30
	weightDiscrepancy = 0.25
	weightLoss        = 0.25
	weightIncident    = 0.20
)

// ScoreLocation derives the risk profile for one site from its ledger
// snapshot and the incidents reported at it.
func ScoreLocation(stock domain.StockRecord, incidents []domain.Incident) domain.RiskProfile {
	varianceScore := clampScore(math.Round(stock.Variance / varianceFullScale * 100))
	discrepancyScore := clampScore(math.Round(math.Abs(float64(stock.Discrepancy())) / discrepancyFullScale * 100))
	lossScore := clampScore(math.Round(float64(stock.Losses) / lossFullScale * 100))

	open, high := 0, 0
	for _, inc := range incidents {
		if inc.Status == domain.IncidentOpen {
			open++
		}
		if inc.Severity == domain.SeverityHigh && inc.Status != domain.IncidentResolved {
			high++
		}
	}
	incidentScore := clampScore(float64(open*30 + high*20))

	composite := int(math.Round(
		weightVariance*float64(varianceScore) +
			weightDiscrepancy*float64(discrepancyScore) +
			weightLoss*float64(lossScore) +
			weightIncident*float64(incidentScore)))

	return domain.RiskProfile{
		Location:         stock.Location,
		Zone:             ZoneOf(stock.Location),
		Company:          stock.Company,
		VarianceScore:    varianceScore,
		DiscrepancyScore: discrepancyScore,
		LossScore:        lossScore,
		IncidentScore:    incidentScore,
		RiskScore:        composite,
		RiskLevel:        domain.ClassifyRisk(composite),
	}
}

// BuildRiskProfiles scores every stocked location, attaching incidents
// by exact location match. Output is sorted by descending risk score,
// location as tie-break.
func BuildRiskProfiles(stocks []*domain.StockRecord, incidents []*domain.Incident) []domain.RiskProfile {
	byLocation := make(map[string][]domain.Incident)
	for _, inc := range incidents {
		byLocation[inc.Location] = append(byLocation[inc.Location], *inc)
	}

	profiles := make([]domain.RiskProfile, 0, len(stocks))
	for _, s := range stocks {
		profiles = append(profiles, ScoreLocation(*s, byLocation[s.Location]))
	}

	slices.SortFunc(profiles, func(a, b domain.RiskProfile) int {
		if a.RiskScore != b.RiskScore {
			return b.RiskScore - a.RiskScore
		}
		return strings.Compare(a.Location, b.Location)
	})

	metrics.RiskRecomputes.Add(1)
	return profiles
}

// ZoneOf derives the geographic zone from a free-text location: the
// text before the first comma, or the whole string when there is none.
func ZoneOf(location string) string {
	if i := strings.Index(location, ","); i >= 0 {
		return strings.TrimSpace(location[:i])
	}
	return strings.TrimSpace(location)
}

// AggregateByZone groups profiles by zone and averages their scores.
func AggregateByZone(profiles []domain.RiskProfile) []domain.GroupRisk {
	return aggregate(profiles, func(p domain.RiskProfile) string { return p.Zone })
}

// AggregateByOperator groups profiles by operating company.
func AggregateByOperator(profiles []domain.RiskProfile) []domain.GroupRisk {
	return aggregate(profiles, func(p domain.RiskProfile) string { return p.Company })
}

func aggregate(profiles []domain.RiskProfile, keyOf func(domain.RiskProfile) string) []domain.GroupRisk {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, p := range profiles {
		k := keyOf(p)
		if k == "" {
			continue
		}
		sums[k] += p.RiskScore
		counts[k]++
	}

	groups := make([]domain.GroupRisk, 0, len(sums))
	for name, n := range counts {
		// Empty groups never form, but guard the division anyway.
		if n == 0 {
			continue
		}
		avg := int(math.Round(float64(sums[name]) / float64(n)))
		groups = append(groups, domain.GroupRisk{
			Name:      name,
			Locations: n,
			AvgScore:  avg,
			RiskLevel: domain.ClassifyRisk(avg),
		})
	}

	slices.SortFunc(groups, func(a, b domain.GroupRisk) int {
		if a.AvgScore != b.AvgScore {
			return b.AvgScore - a.AvgScore
		}
		return strings.Compare(a.Name, b.Name)
	})
	return groups
}

func clampScore(v float64) int {
	if v > 100 {
		return 100
	}
	if v < 0 {
		return 0
	}
	return int(v)
}
