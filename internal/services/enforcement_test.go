package services

import (
	"slices"
	"testing"

	"fuel-custody-service/internal/domain"
)

func TestPlanEnforcementThresholdRules(t *testing.T) {
	profiles := []domain.RiskProfile{
		{
			Location:         "Eldoret, Depot Road Depot",
			VarianceScore:    80,
			DiscrepancyScore: 55,
			LossScore:        60,
			IncidentScore:    70,
			RiskScore:        80,
			RiskLevel:        domain.RiskCritical,
		},
	}

	plan := PlanEnforcement(profiles)
	if len(plan) != 1 {
		t.Fatalf("got %d actions, want 1", len(plan))
	}

	want := []string{
		"Stock reconciliation audit",
		"Physical stock verification",
		"Leakage investigation",
		"Incident follow-up",
		"Immediate site inspection",
	}
	if !slices.Equal(plan[0].Actions, want) {
		t.Fatalf("actions = %v, want %v", plan[0].Actions, want)
	}
	if plan[0].Priority != 1 {
		t.Fatalf("critical priority = %d, want 1", plan[0].Priority)
	}
}

func TestPlanEnforcementHighRisk(t *testing.T) {
	profiles := []domain.RiskProfile{
		{
			Location:      "Nakuru, Industrial Area Depot",
			VarianceScore: 50, // threshold is inclusive
			RiskScore:     55,
			RiskLevel:     domain.RiskHigh,
		},
	}

	plan := PlanEnforcement(profiles)
	want := []string{"Stock reconciliation audit", "Priority monitoring"}
	if !slices.Equal(plan[0].Actions, want) {
		t.Fatalf("actions = %v, want %v", plan[0].Actions, want)
	}
	if plan[0].Priority != 2 {
		t.Fatalf("high priority = %d, want 2", plan[0].Priority)
	}
}

func TestPlanEnforcementRoutineFallback(t *testing.T) {
	profiles := []domain.RiskProfile{
		{Location: "Kisumu, Kondele Depot", RiskScore: 10, RiskLevel: domain.RiskLow},
	}

	plan := PlanEnforcement(profiles)
	if !slices.Equal(plan[0].Actions, []string{"Routine monitoring"}) {
		t.Fatalf("actions = %v, want routine monitoring only", plan[0].Actions)
	}
	if plan[0].Priority != 4 {
		t.Fatalf("low priority = %d, want 4", plan[0].Priority)
	}
}

func TestPlanEnforcementOrdering(t *testing.T) {
	profiles := []domain.RiskProfile{
		{Location: "Kisumu, Depot C", RiskScore: 10, RiskLevel: domain.RiskLow},
		{Location: "Nakuru, Depot B", RiskScore: 80, RiskLevel: domain.RiskCritical},
		{Location: "Nairobi, Depot D", RiskScore: 60, RiskLevel: domain.RiskHigh},
		{Location: "Eldoret, Depot A", RiskScore: 85, RiskLevel: domain.RiskCritical},
		{Location: "Mombasa, Depot E", RiskScore: 60, RiskLevel: domain.RiskHigh},
	}

	plan := PlanEnforcement(profiles)

	gotOrder := make([]string, len(plan))
	for i, a := range plan {
		gotOrder[i] = a.Location
	}
	// Ascending priority, descending score, then location.
	want := []string{
		"Eldoret, Depot A",
		"Nakuru, Depot B",
		"Mombasa, Depot E",
		"Nairobi, Depot D",
		"Kisumu, Depot C",
	}
	if !slices.Equal(gotOrder, want) {
		t.Fatalf("order = %v, want %v", gotOrder, want)
	}
}
