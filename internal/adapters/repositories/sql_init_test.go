package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fuel-custody-service/internal/domain"
)

func writeSeedFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing seed %s: %v", name, err)
	}
}

func TestSeedFromJSON(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()

	writeSeedFile(t, dir, "transactions.json", `[
		{
			"id": "TXN-SEED0001",
			"from_location": "Kipevu Oil Terminal",
			"to_location": "Nakuru Depot",
			"vehicle": "KCA 123A",
			"status": "in-transit",
			"volume": 36000,
			"fuel_type": "Diesel",
			"date": "2026-03-01T06:00:00Z",
			"compartments": 3
		}
	]`)
	writeSeedFile(t, dir, "stock.json", `[
		{
			"location": "Nakuru, Industrial Area Depot",
			"opening": 450000,
			"current": 385000,
			"capacity": 600000,
			"variance": 0.18,
			"receipts": 120000,
			"withdrawals": 185000,
			"losses": 150,
			"company": "Vivo Energy",
			"per_fuel": [{"fuel_type": "Diesel", "volume": 220000}]
		}
	]`)
	writeSeedFile(t, dir, "incidents.json", `[
		{
			"id": "INC-001",
			"location": "Nakuru, Industrial Area Depot",
			"type": "Stock discrepancy",
			"severity": "medium",
			"timestamp": "2026-02-28T14:30:00Z",
			"status": "open",
			"assigned_to": "Inspector Kamau"
		}
	]`)
	// depots.json and stations.json deliberately absent: missing seed
	// files are skipped, not errors.

	if err := SeedFromJSON(db, dir); err != nil {
		t.Fatalf("seeding: %v", err)
	}

	ctx := context.Background()

	tx, err := NewSQLTransactionRepository(db).FindByPlate(ctx, domain.NormalizePlate("kca 123a"))
	if err != nil {
		t.Fatalf("find transaction: %v", err)
	}
	if tx == nil || tx.From != "Kipevu Oil Terminal" || tx.FuelType != domain.FuelDiesel {
		t.Fatalf("seeded transaction = %+v", tx)
	}

	stocks, err := NewSQLStockRepository(db).ListStock(ctx)
	if err != nil {
		t.Fatalf("list stock: %v", err)
	}
	if len(stocks) != 1 {
		t.Fatalf("got %d stock records, want 1", len(stocks))
	}
	s := stocks[0]
	if s.CalculatedClosing() != 384850 || s.Discrepancy() != 150 {
		t.Fatalf("reconciliation from seed: closing %d discrepancy %d", s.CalculatedClosing(), s.Discrepancy())
	}
	if len(s.PerFuel) != 1 || s.PerFuel[0].FuelType != domain.FuelDiesel {
		t.Fatalf("per-fuel breakdown = %+v", s.PerFuel)
	}

	incidents, err := NewSQLIncidentRepository(db).ListIncidents(ctx)
	if err != nil {
		t.Fatalf("list incidents: %v", err)
	}
	if len(incidents) != 1 || incidents[0].Status != domain.IncidentOpen {
		t.Fatalf("seeded incidents = %+v", incidents)
	}

	depots, err := NewSQLDirectoryRepository(db).ListDepots(ctx)
	if err != nil {
		t.Fatalf("list depots: %v", err)
	}
	if len(depots) != 0 {
		t.Fatalf("got %d depots from a missing seed file, want 0", len(depots))
	}
}

func TestSeedFromJSONIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()

	writeSeedFile(t, dir, "depots.json", `[
		{"id": "DEP-001", "name": "Nakuru Depot", "location": "Nakuru, Industrial Area", "capacity": 600000, "lat": -0.3031, "lon": 36.08}
	]`)

	if err := SeedFromJSON(db, dir); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := SeedFromJSON(db, dir); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	depots, err := NewSQLDirectoryRepository(db).ListDepots(context.Background())
	if err != nil {
		t.Fatalf("list depots: %v", err)
	}
	if len(depots) != 1 {
		t.Fatalf("got %d depots after reseeding, want 1", len(depots))
	}
}

func TestSQLUserRepositoryFindOrCreate(t *testing.T) {
	repo := NewSQLUserRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.FindOrCreateByRole(ctx, "Inspector Kamau", "inspector")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.Role != "inspector" {
		t.Fatalf("created user = %+v", created)
	}

	found, err := repo.FindOrCreateByRole(ctx, "Someone Else", "inspector")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.ID != created.ID || found.Name != "Inspector Kamau" {
		t.Fatalf("second login created a new account: %+v", found)
	}
}

func TestSQLIncidentRepositoryCreate(t *testing.T) {
	repo := NewSQLIncidentRepository(newTestDB(t))
	ctx := context.Background()

	inc := &domain.Incident{
		ID:        "INC-100",
		Location:  "Eldoret, Depot Road Depot",
		Type:      "Seal tamper report",
		Severity:  domain.SeverityHigh,
		Timestamp: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
		Status:    domain.IncidentOpen,
	}
	if err := repo.CreateIncident(ctx, inc); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.ListIncidents(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != "INC-100" || got[0].Severity != domain.SeverityHigh {
		t.Fatalf("incidents = %+v", got)
	}
}
