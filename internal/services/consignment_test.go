package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fuel-custody-service/internal/adapters/repositories"
	"fuel-custody-service/internal/domain"
)

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestService(seed []*domain.Transaction) (*ConsignmentService, *repositories.MemoryTransactionRepository) {
	repo := repositories.NewMemoryTransactionRepository(seed)
	dir := &repositories.MemoryDirectoryRepository{
		Depots: []*domain.Depot{
			{ID: "DEP-001", Name: "Nairobi Terminal", Position: domain.Waypoint{Lat: -1.3032, Lon: 36.8474}},
		},
		Stations: []*domain.Station{
			{ID: "STN-001", Name: "Mamboleo Station"},
		},
	}
	svc := NewConsignmentService(repo, dir, 0).
		WithClock(func() time.Time { return fixedNow }, 99)
	return svc, repo
}

func TestLookupByPlateFindsExisting(t *testing.T) {
	seed := []*domain.Transaction{
		{
			ID:      "TXN-SEED0001",
			Vehicle: "KCA 123A",
			Status:  domain.TransactionInTransit,
			Volume:  36000,
		},
	}
	svc, _ := newTestService(seed)

	// Compact lower-case input must hit the padded upper-case record.
	tx, created, err := svc.LookupByPlate(context.Background(), "kca123a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatal("lookup of an existing plate reported a synthesized record")
	}
	if tx.ID != "TXN-SEED0001" {
		t.Fatalf("got %q, want the seeded transaction", tx.ID)
	}
}

func TestLookupByPlateReactivatesCompleted(t *testing.T) {
	done := fixedNow.Add(-24 * time.Hour)
	seed := []*domain.Transaction{
		{
			ID:          "TXN-SEED0002",
			Vehicle:     "KBZ 456B",
			Status:      domain.TransactionCompleted,
			CompletedAt: &done,
		},
	}
	svc, repo := newTestService(seed)

	tx, created, err := svc.LookupByPlate(context.Background(), "KBZ 456B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatal("should reuse the existing record")
	}
	if tx.Status != domain.TransactionInTransit {
		t.Fatalf("status = %q, want in-transit after load-out", tx.Status)
	}
	if tx.CompletedAt != nil {
		t.Fatal("completion timestamp not cleared on reactivation")
	}

	stored, _ := repo.GetTransaction(context.Background(), "TXN-SEED0002")
	if stored.Status != domain.TransactionInTransit {
		t.Fatalf("stored status = %q, want in-transit", stored.Status)
	}
}

func TestLookupByPlateSynthesizesOnMiss(t *testing.T) {
	svc, repo := newTestService(nil)

	tx, created, err := svc.LookupByPlate(context.Background(), "KDA 999X")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("miss should synthesize a new consignment")
	}

	if tx.Vehicle != "KDA999X" {
		t.Fatalf("vehicle = %q, want the normalized plate", tx.Vehicle)
	}
	if tx.Status != domain.TransactionInTransit {
		t.Fatalf("status = %q, want in-transit", tx.Status)
	}
	if tx.Volume < 3000 || tx.Volume > 8000 || tx.Volume%1000 != 0 {
		t.Fatalf("volume %d outside the synthetic 3000-8000 range", tx.Volume)
	}
	if !tx.ExpectedDelivery.Equal(fixedNow.Add(4 * time.Hour)) {
		t.Fatalf("expected delivery %v, want load time + 4h", tx.ExpectedDelivery)
	}
	if !tx.Date.Equal(fixedNow) {
		t.Fatalf("date = %v, want fixed clock", tx.Date)
	}

	wantCompartments := 1
	switch {
	case tx.Volume >= 7000:
		wantCompartments = 3
	case tx.Volume >= 5000:
		wantCompartments = 2
	}
	if tx.Compartments != wantCompartments {
		t.Fatalf("compartments = %d for %d L, want %d", tx.Compartments, tx.Volume, wantCompartments)
	}

	if tx.From != "Nairobi Terminal" || tx.To != "Mamboleo Station" {
		t.Fatalf("itinerary %q -> %q, want directory entries", tx.From, tx.To)
	}

	stored, _ := repo.GetTransaction(context.Background(), tx.ID)
	if stored == nil {
		t.Fatal("synthesized record not persisted")
	}

	// Looking the same plate up again must return the created record,
	// not a second synthesis.
	again, created, err := svc.LookupByPlate(context.Background(), "kda 999 x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created || again.ID != tx.ID {
		t.Fatalf("second lookup created=%v id=%q, want existing %q", created, again.ID, tx.ID)
	}
}

func TestLookupByPlateEmptyPlate(t *testing.T) {
	svc, _ := newTestService(nil)
	if _, _, err := svc.LookupByPlate(context.Background(), "   "); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("err = %v, want ErrInvalidFormat", err)
	}
}

func TestConfirmDelivery(t *testing.T) {
	seed := []*domain.Transaction{
		{ID: "TXN-SEED0003", Vehicle: "KCA 111B", Status: domain.TransactionInTransit},
	}
	svc, _ := newTestService(seed)

	tx, err := svc.ConfirmDelivery(context.Background(), "TXN-SEED0003")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.Status != domain.TransactionCompleted {
		t.Fatalf("status = %q, want completed", tx.Status)
	}
	if tx.CompletedAt == nil || !tx.CompletedAt.Equal(fixedNow) {
		t.Fatalf("completed at %v, want fixed clock", tx.CompletedAt)
	}
}

func TestConfirmDeliveryTwiceIsNoOp(t *testing.T) {
	seed := []*domain.Transaction{
		{ID: "TXN-SEED0004", Vehicle: "KCA 222C", Status: domain.TransactionInTransit},
	}
	svc, _ := newTestService(seed)

	first, err := svc.ConfirmDelivery(context.Background(), "TXN-SEED0004")
	if err != nil {
		t.Fatalf("first confirm: %v", err)
	}
	second, err := svc.ConfirmDelivery(context.Background(), "TXN-SEED0004")
	if err != nil {
		t.Fatalf("second confirm should be a no-op, got %v", err)
	}
	if second.Status != domain.TransactionCompleted {
		t.Fatalf("status after double confirm = %q", second.Status)
	}
	if !second.CompletedAt.Equal(*first.CompletedAt) {
		t.Fatal("double confirm moved the completion timestamp")
	}
}

func TestConfirmDeliveryUnknownID(t *testing.T) {
	svc, _ := newTestService(nil)
	if _, err := svc.ConfirmDelivery(context.Background(), "TXN-MISSING1"); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("err = %v, want ErrNoMatch", err)
	}
}

func TestConfirmScan(t *testing.T) {
	seed := []*domain.Transaction{
		{ID: "TXN-SEED0005", Vehicle: "KCA 333D", Status: domain.TransactionInTransit},
	}
	svc, _ := newTestService(seed)

	tx, err := svc.ConfirmScan(context.Background(), []byte(`{"id":"TXN-SEED0005"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.Status != domain.TransactionCompleted {
		t.Fatalf("status = %q, want completed", tx.Status)
	}
}

func TestConfirmScanErrors(t *testing.T) {
	svc, _ := newTestService(nil)

	cases := []struct {
		name    string
		payload string
		want    error
	}{
		{"not json", "TXN-PLAIN-TEXT", ErrInvalidFormat},
		{"missing id", `{"vehicle":"KCA 123A"}`, ErrInvalidFormat},
		{"blank id", `{"id":"  "}`, ErrInvalidFormat},
		{"unknown id", `{"id":"TXN-MISSING2"}`, ErrNoMatch},
	}

	for _, c := range cases {
		if _, err := svc.ConfirmScan(context.Background(), []byte(c.payload)); !errors.Is(err, c.want) {
			t.Errorf("%s: err = %v, want %v", c.name, err, c.want)
		}
	}
}

func TestQRContentRoundTrip(t *testing.T) {
	tx := &domain.Transaction{
		ID:          "TXN-SEED0006",
		Vehicle:     "KCA444E",
		From:        "Nairobi Terminal",
		To:          "Nakuru Depot",
		FuelType:    domain.FuelDiesel,
		Volume:      5000,
		SealLoading: "SL-000123",
	}

	payload, err := QRContent(tx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The QR payload must feed straight back into the scan path.
	seed := []*domain.Transaction{{ID: tx.ID, Vehicle: tx.Vehicle, Status: domain.TransactionInTransit}}
	svc, _ := newTestService(seed)
	confirmed, err := svc.ConfirmScan(context.Background(), payload)
	if err != nil {
		t.Fatalf("scanning generated QR payload: %v", err)
	}
	if confirmed.ID != tx.ID {
		t.Fatalf("confirmed %q, want %q", confirmed.ID, tx.ID)
	}
}
