package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"fuel-custody-service/internal/domain"
	"fuel-custody-service/internal/metrics"
	"fuel-custody-service/internal/platform/obs"
	"fuel-custody-service/internal/ports"
	"fuel-custody-service/internal/sim"
)

// Secure custody transfer (SCT) workflow: consignment creation on
// load-out and delivery confirmation.
//
// The two lookup paths deliberately fail differently. A license-plate
// lookup with no match synthesizes a plausible consignment (the demo's
// load-out path). A delivery scan with no match surfaces ErrNoMatch and
// never creates anything.

var (
	// ErrNoMatch: delivery scan or confirmation referenced an unknown
	// transaction id.
	ErrNoMatch = errors.New("no matching transaction")
	// ErrInvalidFormat: scan payload was not valid JSON or lacked the
	// expected fields.
	ErrInvalidFormat = errors.New("invalid scan payload format")
)

type ConsignmentService struct {
	repo ports.TransactionRepository
	dir  ports.DirectoryRepository

	rng *sim.LCG
	now func() time.Time

	// Simulated network latency on plate lookups. Applied in the
	// request goroutine only; never blocks the simulator tick loop.
	lookupDelay time.Duration
}

func NewConsignmentService(repo ports.TransactionRepository, dir ports.DirectoryRepository, lookupDelay time.Duration) *ConsignmentService {
	return &ConsignmentService{
		repo:        repo,
		dir:         dir,
		rng:         sim.NewLCG(uint32(time.Now().UnixNano())),
		now:         time.Now,
		lookupDelay: lookupDelay,
	}
}

// WithClock fixes the service clock and RNG seed. Test hook.
func (s *ConsignmentService) WithClock(now func() time.Time, seed uint32) *ConsignmentService {
	s.now = now
	s.rng = sim.NewLCG(seed)
	return s
}

// LookupByPlate finds the active consignment for a vehicle plate,
// creating one when none exists. The returned bool reports whether a
// new record was synthesized.
func (s *ConsignmentService) LookupByPlate(ctx context.Context, plate string) (tx *domain.Transaction, created bool, err error) {
	defer obs.Time(ctx, "consignments.LookupByPlate")(&err)
	metrics.PlateLookups.Add(1)

	normalized := domain.NormalizePlate(plate)
	if normalized == "" {
		return nil, false, fmt.Errorf("lookup by plate: %w", ErrInvalidFormat)
	}

	if err := s.simulateLatency(ctx); err != nil {
		return nil, false, err
	}

	existing, err := s.repo.FindByPlate(ctx, normalized)
	if err != nil {
		return nil, false, fmt.Errorf("lookup by plate: find %q: %w", normalized, err)
	}

	if existing != nil {
		// Set/confirm in-transit on the load-out path; existing records
		// are updated in place.
		if existing.Status != domain.TransactionInTransit {
			existing.Status = domain.TransactionInTransit
			existing.CompletedAt = nil
			if err := s.repo.UpdateStatus(ctx, existing.ID, domain.TransactionInTransit, nil); err != nil {
				return nil, false, fmt.Errorf("lookup by plate: update %q: %w", existing.ID, err)
			}
		}
		return existing, false, nil
	}

	metrics.PlateLookupMisses.Add(1)

	tx = s.synthesize(ctx, normalized)
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, false, fmt.Errorf("lookup by plate: create for %q: %w", normalized, err)
	}
	return tx, true, nil
}

// ConfirmDelivery transitions an in-transit consignment to completed.
// Confirming an already-completed consignment is a no-op, not an error;
// an unknown id is ErrNoMatch.
func (s *ConsignmentService) ConfirmDelivery(ctx context.Context, id string) (*domain.Transaction, error) {
	tx, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("confirm delivery: get %q: %w", id, err)
	}
	if tx == nil {
		return nil, fmt.Errorf("confirm delivery %q: %w", id, ErrNoMatch)
	}

	if tx.Status == domain.TransactionCompleted {
		return tx, nil
	}

	completedAt := s.now()
	if err := s.repo.UpdateStatus(ctx, id, domain.TransactionCompleted, &completedAt); err != nil {
		return nil, fmt.Errorf("confirm delivery: update %q: %w", id, err)
	}
	tx.Status = domain.TransactionCompleted
	tx.CompletedAt = &completedAt
	return tx, nil
}

// Embedded identifier a delivery QR carries.
type scanPayload struct {
	ID string `json:"id"`
}

// ConfirmScan parses a delivery-scan payload and confirms the embedded
// transaction. Malformed payloads are ErrInvalidFormat; a well-formed
// payload naming an unknown transaction is ErrNoMatch (this path never
// synthesizes).
func (s *ConsignmentService) ConfirmScan(ctx context.Context, payload []byte) (tx *domain.Transaction, err error) {
	defer obs.Time(ctx, "consignments.ConfirmScan")(&err)
	metrics.DeliveryScans.Add(1)

	var p scanPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("confirm scan: %w", ErrInvalidFormat)
	}
	if strings.TrimSpace(p.ID) == "" {
		return nil, fmt.Errorf("confirm scan: missing id: %w", ErrInvalidFormat)
	}

	tx, err = s.ConfirmDelivery(ctx, p.ID)
	if errors.Is(err, ErrNoMatch) {
		metrics.DeliveryScanMisses.Add(1)
	}
	return tx, err
}

// QRContent is the JSON a consignment QR code encodes: enough to match
// the record at the delivery end without a network round trip.
func QRContent(tx *domain.Transaction) ([]byte, error) {
	return json.Marshal(map[string]any{
		"id":        tx.ID,
		"vehicle":   tx.Vehicle,
		"from":      tx.From,
		"to":        tx.To,
		"fuel_type": tx.FuelType,
		"volume":    tx.Volume,
		"seal":      tx.SealLoading,
	})
}

func (s *ConsignmentService) simulateLatency(ctx context.Context) error {
	if s.lookupDelay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.lookupDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// synthesize builds a plausible, internally consistent consignment for
// a plate with no existing record.
func (s *ConsignmentService) synthesize(ctx context.Context, plate string) *domain.Transaction {
	now := s.now()

	from, gps := "Nairobi Terminal", domain.Waypoint{Lat: -1.2864, Lon: 36.8172}
	if depots, err := s.dir.ListDepots(ctx); err == nil && len(depots) > 0 {
		d := sim.Pick(s.rng, depots)
		from, gps = d.Name, d.Position
	}
	to := "Nakuru Depot"
	if stations, err := s.dir.ListStations(ctx); err == nil && len(stations) > 0 {
		to = sim.Pick(s.rng, stations).Name
	}

	fuels := []domain.FuelType{domain.FuelDiesel, domain.FuelGasoline, domain.FuelKerosene}
	fuel := sim.Pick(s.rng, fuels)

	volume := (3 + s.rng.IntN(6)) * 1000

	return &domain.Transaction{
		ID:       "TXN-" + strings.ToUpper(uuid.NewString()[:8]),
		From:     from,
		To:       to,
		Vehicle:  plate,
		Status:   domain.TransactionInTransit,
		Volume:   volume,
		FuelType: fuel,
		Date:     now,

		Driver:      sim.Pick(s.rng, []string{"J. Mwangi", "P. Otieno", "S. Kiptoo", "A. Hassan"}),
		Transporter: sim.Pick(s.rng, []string{"Rift Valley Haulage", "Coast Bulk Carriers", "Highlands Logistics"}),

		LoadingBay:   fmt.Sprintf("Bay %d", 1+s.rng.IntN(8)),
		Compartments: compartmentsFor(volume),

		SealLoading: fmt.Sprintf("SL-%06d", s.rng.IntN(1_000_000)),

		MarkerType:          "Tracer-X",
		MarkerConcentration: 12.5,
		MarkerBatch:         fmt.Sprintf("MB-%04d", s.rng.IntN(10_000)),

		Temperature: 20 + s.rng.Between(0, 8),
		Density:     densityFor(fuel, s.rng),

		LoadingTicket:    fmt.Sprintf("LT-%06d", s.rng.IntN(1_000_000)),
		ExpectedDelivery: now.Add(4 * time.Hour),
		GPSLoading:       gps,
		ApprovedBy:       "Depot Supervisor",
	}
}

// compartmentsFor derives compartment count from the loaded volume.
func compartmentsFor(volume int) int {
	switch {
	case volume >= 7000:
		return 3
	case volume >= 5000:
		return 2
	default:
		return 1
	}
}

func densityFor(fuel domain.FuelType, rng *sim.LCG) float64 {
	switch fuel {
	case domain.FuelDiesel:
		return rng.Between(830, 845)
	case domain.FuelGasoline:
		return rng.Between(740, 755)
	default:
		return rng.Between(790, 805)
	}
}
