package ports

import (
	"context"

	"fuel-custody-service/internal/domain"
)

// Port: read access to wet-stock ledger snapshots. The risk engine only
// ever reads; ledgers are maintained by the upstream CRUD gateway.
type StockRepository interface {
	ListStock(ctx context.Context) ([]*domain.StockRecord, error)
}

// Port: read and report incidents at monitored locations.
type IncidentRepository interface {
	ListIncidents(ctx context.Context) ([]*domain.Incident, error)
	CreateIncident(ctx context.Context, inc *domain.Incident) error
}
