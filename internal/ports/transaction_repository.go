package ports

import (
	"context"
	"time"

	"fuel-custody-service/internal/domain"
)

// Port: a boundary for persisting consignment transactions.
//
// Implementations hold the long field names (from_location, to_location,
// fuel_type) at the storage boundary and remap to the domain model's
// short names.
type TransactionRepository interface {
	// Retrieve all transactions, newest first.
	ListTransactions(ctx context.Context) ([]*domain.Transaction, error)
	// Retrieve one transaction by id. Returns nil, nil when absent.
	GetTransaction(ctx context.Context, id string) (*domain.Transaction, error)
	// Retrieve the most recent transaction for a normalized plate.
	// Returns nil, nil when absent.
	FindByPlate(ctx context.Context, plate string) (*domain.Transaction, error)
	// Persist a new transaction at the head of the active set.
	CreateTransaction(ctx context.Context, tx *domain.Transaction) error
	// Patch the status of an existing transaction.
	UpdateStatus(ctx context.Context, id string, status domain.TransactionStatus, completedAt *time.Time) error
}
