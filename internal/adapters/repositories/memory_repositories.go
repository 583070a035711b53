package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fuel-custody-service/internal/domain"
)

// In-memory implementations of the repository ports, used by tests and
// as a stand-in gateway when no database is configured. New
// transactions are prepended so the active set reads newest-first, as
// the SQL adapter's date ordering does.
type MemoryTransactionRepository struct {
	mu  sync.Mutex
	txs []*domain.Transaction
}

func NewMemoryTransactionRepository(seed []*domain.Transaction) *MemoryTransactionRepository {
	txs := make([]*domain.Transaction, len(seed))
	copy(txs, seed)
	return &MemoryTransactionRepository{txs: txs}
}

func (m *MemoryTransactionRepository) ListTransactions(ctx context.Context) ([]*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Transaction, len(m.txs))
	copy(out, m.txs)
	return out, nil
}

func (m *MemoryTransactionRepository) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, tx := range m.txs {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, nil
}

func (m *MemoryTransactionRepository) FindByPlate(ctx context.Context, plate string) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, tx := range m.txs {
		if domain.NormalizePlate(tx.Vehicle) == plate {
			return tx, nil
		}
	}
	return nil, nil
}

func (m *MemoryTransactionRepository) CreateTransaction(ctx context.Context, tx *domain.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txs = append([]*domain.Transaction{tx}, m.txs...)
	return nil
}

func (m *MemoryTransactionRepository) UpdateStatus(ctx context.Context, id string, status domain.TransactionStatus, completedAt *time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, tx := range m.txs {
		if tx.ID == id {
			tx.Status = status
			tx.CompletedAt = completedAt
			return nil
		}
	}
	return fmt.Errorf("update status %q: no such transaction", id)
}

type MemoryDirectoryRepository struct {
	Depots   []*domain.Depot
	Stations []*domain.Station
}

func (m *MemoryDirectoryRepository) ListDepots(ctx context.Context) ([]*domain.Depot, error) {
	return m.Depots, nil
}

func (m *MemoryDirectoryRepository) ListStations(ctx context.Context) ([]*domain.Station, error) {
	return m.Stations, nil
}
