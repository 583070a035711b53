package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fuel-custody-service/internal/domain"
)

// SQL-backed implementation of the TransactionRepository port.
//
// The storage boundary keeps the long field names (from_location,
// to_location, fuel_type); rows are remapped to the domain model's
// short names on scan.
type SQLTransactionRepository struct{ DB *sql.DB }

func NewSQLTransactionRepository(db *sql.DB) *SQLTransactionRepository {
	return &SQLTransactionRepository{DB: db}
}

const transactionColumns = `
	id, from_location, to_location, vehicle, status, volume, fuel_type,
	date, completed_at, driver, transporter, loading_bay, compartments,
	seal_loading, seal_delivery, marker_type, marker_concentration,
	marker_batch, temperature, density, loading_ticket, expected_delivery,
	gps_lat, gps_lon, approved_by
`

func (s *SQLTransactionRepository) ListTransactions(ctx context.Context) ([]*domain.Transaction, error) {
	if s.DB == nil {
		return nil, errors.New("sql transaction repository: DB is nil")
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date DESC;`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list transactions: query: %w", err)
	}
	defer rows.Close()

	txs := make([]*domain.Transaction, 0, 64)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("list transactions: %w", err)
		}
		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: row iteration: %w", err)
	}

	return txs, nil
}

func (s *SQLTransactionRepository) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = ?;`
	row := s.DB.QueryRowContext(ctx, query, id)

	tx, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get transaction %q: %w", id, err)
	}
	return tx, nil
}

func (s *SQLTransactionRepository) FindByPlate(ctx context.Context, plate string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
	FROM transactions WHERE plate_normalized = ?
	ORDER BY date DESC LIMIT 1;`
	row := s.DB.QueryRowContext(ctx, query, plate)

	tx, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find by plate %q: %w", plate, err)
	}
	return tx, nil
}

func (s *SQLTransactionRepository) CreateTransaction(ctx context.Context, tx *domain.Transaction) error {
	query := `
	INSERT INTO transactions (
		id, from_location, to_location, vehicle, plate_normalized, status,
		volume, fuel_type, date, driver, transporter, loading_bay,
		compartments, seal_loading, seal_delivery, marker_type,
		marker_concentration, marker_batch, temperature, density,
		loading_ticket, expected_delivery, gps_lat, gps_lon, approved_by
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := s.DB.ExecContext(ctx, query,
		tx.ID, tx.From, tx.To, tx.Vehicle, domain.NormalizePlate(tx.Vehicle), string(tx.Status),
		tx.Volume, string(tx.FuelType), tx.Date.Format(time.RFC3339), tx.Driver, tx.Transporter, tx.LoadingBay,
		tx.Compartments, tx.SealLoading, tx.SealDelivery, tx.MarkerType,
		tx.MarkerConcentration, tx.MarkerBatch, tx.Temperature, tx.Density,
		tx.LoadingTicket, tx.ExpectedDelivery.Format(time.RFC3339),
		tx.GPSLoading.Lat, tx.GPSLoading.Lon, tx.ApprovedBy,
	)
	if err != nil {
		return fmt.Errorf("create transaction %q: %w", tx.ID, err)
	}
	return nil
}

func (s *SQLTransactionRepository) UpdateStatus(ctx context.Context, id string, status domain.TransactionStatus, completedAt *time.Time) error {
	var completed sql.NullString
	if completedAt != nil {
		completed = sql.NullString{String: completedAt.Format(time.RFC3339), Valid: true}
	}

	res, err := s.DB.ExecContext(ctx,
		`UPDATE transactions SET status = ?, completed_at = ? WHERE id = ?;`,
		string(status), completed, id,
	)
	if err != nil {
		return fmt.Errorf("update status %q: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update status %q: rows affected: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("update status %q: no such transaction", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var (
		tx             domain.Transaction
		status, fuel   string
		date, expected string
		completed      sql.NullString
	)

	err := row.Scan(
		&tx.ID, &tx.From, &tx.To, &tx.Vehicle, &status, &tx.Volume, &fuel,
		&date, &completed, &tx.Driver, &tx.Transporter, &tx.LoadingBay, &tx.Compartments,
		&tx.SealLoading, &tx.SealDelivery, &tx.MarkerType, &tx.MarkerConcentration,
		&tx.MarkerBatch, &tx.Temperature, &tx.Density, &tx.LoadingTicket, &expected,
		&tx.GPSLoading.Lat, &tx.GPSLoading.Lon, &tx.ApprovedBy,
	)
	if err != nil {
		return nil, err
	}

	tx.Status = domain.TransactionStatus(status)
	tx.FuelType = domain.FuelType(fuel)

	if tx.Date, err = time.Parse(time.RFC3339, date); err != nil {
		return nil, fmt.Errorf("scan transaction %q: bad date: %w", tx.ID, err)
	}
	if expected != "" {
		if tx.ExpectedDelivery, err = time.Parse(time.RFC3339, expected); err != nil {
			return nil, fmt.Errorf("scan transaction %q: bad expected_delivery: %w", tx.ID, err)
		}
	}
	if completed.Valid {
		ts, err := time.Parse(time.RFC3339, completed.String)
		if err != nil {
			return nil, fmt.Errorf("scan transaction %q: bad completed_at: %w", tx.ID, err)
		}
		tx.CompletedAt = &ts
	}

	return &tx, nil
}
