package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fuel-custody-service/internal/domain"
)

// SQL-backed implementation of the StockRepository port.
type SQLStockRepository struct{ DB *sql.DB }

func NewSQLStockRepository(db *sql.DB) *SQLStockRepository {
	return &SQLStockRepository{DB: db}
}

func (s *SQLStockRepository) ListStock(ctx context.Context) ([]*domain.StockRecord, error) {
	if s.DB == nil {
		return nil, errors.New("sql stock repository: DB is nil")
	}

	query := `
	SELECT location, opening, current, capacity, variance,
	       receipts, withdrawals, losses, company, per_fuel
	FROM stock_records ORDER BY location;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stock: query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.StockRecord, 0, 16)
	for rows.Next() {
		var rec domain.StockRecord
		var perFuel string
		if err := rows.Scan(
			&rec.Location, &rec.Opening, &rec.Current, &rec.Capacity, &rec.Variance,
			&rec.Receipts, &rec.Withdrawals, &rec.Losses, &rec.Company, &perFuel,
		); err != nil {
			return nil, fmt.Errorf("list stock: scan row: %w", err)
		}
		if perFuel != "" {
			if err := json.Unmarshal([]byte(perFuel), &rec.PerFuel); err != nil {
				return nil, fmt.Errorf("list stock: parse per_fuel for %q: %w", rec.Location, err)
			}
		}
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stock: row iteration: %w", err)
	}

	return records, nil
}

// SQL-backed implementation of the IncidentRepository port.
type SQLIncidentRepository struct{ DB *sql.DB }

func NewSQLIncidentRepository(db *sql.DB) *SQLIncidentRepository {
	return &SQLIncidentRepository{DB: db}
}

func (s *SQLIncidentRepository) ListIncidents(ctx context.Context) ([]*domain.Incident, error) {
	if s.DB == nil {
		return nil, errors.New("sql incident repository: DB is nil")
	}

	query := `
	SELECT id, location, type, severity, timestamp, status, assigned_to
	FROM incidents ORDER BY timestamp DESC;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list incidents: query: %w", err)
	}
	defer rows.Close()

	incidents := make([]*domain.Incident, 0, 16)
	for rows.Next() {
		var (
			inc              domain.Incident
			severity, status string
			ts               string
		)
		if err := rows.Scan(&inc.ID, &inc.Location, &inc.Type, &severity, &ts, &status, &inc.AssignedTo); err != nil {
			return nil, fmt.Errorf("list incidents: scan row: %w", err)
		}
		inc.Severity = domain.AlertSeverity(severity)
		inc.Status = domain.IncidentStatus(status)
		if inc.Timestamp, err = time.Parse(time.RFC3339, ts); err != nil {
			return nil, fmt.Errorf("list incidents: bad timestamp for %q: %w", inc.ID, err)
		}
		incidents = append(incidents, &inc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list incidents: row iteration: %w", err)
	}

	return incidents, nil
}

func (s *SQLIncidentRepository) CreateIncident(ctx context.Context, inc *domain.Incident) error {
	query := `
	INSERT INTO incidents (id, location, type, severity, timestamp, status, assigned_to)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	_, err := s.DB.ExecContext(ctx, query,
		inc.ID, inc.Location, inc.Type, string(inc.Severity),
		inc.Timestamp.Format(time.RFC3339), string(inc.Status), inc.AssignedTo,
	)
	if err != nil {
		return fmt.Errorf("create incident %q: %w", inc.ID, err)
	}
	return nil
}
