package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"fuel-custody-service/internal/domain"
)

// SQL-backed implementation of the DirectoryRepository port (the WSM
// depot/station directory).
type SQLDirectoryRepository struct{ DB *sql.DB }

func NewSQLDirectoryRepository(db *sql.DB) *SQLDirectoryRepository {
	return &SQLDirectoryRepository{DB: db}
}

func (s *SQLDirectoryRepository) ListDepots(ctx context.Context) ([]*domain.Depot, error) {
	if s.DB == nil {
		return nil, errors.New("sql directory repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, name, location, capacity, lat, lon FROM depots ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("list depots: query: %w", err)
	}
	defer rows.Close()

	depots := make([]*domain.Depot, 0, 8)
	for rows.Next() {
		var d domain.Depot
		if err := rows.Scan(&d.ID, &d.Name, &d.Location, &d.Capacity, &d.Position.Lat, &d.Position.Lon); err != nil {
			return nil, fmt.Errorf("list depots: scan row: %w", err)
		}
		depots = append(depots, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list depots: row iteration: %w", err)
	}

	return depots, nil
}

func (s *SQLDirectoryRepository) ListStations(ctx context.Context) ([]*domain.Station, error) {
	if s.DB == nil {
		return nil, errors.New("sql directory repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, name, location, company, lat, lon FROM stations ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("list stations: query: %w", err)
	}
	defer rows.Close()

	stations := make([]*domain.Station, 0, 16)
	for rows.Next() {
		var st domain.Station
		if err := rows.Scan(&st.ID, &st.Name, &st.Location, &st.Company, &st.Position.Lat, &st.Position.Lon); err != nil {
			return nil, fmt.Errorf("list stations: scan row: %w", err)
		}
		stations = append(stations, &st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stations: row iteration: %w", err)
	}

	return stations, nil
}

// SQL-backed implementation of the UserRepository port.
type SQLUserRepository struct{ DB *sql.DB }

func NewSQLUserRepository(db *sql.DB) *SQLUserRepository {
	return &SQLUserRepository{DB: db}
}

// FindOrCreateByRole matches an existing account by role string or
// creates a fresh one. No credentials are involved.
func (s *SQLUserRepository) FindOrCreateByRole(ctx context.Context, name, role string) (*domain.User, error) {
	var u domain.User
	err := s.DB.QueryRowContext(ctx,
		`SELECT id, name, role FROM users WHERE role = ? LIMIT 1;`, role,
	).Scan(&u.ID, &u.Name, &u.Role)
	if err == nil {
		return &u, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find user by role %q: %w", role, err)
	}

	u = domain.User{ID: uuid.NewString(), Name: name, Role: role}
	if _, err := s.DB.ExecContext(ctx,
		`INSERT INTO users (id, name, role) VALUES (?, ?, ?);`,
		u.ID, u.Name, u.Role,
	); err != nil {
		return nil, fmt.Errorf("create user role=%q: %w", role, err)
	}
	return &u, nil
}
