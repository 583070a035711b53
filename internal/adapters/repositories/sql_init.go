package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Initialize the CRUD gateway schema. Statements are portable across
// the sqlite and postgres drivers the service runs against.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createTransactionsQuery := `
	CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		from_location TEXT NOT NULL,
		to_location TEXT NOT NULL,
		vehicle TEXT NOT NULL,
		plate_normalized TEXT NOT NULL,
		status TEXT NOT NULL,
		volume INTEGER NOT NULL,
		fuel_type TEXT NOT NULL,
		date TEXT NOT NULL,
		completed_at TEXT,
		driver TEXT NOT NULL DEFAULT '',
		transporter TEXT NOT NULL DEFAULT '',
		loading_bay TEXT NOT NULL DEFAULT '',
		compartments INTEGER NOT NULL DEFAULT 1,
		seal_loading TEXT NOT NULL DEFAULT '',
		seal_delivery TEXT NOT NULL DEFAULT '',
		marker_type TEXT NOT NULL DEFAULT '',
		marker_concentration REAL NOT NULL DEFAULT 0,
		marker_batch TEXT NOT NULL DEFAULT '',
		temperature REAL NOT NULL DEFAULT 0,
		density REAL NOT NULL DEFAULT 0,
		loading_ticket TEXT NOT NULL DEFAULT '',
		expected_delivery TEXT NOT NULL DEFAULT '',
		gps_lat REAL NOT NULL DEFAULT 0,
		gps_lon REAL NOT NULL DEFAULT 0,
		approved_by TEXT NOT NULL DEFAULT ''
	);
	`

	createStockQuery := `
	CREATE TABLE IF NOT EXISTS stock_records (
		location TEXT PRIMARY KEY,
		opening INTEGER NOT NULL,
		current INTEGER NOT NULL,
		capacity INTEGER NOT NULL,
		variance REAL NOT NULL,
		receipts INTEGER NOT NULL,
		withdrawals INTEGER NOT NULL,
		losses INTEGER NOT NULL,
		company TEXT NOT NULL,
		per_fuel TEXT NOT NULL DEFAULT '[]'
	);
	`

	createIncidentsQuery := `
	CREATE TABLE IF NOT EXISTS incidents (
		id TEXT PRIMARY KEY,
		location TEXT NOT NULL,
		type TEXT NOT NULL,
		severity TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		status TEXT NOT NULL,
		assigned_to TEXT NOT NULL DEFAULT ''
	);
	`

	createDepotsQuery := `
	CREATE TABLE IF NOT EXISTS depots (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		location TEXT NOT NULL,
		capacity INTEGER NOT NULL,
		lat REAL NOT NULL,
		lon REAL NOT NULL
	);
	`

	createStationsQuery := `
	CREATE TABLE IF NOT EXISTS stations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		location TEXT NOT NULL,
		company TEXT NOT NULL,
		lat REAL NOT NULL,
		lon REAL NOT NULL
	);
	`

	createUsersQuery := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_transactions_plate
	ON transactions(plate_normalized, date);
	`

	statements := []string{
		createTransactionsQuery,
		createStockQuery,
		createIncidentsQuery,
		createDepotsQuery,
		createStationsQuery,
		createUsersQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Seed-file shapes. The JSON boundary uses the long transaction field
// names (from_location, to_location, fuel_type); the in-memory domain
// model uses the short ones.
type TransactionSeed struct {
	ID               string  `json:"id"`
	FromLocation     string  `json:"from_location"`
	ToLocation       string  `json:"to_location"`
	Vehicle          string  `json:"vehicle"`
	Status           string  `json:"status"`
	Volume           int     `json:"volume"`
	FuelType         string  `json:"fuel_type"`
	Date             string  `json:"date"`
	Driver           string  `json:"driver"`
	Transporter      string  `json:"transporter"`
	LoadingBay       string  `json:"loading_bay"`
	Compartments     int     `json:"compartments"`
	SealLoading      string  `json:"seal_loading"`
	LoadingTicket    string  `json:"loading_ticket"`
	ExpectedDelivery string  `json:"expected_delivery"`
	GPSLat           float64 `json:"gps_lat"`
	GPSLon           float64 `json:"gps_lon"`
	ApprovedBy       string  `json:"approved_by"`
}

type StockSeed struct {
	Location    string          `json:"location"`
	Opening     int             `json:"opening"`
	Current     int             `json:"current"`
	Capacity    int             `json:"capacity"`
	Variance    float64         `json:"variance"`
	Receipts    int             `json:"receipts"`
	Withdrawals int             `json:"withdrawals"`
	Losses      int             `json:"losses"`
	Company     string          `json:"company"`
	PerFuel     json.RawMessage `json:"per_fuel"`
}

type IncidentSeed struct {
	ID         string `json:"id"`
	Location   string `json:"location"`
	Type       string `json:"type"`
	Severity   string `json:"severity"`
	Timestamp  string `json:"timestamp"`
	Status     string `json:"status"`
	AssignedTo string `json:"assigned_to"`
}

type DepotSeed struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Capacity int     `json:"capacity"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

type StationSeed struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Company  string  `json:"company"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

// Populate the gateway from the JSON seed directory. Missing seed files
// are skipped so a partial seed set still boots.
func SeedFromJSON(db *sql.DB, seedDir string) error {
	if err := seedTransactions(db, filepath.Join(seedDir, "transactions.json")); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if err := seedStock(db, filepath.Join(seedDir, "stock.json")); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if err := seedIncidents(db, filepath.Join(seedDir, "incidents.json")); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if err := seedDepots(db, filepath.Join(seedDir, "depots.json")); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if err := seedStations(db, filepath.Join(seedDir, "stations.json")); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}

func readSeed[T any](jsonPath string) ([]T, error) {
	bytes, err := os.ReadFile(jsonPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", jsonPath, err)
	}

	var data []T
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("parse %q: %w", jsonPath, err)
	}
	return data, nil
}

func seedTransactions(db *sql.DB, jsonPath string) error {
	rows, err := readSeed[TransactionSeed](jsonPath)
	if err != nil || len(rows) == 0 {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("transactions: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO transactions (
		id, from_location, to_location, vehicle, plate_normalized, status,
		volume, fuel_type, date, driver, transporter, loading_bay,
		compartments, seal_loading, loading_ticket, expected_delivery,
		gps_lat, gps_lon, approved_by
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("transactions: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range rows {
		if strings.TrimSpace(t.ID) == "" {
			return fmt.Errorf("transactions: empty id at index %d", i+1)
		}
		if _, err := time.Parse(time.RFC3339, t.Date); err != nil {
			return fmt.Errorf("transactions: bad date for %q: %w", t.ID, err)
		}
		plate := strings.ToUpper(strings.Join(strings.Fields(t.Vehicle), ""))
		if _, err := stmt.Exec(
			t.ID, t.FromLocation, t.ToLocation, t.Vehicle, plate, t.Status,
			t.Volume, t.FuelType, t.Date, t.Driver, t.Transporter, t.LoadingBay,
			t.Compartments, t.SealLoading, t.LoadingTicket, t.ExpectedDelivery,
			t.GPSLat, t.GPSLon, t.ApprovedBy,
		); err != nil {
			return fmt.Errorf("transactions: insert id=%s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("transactions: commit tx: %w", err)
	}
	return nil
}

func seedStock(db *sql.DB, jsonPath string) error {
	rows, err := readSeed[StockSeed](jsonPath)
	if err != nil || len(rows) == 0 {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("stock: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO stock_records (
		location, opening, current, capacity, variance,
		receipts, withdrawals, losses, company, per_fuel
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("stock: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, s := range rows {
		if strings.TrimSpace(s.Location) == "" {
			return fmt.Errorf("stock: empty location at index %d", i+1)
		}
		perFuel := string(s.PerFuel)
		if perFuel == "" {
			perFuel = "[]"
		}
		if _, err := stmt.Exec(
			s.Location, s.Opening, s.Current, s.Capacity, s.Variance,
			s.Receipts, s.Withdrawals, s.Losses, s.Company, perFuel,
		); err != nil {
			return fmt.Errorf("stock: insert location=%s: %w", s.Location, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("stock: commit tx: %w", err)
	}
	return nil
}

func seedIncidents(db *sql.DB, jsonPath string) error {
	rows, err := readSeed[IncidentSeed](jsonPath)
	if err != nil || len(rows) == 0 {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("incidents: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO incidents (
		id, location, type, severity, timestamp, status, assigned_to
	)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("incidents: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, inc := range rows {
		if strings.TrimSpace(inc.ID) == "" {
			return fmt.Errorf("incidents: empty id at index %d", i+1)
		}
		if _, err := stmt.Exec(
			inc.ID, inc.Location, inc.Type, inc.Severity,
			inc.Timestamp, inc.Status, inc.AssignedTo,
		); err != nil {
			return fmt.Errorf("incidents: insert id=%s: %w", inc.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("incidents: commit tx: %w", err)
	}
	return nil
}

func seedDepots(db *sql.DB, jsonPath string) error {
	rows, err := readSeed[DepotSeed](jsonPath)
	if err != nil || len(rows) == 0 {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("depots: begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO depots (id, name, location, capacity, lat, lon)
	VALUES (?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("depots: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range rows {
		if _, err := stmt.Exec(d.ID, d.Name, d.Location, d.Capacity, d.Lat, d.Lon); err != nil {
			return fmt.Errorf("depots: insert id=%s: %w", d.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("depots: commit tx: %w", err)
	}
	return nil
}

func seedStations(db *sql.DB, jsonPath string) error {
	rows, err := readSeed[StationSeed](jsonPath)
	if err != nil || len(rows) == 0 {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("stations: begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO stations (id, name, location, company, lat, lon)
	VALUES (?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("stations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range rows {
		if _, err := stmt.Exec(s.ID, s.Name, s.Location, s.Company, s.Lat, s.Lon); err != nil {
			return fmt.Errorf("stations: insert id=%s: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("stations: commit tx: %w", err)
	}
	return nil
}
