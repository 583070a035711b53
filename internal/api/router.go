package api

import (
	"net/http"

	"fuel-custody-service/internal/api/handlers"
	"fuel-custody-service/internal/metrics"
	"fuel-custody-service/internal/ports"
	"fuel-custody-service/internal/services"
	"fuel-custody-service/internal/sim"
)

// Deps carries the ports and core components the API surfaces.
type Deps struct {
	Simulator    *sim.Simulator
	Transactions ports.TransactionRepository
	Consignments *services.ConsignmentService
	Stock        ports.StockRepository
	Incidents    ports.IncidentRepository
	Directory    ports.DirectoryRepository
	Users        ports.UserRepository
	Settings     ports.SettingsStore
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	fleetHandler := &handlers.FleetHandler{Sim: d.Simulator}
	consignmentHandler := &handlers.ConsignmentHandler{Repo: d.Transactions, Svc: d.Consignments}
	monitoringHandler := &handlers.MonitoringHandler{Stock: d.Stock, IncidentRepo: d.Incidents}
	directoryHandler := &handlers.DirectoryHandler{Dir: d.Directory, Users: d.Users}
	settingsHandler := &handlers.SettingsHandler{Store: d.Settings}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/login", directoryHandler.Login)

	mux.HandleFunc("/fleet", fleetHandler.Snapshot)
	mux.HandleFunc("/fleet/reset", fleetHandler.Reset)

	mux.HandleFunc("/transactions", consignmentHandler.List)
	mux.HandleFunc("/transactions/lookup", consignmentHandler.Lookup)
	mux.HandleFunc("/transactions/scan", consignmentHandler.Scan)
	mux.HandleFunc("/transactions/{id}", consignmentHandler.Get)
	mux.HandleFunc("/transactions/{id}/confirm", consignmentHandler.Confirm)
	mux.HandleFunc("/consignments/{id}/qr", consignmentHandler.QR)

	mux.HandleFunc("/stock", monitoringHandler.ListStock)
	mux.HandleFunc("/incidents", monitoringHandler.Incidents)

	mux.HandleFunc("/risk/profiles", monitoringHandler.RiskProfiles)
	mux.HandleFunc("/risk/zones", monitoringHandler.RiskZones)
	mux.HandleFunc("/risk/operators", monitoringHandler.RiskOperators)
	mux.HandleFunc("/risk/actions", monitoringHandler.EnforcementPlan)

	mux.HandleFunc("/depots", directoryHandler.ListDepots)
	mux.HandleFunc("/stations", directoryHandler.ListStations)

	mux.HandleFunc("/settings", settingsHandler.Handle)
	mux.HandleFunc("/metrics", metrics.HandleMetrics)

	return loggingMiddleware(mux)
}
