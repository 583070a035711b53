package dto

import "fuel-custody-service/internal/domain"

type DepotResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Capacity int     `json:"capacity"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

type ListDepotsResponse struct {
	Depots []DepotResponse `json:"depots"`
}

type StationResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Company  string  `json:"company"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

type ListStationsResponse struct {
	Stations []StationResponse `json:"stations"`
}

type LoginRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type LoginResponse struct {
	User         domain.User         `json:"user"`
	Capabilities []domain.Capability `json:"capabilities"`
}

func FromDepot(d *domain.Depot) DepotResponse {
	return DepotResponse{
		ID: d.ID, Name: d.Name, Location: d.Location,
		Capacity: d.Capacity, Lat: d.Position.Lat, Lon: d.Position.Lon,
	}
}

func FromStation(s *domain.Station) StationResponse {
	return StationResponse{
		ID: s.ID, Name: s.Name, Location: s.Location,
		Company: s.Company, Lat: s.Position.Lat, Lon: s.Position.Lon,
	}
}
