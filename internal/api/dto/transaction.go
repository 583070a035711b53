package dto

import (
	"time"

	"fuel-custody-service/internal/domain"
)

// Wire shape for a consignment. The JSON boundary carries the long
// field names (from_location, to_location, fuel_type); the domain model
// uses the short ones.
type TransactionResponse struct {
	ID           string     `json:"id"`
	FromLocation string     `json:"from_location"`
	ToLocation   string     `json:"to_location"`
	Vehicle      string     `json:"vehicle"`
	Status       string     `json:"status"`
	Volume       int        `json:"volume"`
	FuelType     string     `json:"fuel_type"`
	Date         time.Time  `json:"date"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`

	Driver      string `json:"driver"`
	Transporter string `json:"transporter"`

	LoadingBay   string `json:"loading_bay"`
	Compartments int    `json:"compartments"`

	SealLoading  string `json:"seal_loading"`
	SealDelivery string `json:"seal_delivery,omitempty"`

	MarkerType          string  `json:"marker_type"`
	MarkerConcentration float64 `json:"marker_concentration"`
	MarkerBatch         string  `json:"marker_batch"`

	Temperature float64 `json:"temperature"`
	Density     float64 `json:"density"`

	LoadingTicket    string    `json:"loading_ticket"`
	ExpectedDelivery time.Time `json:"expected_delivery"`
	GPSLat           float64   `json:"gps_lat"`
	GPSLon           float64   `json:"gps_lon"`
	ApprovedBy       string    `json:"approved_by"`
}

type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

type LookupRequest struct {
	Plate string `json:"plate"`
}

type LookupResponse struct {
	Created     bool                `json:"created"`
	Transaction TransactionResponse `json:"transaction"`
}

type ScanRequest struct {
	Payload string `json:"payload"`
}

func FromTransaction(tx *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           tx.ID,
		FromLocation: tx.From,
		ToLocation:   tx.To,
		Vehicle:      tx.Vehicle,
		Status:       string(tx.Status),
		Volume:       tx.Volume,
		FuelType:     string(tx.FuelType),
		Date:         tx.Date,
		CompletedAt:  tx.CompletedAt,

		Driver:      tx.Driver,
		Transporter: tx.Transporter,

		LoadingBay:   tx.LoadingBay,
		Compartments: tx.Compartments,

		SealLoading:  tx.SealLoading,
		SealDelivery: tx.SealDelivery,

		MarkerType:          tx.MarkerType,
		MarkerConcentration: tx.MarkerConcentration,
		MarkerBatch:         tx.MarkerBatch,

		Temperature: tx.Temperature,
		Density:     tx.Density,

		LoadingTicket:    tx.LoadingTicket,
		ExpectedDelivery: tx.ExpectedDelivery,
		GPSLat:           tx.GPSLoading.Lat,
		GPSLon:           tx.GPSLoading.Lon,
		ApprovedBy:       tx.ApprovedBy,
	}
}
