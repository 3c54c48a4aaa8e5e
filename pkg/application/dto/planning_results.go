package dto

import (
	"time"

	"github.com/vsinha/stockplan/pkg/domain/entities"
)

// SafetyStockResponse is the wire shape of a safety stock calculation
type SafetyStockResponse struct {
	ItemID        string  `json:"item_id"`
	SafetyStock   float64 `json:"safety_stock"`
	AverageDemand float64 `json:"average_demand"`
	StdDemand     float64 `json:"std_demand"`
	ServiceLevel  float64 `json:"service_level"`
	DataPoints    int     `json:"data_points"`
}

// SimulationDayResponse is one simulated day on the wire
type SimulationDayResponse struct {
	Date           string  `json:"date"`
	InventoryLevel float64 `json:"inventory_level"`
}

// SimulationResponse is the wire shape of an inventory simulation
type SimulationResponse struct {
	ItemID            string                  `json:"item_id"`
	AverageLeadTime   float64                 `json:"average_lead_time"`
	StdLeadTime       float64                 `json:"std_lead_time"`
	SimulationResults []SimulationDayResponse `json:"simulation_results"`
}

// FromSafetyStockResult converts a domain safety stock result to its wire shape
func FromSafetyStockResult(result *entities.SafetyStockResult) *SafetyStockResponse {
	return &SafetyStockResponse{
		ItemID:        string(result.ItemID),
		SafetyStock:   result.SafetyStock,
		AverageDemand: result.AverageDemand,
		StdDemand:     result.StdDemand,
		ServiceLevel:  result.ServiceLevel,
		DataPoints:    result.SampleSize,
	}
}

// FromSimulationResult converts a domain simulation result to its wire shape
func FromSimulationResult(result *entities.SimulationResult) *SimulationResponse {
	days := make([]SimulationDayResponse, 0, len(result.Days))
	for _, day := range result.Days {
		days = append(days, SimulationDayResponse{
			Date:           day.Date.Format(time.RFC3339),
			InventoryLevel: day.InventoryLevel,
		})
	}
	return &SimulationResponse{
		ItemID:            string(result.ItemID),
		AverageLeadTime:   result.AverageLeadTime,
		StdLeadTime:       result.StdLeadTime,
		SimulationResults: days,
	}
}
