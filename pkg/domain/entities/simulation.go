package entities

import "time"

// SimulationDay represents one simulated day of inventory evolution.
// InventoryLevel is rounded to 2 decimal places.
type SimulationDay struct {
	Date           time.Time
	InventoryLevel float64
}

// SimulationResult contains the complete output of an inventory simulation.
// Days holds exactly one entry per simulated day, in chronological order.
// Lead-time statistics are reported informationally; the walk itself applies
// replenishment the same day the reorder threshold is crossed.
type SimulationResult struct {
	ItemID          ItemID
	AverageLeadTime float64
	StdLeadTime     float64
	Days            []SimulationDay
}
