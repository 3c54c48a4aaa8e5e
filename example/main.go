package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/vsinha/stockplan/pkg/application/services"
	"github.com/vsinha/stockplan/pkg/domain/entities"
	"github.com/vsinha/stockplan/pkg/infrastructure/repositories/memory"
)

// Demonstrates the planning service against an in-memory demand history.
func main() {
	ctx := context.Background()

	repo := memory.NewDemandHistoryRepository()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.LoadRecords("WIDGET-1", []entities.DemandRecord{
		entities.NewDemandRecord(start, 8),
		entities.NewDemandRecord(start.AddDate(0, 0, 1), 12),
		entities.NewDemandRecord(start.AddDate(0, 0, 2), 10),
		entities.NewDemandRecord(start.AddDate(0, 0, 3), 10),
	})

	planning := services.NewPlanningService(repo, zap.NewNop())

	safetyStock, err := planning.OptimizeSafetyStock(ctx, "WIDGET-1", 0.95)
	if err != nil {
		log.Fatalf("safety stock failed: %v", err)
	}
	fmt.Printf("Safety stock for %s: %.2f (avg demand %.2f over %d points)\n",
		safetyStock.ItemID, safetyStock.SafetyStock,
		safetyStock.AverageDemand, safetyStock.DataPoints)

	demand := []entities.DailyDemand{
		entities.NewDailyDemand(start, 30),
		entities.NewDailyDemand(start.AddDate(0, 0, 1), 28),
		entities.NewDailyDemand(start.AddDate(0, 0, 2), 33),
	}
	simulation, err := planning.SimulateLeadTime(ctx, "WIDGET-1", []int{5, 7, 6}, demand)
	if err != nil {
		log.Fatalf("simulation failed: %v", err)
	}
	fmt.Printf("Average lead time: %.2f days, %d simulated days\n",
		simulation.AverageLeadTime, len(simulation.SimulationResults))
	for _, day := range simulation.SimulationResults[:5] {
		fmt.Printf("  %s  %8.2f\n", day.Date, day.InventoryLevel)
	}
}
