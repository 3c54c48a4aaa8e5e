package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vsinha/stockplan/pkg/application/dto"
)

// WriteSafetyStock prints a safety stock result in the given format
func WriteSafetyStock(result *dto.SafetyStockResponse, format string) error {
	switch format {
	case "text":
		fmt.Printf("📦 Safety Stock Result\n")
		fmt.Printf("======================\n\n")
		fmt.Printf("Item:            %s\n", result.ItemID)
		fmt.Printf("Safety Stock:    %.2f\n", result.SafetyStock)
		fmt.Printf("Average Demand:  %.2f\n", result.AverageDemand)
		fmt.Printf("Std Demand:      %.2f\n", result.StdDemand)
		fmt.Printf("Service Level:   %.2f\n", result.ServiceLevel)
		fmt.Printf("Data Points:     %d\n", result.DataPoints)
		return nil
	case "json":
		return writeJSON(result)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteSimulation prints a simulation result in the given format
func WriteSimulation(result *dto.SimulationResponse, format string) error {
	switch format {
	case "text":
		fmt.Printf("📈 Inventory Simulation\n")
		fmt.Printf("=======================\n\n")
		fmt.Printf("Item:              %s\n", result.ItemID)
		fmt.Printf("Average Lead Time: %.2f days\n", result.AverageLeadTime)
		fmt.Printf("Std Lead Time:     %.2f days\n\n", result.StdLeadTime)

		fmt.Printf("%-28s %-15s\n", "Date", "Inventory")
		fmt.Printf("%-28s %-15s\n", "----------------------------", "---------------")
		for _, day := range result.SimulationResults {
			fmt.Printf("%-28s %15.2f\n", day.Date, day.InventoryLevel)
		}
		return nil
	case "json":
		return writeJSON(result)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func writeJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
