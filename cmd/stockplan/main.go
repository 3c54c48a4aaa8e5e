package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/vsinha/stockplan/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		mode = flag.String(
			"mode",
			"safety-stock",
			"Planning mode: safety-stock or simulate",
		)
		itemID          = flag.String("item", "", "Item identifier")
		serviceLevel    = flag.Float64("service-level", 0.95, "Desired service level (0-1)")
		demandFile      = flag.String("demand", "", "Path to historical demand CSV file")
		leadTimesFile   = flag.String("lead-times", "", "Path to lead times CSV file")
		dailyDemandFile = flag.String("daily-demand", "", "Path to daily demand CSV file")
		format          = flag.String("format", "text", "Output format: text, json")
		seed            = flag.Int64("seed", 0, "Random seed for the simulation (0 = from clock)")
		help            = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	config := commands.Config{
		Mode:            *mode,
		ItemID:          *itemID,
		ServiceLevel:    *serviceLevel,
		DemandFile:      *demandFile,
		LeadTimesFile:   *leadTimesFile,
		DailyDemandFile: *dailyDemandFile,
		Format:          *format,
		Seed:            *seed,
		Help:            *help,
	}

	cmd := commands.NewPlanCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
