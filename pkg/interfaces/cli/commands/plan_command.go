package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vsinha/stockplan/pkg/application/services"
	"github.com/vsinha/stockplan/pkg/domain/entities"
	domainservices "github.com/vsinha/stockplan/pkg/domain/services"
	"github.com/vsinha/stockplan/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/stockplan/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/stockplan/pkg/interfaces/cli/output"
)

// Config holds configuration for the plan command
type Config struct {
	Mode            string
	ItemID          string
	ServiceLevel    float64
	DemandFile      string
	LeadTimesFile   string
	DailyDemandFile string
	Format          string
	Seed            int64
	Help            bool
}

// PlanCommand runs the offline planning flows over CSV inputs
type PlanCommand struct {
	config Config
}

// NewPlanCommand creates a new plan command with the given configuration
func NewPlanCommand(config Config) *PlanCommand {
	return &PlanCommand{config: config}
}

// Execute runs the plan command
func (c *PlanCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	switch c.config.Mode {
	case "safety-stock":
		return c.runSafetyStock(ctx)
	case "simulate":
		return c.runSimulation(ctx)
	default:
		return fmt.Errorf("unknown mode %q (expected safety-stock or simulate)", c.config.Mode)
	}
}

func (c *PlanCommand) runSafetyStock(ctx context.Context) error {
	if c.config.ItemID == "" {
		return fmt.Errorf("item is required")
	}
	if c.config.DemandFile == "" {
		return fmt.Errorf("demand CSV file is required for safety-stock mode")
	}

	history, err := csv.NewLoader().LoadDemandHistory(c.config.DemandFile)
	if err != nil {
		return fmt.Errorf("error loading demand history: %w", err)
	}

	itemID := entities.ItemID(c.config.ItemID)
	repo := memory.NewDemandHistoryRepository()
	repo.LoadRecords(itemID, history)

	planning := services.NewPlanningService(repo, zap.NewNop())
	result, err := planning.OptimizeSafetyStock(ctx, itemID, c.config.ServiceLevel)
	if err != nil {
		return fmt.Errorf("safety stock calculation failed: %w", err)
	}

	return output.WriteSafetyStock(result, c.config.Format)
}

func (c *PlanCommand) runSimulation(ctx context.Context) error {
	if c.config.ItemID == "" {
		return fmt.Errorf("item is required")
	}
	if c.config.LeadTimesFile == "" || c.config.DailyDemandFile == "" {
		return fmt.Errorf("lead-times and daily-demand CSV files are required for simulate mode")
	}

	loader := csv.NewLoader()
	leadTimes, err := loader.LoadLeadTimes(c.config.LeadTimesFile)
	if err != nil {
		return fmt.Errorf("error loading lead times: %w", err)
	}
	demand, err := loader.LoadDailyDemand(c.config.DailyDemandFile)
	if err != nil {
		return fmt.Errorf("error loading daily demand: %w", err)
	}

	simulationConfig := domainservices.DefaultSimulationConfig()
	simulationConfig.Seed = c.config.Seed

	planning := services.NewPlanningServiceWithConfig(
		memory.NewDemandHistoryRepository(),
		simulationConfig,
		zap.NewNop(),
	)

	result, err := planning.SimulateLeadTime(ctx, entities.ItemID(c.config.ItemID), leadTimes, demand)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	return output.WriteSimulation(result, c.config.Format)
}

func (c *PlanCommand) showHelp() {
	fmt.Println("stockplan - safety stock estimation and inventory simulation")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  stockplan -mode safety-stock -item ITEM -demand demand.csv [-service-level 0.95]")
	fmt.Println("  stockplan -mode simulate -item ITEM -lead-times lt.csv -daily-demand daily.csv [-seed N]")
	fmt.Println()
	fmt.Println("CSV formats:")
	fmt.Println("  demand.csv:  date,demand        (YYYY-MM-DD, non-negative number)")
	fmt.Println("  lt.csv:      lead_time_days     (non-negative integer)")
	fmt.Println("  daily.csv:   date,quantity      (YYYY-MM-DD, number)")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -format text|json   Output format (default text)")
	fmt.Println("  -seed N             Fix the simulation's random draws")
}
