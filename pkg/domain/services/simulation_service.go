package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vsinha/stockplan/pkg/domain/entities"
)

// Default parameters for the replenishment walk.
const (
	defaultHorizonDays       = 30
	defaultStartingInventory = 100
	defaultReorderThreshold  = 20
	defaultReplenishQty      = 100
)

// SimulationConfig holds tuning for the inventory simulation
type SimulationConfig struct {
	// HorizonDays is the number of simulated days
	HorizonDays int
	// StartingInventory is the inventory level on day zero
	StartingInventory float64
	// ReorderThreshold triggers replenishment when inventory drops below it
	ReorderThreshold float64
	// ReplenishQty is added to inventory when the threshold is crossed
	ReplenishQty float64
	// Seed fixes the demand draws; 0 seeds from the clock
	Seed int64
}

// DefaultSimulationConfig returns the standard 30-day walk configuration
func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		HorizonDays:       defaultHorizonDays,
		StartingInventory: defaultStartingInventory,
		ReorderThreshold:  defaultReorderThreshold,
		ReplenishQty:      defaultReplenishQty,
	}
}

// SimulationService runs fixed-horizon, single-item inventory simulations
// under a threshold-triggered replenishment rule. Each Simulate call uses its
// own random source, so concurrent simulations do not interfere with each
// other's draw sequences.
type SimulationService struct {
	stats  *StatisticsService
	config SimulationConfig
	now    func() time.Time
}

// NewSimulationService creates a simulation service with default configuration
func NewSimulationService() *SimulationService {
	return NewSimulationServiceWithConfig(DefaultSimulationConfig())
}

// NewSimulationServiceWithConfig creates a simulation service with custom
// configuration. The configuration is used as given.
func NewSimulationServiceWithConfig(config SimulationConfig) *SimulationService {
	return &SimulationService{
		stats:  NewStatisticsService(),
		config: config,
		now:    time.Now,
	}
}

// Simulate runs the inventory walk for an item. Lead-time statistics are
// computed over leadTimes and reported in the result; daily demand draws are
// normal samples parameterized by the mean and standard deviation of the
// supplied demand quantities, drawn fresh each day. Replenishment is applied
// the same day the inventory level crosses the reorder threshold.
func (s *SimulationService) Simulate(
	itemID entities.ItemID,
	leadTimes []int,
	demand []entities.DailyDemand,
) (*entities.SimulationResult, error) {
	if len(leadTimes) == 0 {
		return nil, fmt.Errorf("lead times for item %s: %w", itemID, entities.ErrEmptyInput)
	}
	if len(demand) == 0 {
		return nil, fmt.Errorf("demand records for item %s: %w", itemID, entities.ErrEmptyData)
	}

	leadTimeValues := make([]float64, len(leadTimes))
	for i, lt := range leadTimes {
		leadTimeValues[i] = float64(lt)
	}

	leadTimeStats, err := s.stats.Describe(leadTimeValues)
	if err != nil {
		return nil, fmt.Errorf("failed to compute lead time statistics for %s: %w", itemID, err)
	}

	quantities := make([]float64, 0, len(demand))
	for i, record := range demand {
		if record.Quantity == nil {
			return nil, &entities.MalformedRecordError{
				ItemID: itemID,
				Field:  "quantity",
				Index:  i,
			}
		}
		quantities = append(quantities, *record.Quantity)
	}

	demandStats, err := s.stats.Describe(quantities)
	if err != nil {
		return nil, fmt.Errorf("failed to compute demand statistics for %s: %w", itemID, err)
	}

	rng := s.newRand()
	startDate := s.now()
	currentInventory := s.config.StartingInventory

	days := make([]entities.SimulationDay, 0, s.config.HorizonDays)
	for day := 0; day < s.config.HorizonDays; day++ {
		dailyDemand := demandStats.Mean + demandStats.StdDev*rng.NormFloat64()
		currentInventory -= dailyDemand

		if currentInventory < s.config.ReorderThreshold {
			currentInventory += s.config.ReplenishQty
		}

		days = append(days, entities.SimulationDay{
			Date:           startDate.AddDate(0, 0, day),
			InventoryLevel: round2(currentInventory),
		})
	}

	return &entities.SimulationResult{
		ItemID:          itemID,
		AverageLeadTime: round2(leadTimeStats.Mean),
		StdLeadTime:     round2(leadTimeStats.StdDev),
		Days:            days,
	}, nil
}

// newRand returns a dedicated random source for one simulation run.
func (s *SimulationService) newRand() *rand.Rand {
	seed := s.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
