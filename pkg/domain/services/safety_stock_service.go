package services

import (
	"fmt"

	"github.com/vsinha/stockplan/pkg/domain/entities"
)

// serviceLevelZScore is the one-tailed standard normal quantile for a 95%
// service level. The caller's requested service level is echoed in the
// result but does not change the multiplier.
const serviceLevelZScore = 1.96

// SafetyStockService derives safety stock levels from historical demand
// variability.
type SafetyStockService struct {
	stats *StatisticsService
}

// NewSafetyStockService creates a new safety stock service
func NewSafetyStockService() *SafetyStockService {
	return &SafetyStockService{
		stats: NewStatisticsService(),
	}
}

// Calculate computes the safety stock for an item from its historical demand
// records. Records missing the demand field fail with MalformedRecordError;
// an empty extracted sequence fails with ErrEmptyData. Numeric result fields
// are rounded to 2 decimal places and SafetyStock is always >= 0.
func (s *SafetyStockService) Calculate(
	itemID entities.ItemID,
	desiredServiceLevel float64,
	history []entities.DemandRecord,
) (*entities.SafetyStockResult, error) {
	if desiredServiceLevel < 0 || desiredServiceLevel > 1 {
		return nil, fmt.Errorf(
			"desired service level must be between 0 and 1, got %v",
			desiredServiceLevel,
		)
	}

	demands := make([]float64, 0, len(history))
	for i, record := range history {
		if record.Demand == nil {
			return nil, &entities.MalformedRecordError{
				ItemID: itemID,
				Field:  "demand",
				Index:  i,
			}
		}
		demands = append(demands, *record.Demand)
	}

	if len(demands) == 0 {
		return nil, fmt.Errorf("item %s: %w", itemID, entities.ErrEmptyData)
	}

	stats, err := s.stats.Describe(demands)
	if err != nil {
		return nil, fmt.Errorf("failed to compute demand statistics for %s: %w", itemID, err)
	}

	return &entities.SafetyStockResult{
		ItemID:        itemID,
		SafetyStock:   round2(serviceLevelZScore * stats.StdDev),
		AverageDemand: round2(stats.Mean),
		StdDemand:     round2(stats.StdDev),
		ServiceLevel:  desiredServiceLevel,
		SampleSize:    stats.SampleSize,
	}, nil
}
