package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vsinha/stockplan/pkg/application/dto"
	"github.com/vsinha/stockplan/pkg/domain/entities"
	"github.com/vsinha/stockplan/pkg/domain/repositories"
	domainservices "github.com/vsinha/stockplan/pkg/domain/services"
)

// PlanningService exposes the two planning operations: safety stock
// optimization over upstream demand history, and lead-time inventory
// simulation over caller-supplied data. Both are stateless; each invocation
// computes fresh results and may run concurrently with others.
type PlanningService struct {
	historyRepo repositories.DemandHistoryRepository
	safetyStock *domainservices.SafetyStockService
	simulation  *domainservices.SimulationService
	logger      *zap.Logger
}

// NewPlanningService creates a planning service with the default simulation
// configuration
func NewPlanningService(
	historyRepo repositories.DemandHistoryRepository,
	logger *zap.Logger,
) *PlanningService {
	return NewPlanningServiceWithConfig(
		historyRepo,
		domainservices.DefaultSimulationConfig(),
		logger,
	)
}

// NewPlanningServiceWithConfig creates a planning service with a custom
// simulation configuration
func NewPlanningServiceWithConfig(
	historyRepo repositories.DemandHistoryRepository,
	simulationConfig domainservices.SimulationConfig,
	logger *zap.Logger,
) *PlanningService {
	return &PlanningService{
		historyRepo: historyRepo,
		safetyStock: domainservices.NewSafetyStockService(),
		simulation:  domainservices.NewSimulationServiceWithConfig(simulationConfig),
		logger:      logger,
	}
}

// OptimizeSafetyStock fetches the item's demand history and derives its
// safety stock level. Upstream failures propagate unwrapped so callers can
// distinguish them from calculation errors.
func (s *PlanningService) OptimizeSafetyStock(
	ctx context.Context,
	itemID entities.ItemID,
	desiredServiceLevel float64,
) (*dto.SafetyStockResponse, error) {
	history, err := s.historyRepo.FetchDemandHistory(ctx, itemID)
	if err != nil {
		return nil, err
	}

	result, err := s.safetyStock.Calculate(itemID, desiredServiceLevel, history)
	if err != nil {
		s.logger.Error("safety stock calculation failed",
			zap.String("item_id", string(itemID)),
			zap.Error(err))
		return nil, fmt.Errorf("safety stock calculation for %s: %w", itemID, err)
	}

	s.logger.Info("calculated safety stock",
		zap.String("item_id", string(itemID)),
		zap.Float64("safety_stock", result.SafetyStock),
		zap.Float64("average_demand", result.AverageDemand),
		zap.Int("data_points", result.SampleSize))

	return dto.FromSafetyStockResult(result), nil
}

// SimulateLeadTime runs the inventory simulation for an item over the
// caller-supplied lead times and daily demand records.
func (s *PlanningService) SimulateLeadTime(
	ctx context.Context,
	itemID entities.ItemID,
	leadTimes []int,
	demand []entities.DailyDemand,
) (*dto.SimulationResponse, error) {
	result, err := s.simulation.Simulate(itemID, leadTimes, demand)
	if err != nil {
		s.logger.Error("inventory simulation failed",
			zap.String("item_id", string(itemID)),
			zap.Error(err))
		return nil, fmt.Errorf("inventory simulation for %s: %w", itemID, err)
	}

	s.logger.Info("simulated inventory",
		zap.String("item_id", string(itemID)),
		zap.Float64("average_lead_time", result.AverageLeadTime),
		zap.Int("days", len(result.Days)))

	return dto.FromSimulationResult(result), nil
}
