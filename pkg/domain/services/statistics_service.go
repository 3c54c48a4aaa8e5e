package services

import (
	"math"

	"github.com/vsinha/stockplan/pkg/domain/entities"
)

// StatisticsService computes aggregate statistics over numeric samples.
// It is a pure computation with no I/O and no hidden state, so a single
// instance is safe for concurrent use.
type StatisticsService struct{}

// NewStatisticsService creates a new statistics service
func NewStatisticsService() *StatisticsService {
	return &StatisticsService{}
}

// Describe returns the population mean and population standard deviation
// (divisor n, not n-1) of values, along with the sample size. Observation
// order does not affect the result.
func (s *StatisticsService) Describe(values []float64) (*entities.SampleStatistics, error) {
	if len(values) == 0 {
		return nil, entities.ErrEmptyInput
	}

	n := float64(len(values))

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / n

	var sumSquares float64
	for _, v := range values {
		d := v - mean
		sumSquares += d * d
	}

	return &entities.SampleStatistics{
		Mean:       mean,
		StdDev:     math.Sqrt(sumSquares / n),
		SampleSize: len(values),
	}, nil
}
