package repositories

import (
	"context"

	"github.com/vsinha/stockplan/pkg/domain/entities"
)

// DemandHistoryRepository provides historical demand observations for an
// item from an upstream data source.
type DemandHistoryRepository interface {
	// FetchDemandHistory returns the ordered sequence of historical demand
	// records for an item. Implementations report transport and status
	// failures as *entities.UpstreamError and a successful-but-empty payload
	// as entities.ErrNoUpstreamData.
	FetchDemandHistory(ctx context.Context, itemID entities.ItemID) ([]entities.DemandRecord, error)
}
