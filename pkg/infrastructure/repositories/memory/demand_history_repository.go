package memory

import (
	"context"
	"sync"

	"github.com/vsinha/stockplan/pkg/domain/entities"
	"github.com/vsinha/stockplan/pkg/domain/repositories"
)

// DemandHistoryRepository provides in-memory demand history storage. It backs
// the offline CLI and tests that exercise the planning flow without the
// upstream API.
type DemandHistoryRepository struct {
	mu      sync.RWMutex
	records map[entities.ItemID][]entities.DemandRecord
}

// NewDemandHistoryRepository creates a new in-memory demand history repository
func NewDemandHistoryRepository() *DemandHistoryRepository {
	return &DemandHistoryRepository{
		records: make(map[entities.ItemID][]entities.DemandRecord),
	}
}

// Verify interface compliance
var _ repositories.DemandHistoryRepository = (*DemandHistoryRepository)(nil)

// LoadRecords stores demand history for an item, replacing any existing history
func (r *DemandHistoryRepository) LoadRecords(itemID entities.ItemID, records []entities.DemandRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make([]entities.DemandRecord, len(records))
	copy(stored, records)
	r.records[itemID] = stored
}

// FetchDemandHistory returns the stored demand history for an item. An item
// with no stored history reports entities.ErrNoUpstreamData, matching the
// HTTP implementation's empty-payload behavior.
func (r *DemandHistoryRepository) FetchDemandHistory(
	ctx context.Context,
	itemID entities.ItemID,
) ([]entities.DemandRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.records[itemID]
	if !ok || len(stored) == 0 {
		return nil, entities.ErrNoUpstreamData
	}

	records := make([]entities.DemandRecord, len(stored))
	copy(records, stored)
	return records, nil
}
