package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/vsinha/stockplan/pkg/domain/entities"
	"github.com/vsinha/stockplan/pkg/domain/repositories"
)

// Date layouts accepted from the upstream history API.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// DemandHistoryClient fetches historical demand from the upstream ERP
// history endpoint over HTTP.
type DemandHistoryClient struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// Verify interface compliance
var _ repositories.DemandHistoryRepository = (*DemandHistoryClient)(nil)

// NewDemandHistoryClient creates a client for the given history endpoint URL
func NewDemandHistoryClient(url string, timeout time.Duration, logger *zap.Logger) *DemandHistoryClient {
	return &DemandHistoryClient{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// wireRecord is the upstream JSON shape: [{"date": "2024-01-01", "demand": 10}, ...]
type wireRecord struct {
	Date   string   `json:"date"`
	Demand *float64 `json:"demand"`
}

// FetchDemandHistory retrieves the demand history for an item. Transport and
// non-200 failures are reported as *entities.UpstreamError; a successful
// response with zero records fails with entities.ErrNoUpstreamData. Records
// missing the demand field are passed through so the calculator can reject
// them with record-level context.
func (c *DemandHistoryClient) FetchDemandHistory(
	ctx context.Context,
	itemID entities.ItemID,
) ([]entities.DemandRecord, error) {
	c.logger.Info("fetching historical data",
		zap.String("item_id", string(itemID)),
		zap.String("url", c.url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &entities.UpstreamError{ItemID: itemID, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("historical data request failed",
			zap.String("item_id", string(itemID)),
			zap.Error(err))
		return nil, &entities.UpstreamError{ItemID: itemID, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("historical data request returned non-success status",
			zap.String("item_id", string(itemID)),
			zap.Int("status", resp.StatusCode))
		return nil, &entities.UpstreamError{ItemID: itemID, StatusCode: resp.StatusCode}
	}

	var raw []wireRecord
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &entities.UpstreamError{
			ItemID: itemID,
			Err:    fmt.Errorf("failed to decode historical data: %w", err),
		}
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("item %s: %w", itemID, entities.ErrNoUpstreamData)
	}

	records := make([]entities.DemandRecord, 0, len(raw))
	for _, r := range raw {
		records = append(records, entities.DemandRecord{
			Date:   parseDate(r.Date),
			Demand: r.Demand,
		})
	}

	c.logger.Info("received historical data",
		zap.String("item_id", string(itemID)),
		zap.Int("records", len(records)))

	return records, nil
}

// parseDate accepts the upstream date formats; the date is informational for
// the safety stock calculation, so an unknown format yields a zero time
// rather than a failed fetch.
func parseDate(value string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
