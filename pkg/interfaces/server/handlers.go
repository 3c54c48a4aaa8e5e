package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vsinha/stockplan/pkg/application/services"
	"github.com/vsinha/stockplan/pkg/domain/entities"
)

// Handler wires the planning operations to HTTP endpoints
type Handler struct {
	planning *services.PlanningService
	logger   *zap.Logger
}

// NewHandler creates a new tool handler
func NewHandler(planning *services.PlanningService, logger *zap.Logger) *Handler {
	return &Handler{planning: planning, logger: logger}
}

type optimizeSafetyStockRequest struct {
	ItemID              string   `json:"item_id" binding:"required"`
	DesiredServiceLevel *float64 `json:"desired_service_level" binding:"required,gte=0,lte=1"`
}

// dailyDemandRecord mirrors the caller's demand record. Fields are not bound
// as required: a record missing its quantity must reach the core so it fails
// with record-level context rather than a generic binding error.
type dailyDemandRecord struct {
	Date     string   `json:"date"`
	Quantity *float64 `json:"quantity"`
}

type simulateLeadTimeRequest struct {
	ItemID     string              `json:"item_id" binding:"required"`
	LeadTimes  []int               `json:"lead_times"`
	DemandData []dailyDemandRecord `json:"demand_data"`
}

// OptimizeSafetyStock handles POST /api/v1/tools/optimize-safety-stock
func (h *Handler) OptimizeSafetyStock(c *gin.Context) {
	var req optimizeSafetyStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	resp, err := h.planning.OptimizeSafetyStock(
		c.Request.Context(),
		entities.ItemID(req.ItemID),
		*req.DesiredServiceLevel,
	)
	if err != nil {
		h.writeError(c, err)
		return
	}

	success(c, resp)
}

// SimulateLeadTime handles POST /api/v1/tools/simulate-lead-time
func (h *Handler) SimulateLeadTime(c *gin.Context) {
	var req simulateLeadTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	demand := make([]entities.DailyDemand, 0, len(req.DemandData))
	for _, record := range req.DemandData {
		demand = append(demand, entities.DailyDemand{
			Date:     parseRecordDate(record.Date),
			Quantity: record.Quantity,
		})
	}

	resp, err := h.planning.SimulateLeadTime(
		c.Request.Context(),
		entities.ItemID(req.ItemID),
		req.LeadTimes,
		demand,
	)
	if err != nil {
		h.writeError(c, err)
		return
	}

	success(c, resp)
}

// writeError maps core error kinds to HTTP statuses: upstream failures are a
// bad gateway, invalid or empty inputs are unprocessable, everything else is
// a server error.
func (h *Handler) writeError(c *gin.Context, err error) {
	var upstream *entities.UpstreamError
	var malformed *entities.MalformedRecordError

	switch {
	case errors.As(err, &upstream), errors.Is(err, entities.ErrNoUpstreamData):
		fail(c, http.StatusBadGateway, err.Error())
	case errors.As(err, &malformed),
		errors.Is(err, entities.ErrEmptyData),
		errors.Is(err, entities.ErrEmptyInput):
		fail(c, http.StatusUnprocessableEntity, err.Error())
	default:
		h.logger.Error("tool invocation failed",
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err))
		fail(c, http.StatusInternalServerError, err.Error())
	}
}

// parseRecordDate parses a caller-supplied date, accepting the date-only and
// RFC 3339 layouts. The date is carried through to the result but does not
// drive the computation, so an unknown layout yields a zero time.
func parseRecordDate(value string) time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
