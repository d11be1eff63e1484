package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "balanco/internal/errors"
	"balanco/internal/history"
	"balanco/internal/metrics"
	"balanco/internal/models"
)

// DashboardHandler serves the aggregated metrics snapshot and the wealth
// evolution history.
type DashboardHandler struct {
	engine         *metrics.Engine
	historyService history.Servicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(engine *metrics.Engine, historyService history.Servicer) *DashboardHandler {
	return &DashboardHandler{engine: engine, historyService: historyService}
}

// GetMetrics returns the engine's current snapshot.
// @Summary     Get dashboard metrics
// @Description Current aggregated metrics: monthly cash flow, asset totals, net worth
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} metrics.Metrics "Metrics snapshot"
// @Router      /dashboard/metrics [get]
func (h *DashboardHandler) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Current())
}

// GetHistory returns wealth snapshots in a date range, defaulting to the
// trailing year.
// @Summary     Get wealth history
// @Tags        dashboard
// @Produce     json
// @Param       from query string false "Start date (YYYY-MM-DD)"
// @Param       to   query string false "End date (YYYY-MM-DD)"
// @Success     200 {array} history.WealthSnapshot "Snapshots"
// @Failure     400 {object} ErrorResponse "Invalid date"
// @Router      /dashboard/history [get]
func (h *DashboardHandler) GetHistory(c *gin.Context) {
	to := time.Now()
	from := to.AddDate(-1, 0, 0)

	var err error
	if v := c.Query("from"); v != "" {
		from, err = time.Parse(models.DateLayout, v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "from must be YYYY-MM-DD"))
			return
		}
	}
	if v := c.Query("to"); v != "" {
		to, err = time.Parse(models.DateLayout, v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "to must be YYYY-MM-DD"))
			return
		}
	}

	snapshots, err := h.historyService.History(from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"snapshots": snapshots})
}

// RecordSnapshot captures the current snapshot on demand, outside the
// daily schedule.
// @Summary     Record a wealth snapshot now
// @Tags        dashboard
// @Produce     json
// @Success     201 {object} history.WealthSnapshot "Snapshot recorded"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/history [post]
func (h *DashboardHandler) RecordSnapshot(c *gin.Context) {
	snapshot, err := h.historyService.Record(h.engine.Current(), time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"snapshot": snapshot})
}
