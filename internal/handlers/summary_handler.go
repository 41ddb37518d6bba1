package handlers

import (
	"net/http"
	"time"

	"pocket-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// SummaryHandler handles the dashboard summary endpoint
type SummaryHandler struct {
	summaryService services.SummaryServiceInterface
	metrics        services.MetricsRecorderInterface
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(
	summaryService services.SummaryServiceInterface,
	metrics services.MetricsRecorderInterface,
) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		metrics:        metrics,
	}
}

// GetSummary builds the dashboard snapshot
// @Summary Ledger summary
// @Description Overall totals, recent transactions and every budget's alert state
// @Tags Summary
// @Produce json
// @Success 200 {object} dto.SummaryResponse "Dashboard snapshot"
// @Router /summary [get]
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	start := time.Now()

	summary := h.summaryService.GetSummary()

	h.metrics.IncrementCounter("summary_request", nil)
	h.metrics.RecordProcessingTime("summary_build", time.Since(start))

	return c.JSON(http.StatusOK, summary)
}
