package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jcpao-csu/staff-directory-api/internal/middleware"
	"github.com/jcpao-csu/staff-directory-api/internal/models"
	appErrors "github.com/jcpao-csu/staff-directory-api/pkg/errors"
	"github.com/jcpao-csu/staff-directory-api/pkg/response"
)

type dashboardService interface {
	Dashboard(ctx context.Context) (models.Dashboard, error)
	Breakdown(ctx context.Context, field models.AggregationField) (models.AggregationResult, error)
}

// DashboardHandler wires dashboard service to HTTP endpoints.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Dashboard godoc
// @Summary Staff analytics dashboard
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard [get]
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	dashboard, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetMeta(c, "processing_time_ms", time.Since(start).Milliseconds())
	response.JSON(c, http.StatusOK, dashboard, nil, middleware.ExtractMeta(c))
}

// Breakdown godoc
// @Summary One staff breakdown
// @Tags Dashboard
// @Produce json
// @Param field path string true "position, unit, office, race_total, race_unique or sex"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /dashboard/breakdowns/{field} [get]
func (h *DashboardHandler) Breakdown(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	field, ok := models.ParseAggregationField(c.Param("field"))
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown breakdown field"))
		return
	}
	result, err := h.service.Breakdown(c.Request.Context(), field)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
