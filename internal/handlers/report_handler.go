package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Rakshita16-hub/Cronberry-Asset-management/internal/errors"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/services"
)

// ReportHandler handles the dashboard, pending-returns, and search endpoints
type ReportHandler struct {
	service *services.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Dashboard handles GET /api/dashboard/stats. It always answers 200;
// unavailable sections come back as zeros.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Dashboard())
}

// PendingReturns handles GET /api/pending-returns
func (h *ReportHandler) PendingReturns(c *gin.Context) {
	groups, err := h.service.PendingReturns()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, groups)
}

// Search handles GET /api/search?q= across employees, assets, and assignments
func (h *ReportHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		apperrors.BadRequest(c, "Query parameter 'q' is required")
		return
	}

	results, err := h.service.Search(q)
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, results)
}

// SearchEmployees handles GET /api/search/employees?q=, returning matching
// employees with their outstanding assignments.
func (h *ReportHandler) SearchEmployees(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		apperrors.BadRequest(c, "Query parameter 'q' is required")
		return
	}

	details, err := h.service.SearchEmployeesWithAssets(q)
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, details)
}
