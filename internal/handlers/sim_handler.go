package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/dto"
	apperrors "github.com/Rakshita16-hub/Cronberry-Asset-management/internal/errors"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/excel"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/services"
)

// SimHandler handles SIM connection registry endpoints
type SimHandler struct {
	service       *services.SimService
	importService *services.ImportService
}

// NewSimHandler creates a new SimHandler
func NewSimHandler(service *services.SimService, importService *services.ImportService) *SimHandler {
	return &SimHandler{service: service, importService: importService}
}

// List handles GET /api/sim-connections
func (h *SimHandler) List(c *gin.Context) {
	sims, err := h.service.List()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, sims)
}

// Get handles GET /api/sim-connections/:sim_mobile_number
func (h *SimHandler) Get(c *gin.Context) {
	sim, err := h.service.Get(c.Param("sim_mobile_number"))
	if err != nil {
		if errors.Is(err, services.ErrSimNotFound) {
			apperrors.NotFound(c, "SIM connection not found")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, sim)
}

// Create handles POST /api/sim-connections
func (h *SimHandler) Create(c *gin.Context) {
	var req dto.CreateSimConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "SIM mobile number is required")
		return
	}

	sim, err := h.service.Create(services.CreateSimInput{
		SimMobileNumber:  req.SimMobileNumber,
		CurrentOwnerName: req.CurrentOwnerName,
		ConnectionStatus: req.ConnectionStatus,
		SimStatus:        req.SimStatus,
		Remarks:          req.Remarks,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sim)
}

// Update handles PUT /api/sim-connections/:sim_mobile_number
func (h *SimHandler) Update(c *gin.Context) {
	var req dto.UpdateSimConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid request body")
		return
	}

	sim, err := h.service.Update(c.Param("sim_mobile_number"), services.UpdateSimInput{
		CurrentOwnerName: req.CurrentOwnerName,
		ConnectionStatus: req.ConnectionStatus,
		SimStatus:        req.SimStatus,
		Remarks:          req.Remarks,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sim)
}

// Delete handles DELETE /api/sim-connections/:sim_mobile_number
func (h *SimHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("sim_mobile_number")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "SIM connection deleted"})
}

// Export handles GET /api/sim-connections/export
func (h *SimHandler) Export(c *gin.Context) {
	sims, err := h.service.List()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	f, err := excel.SimsExport(sims)
	if err != nil {
		apperrors.InternalError(c, "Failed to generate workbook")
		return
	}
	writeWorkbook(c, f, "sim_connections.xlsx")
}

// Template handles GET /api/sim-connections/template
func (h *SimHandler) Template(c *gin.Context) {
	f, err := excel.SimTemplate()
	if err != nil {
		apperrors.InternalError(c, "Failed to generate workbook")
		return
	}
	writeWorkbook(c, f, "sim_connections_template.xlsx")
}

// Import handles POST /api/sim-connections/import
func (h *SimHandler) Import(c *gin.Context) {
	rows, ok := parseImportRows(c)
	if !ok {
		return
	}

	result, err := h.importService.ImportSims(rows)
	if err != nil {
		if errors.Is(err, services.ErrNoImportRows) {
			apperrors.BadRequest(c, "The uploaded file contains no data rows")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	respondImport(c, "SIM connections", result)
}

func (h *SimHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSimNotFound):
		apperrors.NotFound(c, "SIM connection not found")
	case errors.Is(err, services.ErrDuplicateSimNumber):
		apperrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrSimNumberRequired),
		errors.Is(err, services.ErrInvalidConnectionState),
		errors.Is(err, services.ErrInvalidSimState):
		apperrors.BadRequest(c, err.Error())
	default:
		apperrors.InternalError(c, "")
	}
}
