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

// AssetHandler handles asset inventory endpoints
type AssetHandler struct {
	service       *services.AssetService
	importService *services.ImportService
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(service *services.AssetService, importService *services.ImportService) *AssetHandler {
	return &AssetHandler{service: service, importService: importService}
}

// List handles GET /api/assets
func (h *AssetHandler) List(c *gin.Context) {
	assets, err := h.service.List()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, assets)
}

// Get handles GET /api/assets/:asset_id
func (h *AssetHandler) Get(c *gin.Context) {
	asset, err := h.service.Get(c.Param("asset_id"))
	if err != nil {
		if errors.Is(err, services.ErrAssetNotFound) {
			apperrors.NotFound(c, "Asset not found")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, asset)
}

// Create handles POST /api/assets
func (h *AssetHandler) Create(c *gin.Context) {
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Asset name, category, brand, condition, and status are required")
		return
	}

	asset, err := h.service.Create(services.CreateAssetInput{
		AssetName:    req.AssetName,
		Category:     req.Category,
		Brand:        req.Brand,
		SerialNumber: req.SerialNumber,
		IMEI2:        req.IMEI2,
		Condition:    req.Condition,
		Status:       req.Status,
		Remarks:      req.Remarks,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, asset)
}

// Update handles PUT /api/assets/:asset_id
func (h *AssetHandler) Update(c *gin.Context) {
	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid request body")
		return
	}

	asset, err := h.service.Update(c.Param("asset_id"), services.UpdateAssetInput{
		AssetName:    req.AssetName,
		Category:     req.Category,
		Brand:        req.Brand,
		SerialNumber: req.SerialNumber,
		IMEI2:        req.IMEI2,
		Condition:    req.Condition,
		Status:       req.Status,
		Remarks:      req.Remarks,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

// Delete handles DELETE /api/assets/:asset_id
func (h *AssetHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("asset_id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Asset deleted"})
}

// Export handles GET /api/assets/export
func (h *AssetHandler) Export(c *gin.Context) {
	assets, err := h.service.List()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	f, err := excel.AssetsExport(assets)
	if err != nil {
		apperrors.InternalError(c, "Failed to generate workbook")
		return
	}
	writeWorkbook(c, f, "assets.xlsx")
}

// Template handles GET /api/assets/template
func (h *AssetHandler) Template(c *gin.Context) {
	f, err := excel.AssetTemplate()
	if err != nil {
		apperrors.InternalError(c, "Failed to generate workbook")
		return
	}
	writeWorkbook(c, f, "assets_template.xlsx")
}

// Import handles POST /api/assets/import
func (h *AssetHandler) Import(c *gin.Context) {
	rows, ok := parseImportRows(c)
	if !ok {
		return
	}

	result, err := h.importService.ImportAssets(rows)
	if err != nil {
		if errors.Is(err, services.ErrNoImportRows) {
			apperrors.BadRequest(c, "The uploaded file contains no data rows")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	respondImport(c, "assets", result)
}

func (h *AssetHandler) respondError(c *gin.Context, err error) {
	var conflict *services.AssetConflictError
	switch {
	case errors.Is(err, services.ErrAssetNotFound):
		apperrors.NotFound(c, "Asset not found")
	case errors.As(err, &conflict):
		apperrors.ConflictWithDetails(c, conflict.Error(), gin.H{"existing_assignment": conflict.Existing})
	case errors.Is(err, services.ErrDuplicateSerialNumber),
		errors.Is(err, services.ErrDuplicateIMEI2):
		apperrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrAssetFieldsRequired),
		errors.Is(err, services.ErrSerialNumberRequired),
		errors.Is(err, services.ErrMobileIdentifier),
		errors.Is(err, services.ErrInvalidAssetStatus),
		errors.Is(err, services.ErrInvalidAssetCondition),
		errors.Is(err, services.ErrAssetActivelyAssigned):
		apperrors.BadRequest(c, err.Error())
	default:
		apperrors.InternalError(c, "")
	}
}
