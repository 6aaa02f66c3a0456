package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/dto"
	apperrors "github.com/Rakshita16-hub/Cronberry-Asset-management/internal/errors"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/excel"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/middleware"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/services"
)

// AssignmentHandler handles assignment lifecycle endpoints
type AssignmentHandler struct {
	service *services.AssignmentService
}

// NewAssignmentHandler creates a new AssignmentHandler
func NewAssignmentHandler(service *services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

// List handles GET /api/assignments
func (h *AssignmentHandler) List(c *gin.Context) {
	assignments, err := h.service.List()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// Get handles GET /api/assignments/:assignment_id
func (h *AssignmentHandler) Get(c *gin.Context) {
	assignment, err := h.service.Get(c.Param("assignment_id"))
	if err != nil {
		if errors.Is(err, services.ErrAssignmentNotFound) {
			apperrors.NotFound(c, "Assignment not found")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// Create handles POST /api/assignments
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Employee ID, asset ID, and assigned date are required")
		return
	}

	assignment, err := h.service.Create(services.CreateAssignmentInput{
		EmployeeID:           req.EmployeeID,
		AssetID:              req.AssetID,
		AssignedDate:         req.AssignedDate,
		ReturnDate:           req.ReturnDate,
		AssetReturnCondition: req.AssetReturnCondition,
		Remarks:              req.Remarks,
		SimProvider:          req.SimProvider,
		SimMobileNumber:      req.SimMobileNumber,
		SimType:              req.SimType,
		SimOwnership:         req.SimOwnership,
		SimPurpose:           req.SimPurpose,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// Update handles PUT /api/assignments/:assignment_id
func (h *AssignmentHandler) Update(c *gin.Context) {
	var req dto.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid request body")
		return
	}

	role, _ := middleware.GetRole(c)
	assignment, err := h.service.Update(c.Param("assignment_id"), services.UpdateAssignmentInput{
		ActorRole:            role,
		EmployeeID:           req.EmployeeID,
		AssetID:              req.AssetID,
		AssignedDate:         req.AssignedDate,
		ReturnDate:           req.ReturnDate,
		ClearReturnDate:      req.ClearReturnDate,
		AssetReturnCondition: req.AssetReturnCondition,
		Remarks:              req.Remarks,
		SimProvider:          req.SimProvider,
		SimMobileNumber:      req.SimMobileNumber,
		SimType:              req.SimType,
		SimOwnership:         req.SimOwnership,
		SimPurpose:           req.SimPurpose,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// Delete handles DELETE /api/assignments/:assignment_id
func (h *AssignmentHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("assignment_id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Assignment deleted"})
}

// Export handles GET /api/assignments/export
func (h *AssignmentHandler) Export(c *gin.Context) {
	assignments, err := h.service.List()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	f, err := excel.AssignmentsExport(assignments)
	if err != nil {
		apperrors.InternalError(c, "Failed to generate workbook")
		return
	}
	writeWorkbook(c, f, "assignments.xlsx")
}

// Template handles GET /api/assignments/template
func (h *AssignmentHandler) Template(c *gin.Context) {
	f, err := excel.AssignmentTemplate()
	if err != nil {
		apperrors.InternalError(c, "Failed to generate workbook")
		return
	}
	writeWorkbook(c, f, "assignments_template.xlsx")
}

func (h *AssignmentHandler) respondError(c *gin.Context, err error) {
	var conflict *services.AssetConflictError
	switch {
	case errors.Is(err, services.ErrAssignmentNotFound):
		apperrors.NotFound(c, "Assignment not found")
	case errors.Is(err, services.ErrEmployeeNotFound):
		apperrors.NotFound(c, "Employee not found")
	case errors.Is(err, services.ErrAssetNotFound):
		apperrors.NotFound(c, "Asset not found")
	case errors.As(err, &conflict):
		apperrors.ConflictWithDetails(c, conflict.Error(), gin.H{"existing_assignment": conflict.Existing})
	case errors.Is(err, services.ErrReturnedAssignmentLocked):
		apperrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrAssignedDateRequired),
		errors.Is(err, services.ErrReturnConditionRequired),
		errors.Is(err, services.ErrInvalidDate):
		apperrors.BadRequest(c, err.Error())
	default:
		apperrors.InternalError(c, "")
	}
}
