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

// EmployeeHandler handles employee directory endpoints
type EmployeeHandler struct {
	service       *services.EmployeeService
	importService *services.ImportService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(service *services.EmployeeService, importService *services.ImportService) *EmployeeHandler {
	return &EmployeeHandler{service: service, importService: importService}
}

// List handles GET /api/employees
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.service.List()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, employees)
}

// Get handles GET /api/employees/:employee_id
func (h *EmployeeHandler) Get(c *gin.Context) {
	employee, err := h.service.Get(c.Param("employee_id"))
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			apperrors.NotFound(c, "Employee not found")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// Me handles GET /api/employees/me for the Employee role: it returns the
// record linked to the caller's account.
func (h *EmployeeHandler) Me(c *gin.Context) {
	employeeID, ok := middleware.GetEmployeeID(c)
	if !ok || employeeID == "" {
		apperrors.NotFound(c, "No employee record is linked to this account")
		return
	}

	employee, err := h.service.Get(employeeID)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			apperrors.NotFound(c, "Employee not found")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// Create handles POST /api/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Full name, email, and date of joining are required")
		return
	}

	employee, err := h.service.Create(services.CreateEmployeeInput{
		FullName:      req.FullName,
		Department:    req.Department,
		Designation:   req.Designation,
		Email:         req.Email,
		DateOfJoining: req.DateOfJoining,
		Status:        req.Status,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// Update handles PUT /api/employees/:employee_id
func (h *EmployeeHandler) Update(c *gin.Context) {
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.service.Update(c.Param("employee_id"), services.UpdateEmployeeInput{
		FullName:      req.FullName,
		Department:    req.Department,
		Designation:   req.Designation,
		Email:         req.Email,
		DateOfJoining: req.DateOfJoining,
		Status:        req.Status,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// Delete handles DELETE /api/employees/:employee_id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("employee_id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Employee deleted"})
}

// Export handles GET /api/employees/export
func (h *EmployeeHandler) Export(c *gin.Context) {
	employees, err := h.service.List()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	f, err := excel.EmployeesExport(employees)
	if err != nil {
		apperrors.InternalError(c, "Failed to generate workbook")
		return
	}
	writeWorkbook(c, f, "employees.xlsx")
}

// Template handles GET /api/employees/template
func (h *EmployeeHandler) Template(c *gin.Context) {
	f, err := excel.EmployeeTemplate()
	if err != nil {
		apperrors.InternalError(c, "Failed to generate workbook")
		return
	}
	writeWorkbook(c, f, "employees_template.xlsx")
}

// Import handles POST /api/employees/import
func (h *EmployeeHandler) Import(c *gin.Context) {
	rows, ok := parseImportRows(c)
	if !ok {
		return
	}

	result, err := h.importService.ImportEmployees(rows)
	if err != nil {
		if errors.Is(err, services.ErrNoImportRows) {
			apperrors.BadRequest(c, "The uploaded file contains no data rows")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	respondImport(c, "employees", result)
}

func (h *EmployeeHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmployeeNotFound):
		apperrors.NotFound(c, "Employee not found")
	case errors.Is(err, services.ErrDuplicateEmail):
		apperrors.Conflict(c, "An employee with this email already exists")
	case errors.Is(err, services.ErrEmployeeFieldsRequired),
		errors.Is(err, services.ErrInvalidEmail),
		errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrInvalidEmployeeStatus):
		apperrors.BadRequest(c, err.Error())
	default:
		apperrors.InternalError(c, "")
	}
}
