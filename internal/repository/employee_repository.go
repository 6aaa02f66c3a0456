package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/models"
)

// GormEmployeeRepository is a GORM implementation of EmployeeRepository
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

func (r *GormEmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

func (r *GormEmployeeRepository) FindByEmployeeID(employeeID string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.Where("employee_id = ?", employeeID).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *GormEmployeeRepository) List() ([]models.Employee, error) {
	var employees []models.Employee
	if err := r.db.Order("id DESC").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *GormEmployeeRepository) Update(employee *models.Employee) error {
	return r.db.Save(employee).Error
}

func (r *GormEmployeeRepository) Delete(employeeID string) (int64, error) {
	result := r.db.Where("employee_id = ?", employeeID).Delete(&models.Employee{})
	return result.RowsAffected, result.Error
}

func (r *GormEmployeeRepository) EmailExists(email string, excludeID uint64) (bool, error) {
	var count int64
	query := r.db.Model(&models.Employee{}).Where("lower(email) = lower(?)", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Resolve matches import rows to employees. When both a reference (ID or
// name) and an email are supplied, the combined match wins; otherwise any
// single case-insensitive hit on ID, name, or email is accepted.
func (r *GormEmployeeRepository) Resolve(ref, email string) (*models.Employee, error) {
	ref = strings.TrimSpace(ref)
	email = strings.TrimSpace(email)
	if ref == "" && email == "" {
		return nil, gorm.ErrRecordNotFound
	}

	var employee models.Employee

	if ref != "" && email != "" {
		err := r.db.
			Where("(lower(employee_id) = lower(?) OR lower(full_name) = lower(?)) AND lower(email) = lower(?)",
				ref, ref, email).
			First(&employee).Error
		if err == nil {
			return &employee, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	query := r.db
	switch {
	case ref != "" && email != "":
		query = query.Where(
			"lower(employee_id) = lower(?) OR lower(full_name) = lower(?) OR lower(email) = lower(?)",
			ref, ref, email)
	case ref != "":
		query = query.Where(
			"lower(employee_id) = lower(?) OR lower(full_name) = lower(?) OR lower(email) = lower(?)",
			ref, ref, ref)
	default:
		query = query.Where("lower(email) = lower(?)", email)
	}

	if err := query.First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}
