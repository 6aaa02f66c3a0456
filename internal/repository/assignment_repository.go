package repository

import (
	"gorm.io/gorm"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/models"
)

// GormAssignmentRepository is a GORM implementation of AssignmentRepository
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

func (r *GormAssignmentRepository) Create(assignment *models.Assignment) error {
	return r.db.Create(assignment).Error
}

func (r *GormAssignmentRepository) FindByAssignmentID(assignmentID string) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := r.db.Where("assignment_id = ?", assignmentID).First(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *GormAssignmentRepository) List() ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := r.db.Order("id DESC").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *GormAssignmentRepository) Update(assignment *models.Assignment) error {
	return r.db.Save(assignment).Error
}

func (r *GormAssignmentRepository) Delete(assignmentID string) (int64, error) {
	result := r.db.Where("assignment_id = ?", assignmentID).Delete(&models.Assignment{})
	return result.RowsAffected, result.Error
}

func (r *GormAssignmentRepository) FindActiveByAssetID(assetID string, excludeAssignmentID string) ([]models.Assignment, error) {
	var assignments []models.Assignment
	query := r.db.Where("asset_id = ? AND return_date IS NULL", assetID)
	if excludeAssignmentID != "" {
		query = query.Where("assignment_id <> ?", excludeAssignmentID)
	}
	if err := query.Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *GormAssignmentRepository) ListActiveByEmployeeID(employeeID string) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := r.db.
		Where("employee_id = ? AND return_date IS NULL", employeeID).
		Order("assigned_date DESC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}
