package repository

import (
	"gorm.io/gorm"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/models"
)

// GormSimConnectionRepository is a GORM implementation of SimConnectionRepository
type GormSimConnectionRepository struct {
	db *gorm.DB
}

// NewSimConnectionRepository creates a new SimConnectionRepository
func NewSimConnectionRepository(db *gorm.DB) SimConnectionRepository {
	return &GormSimConnectionRepository{db: db}
}

func (r *GormSimConnectionRepository) Create(sim *models.SimConnection) error {
	return r.db.Create(sim).Error
}

func (r *GormSimConnectionRepository) FindByNumber(simMobileNumber string) (*models.SimConnection, error) {
	var sim models.SimConnection
	if err := r.db.Where("sim_mobile_number = ?", simMobileNumber).First(&sim).Error; err != nil {
		return nil, err
	}
	return &sim, nil
}

func (r *GormSimConnectionRepository) List() ([]models.SimConnection, error) {
	var sims []models.SimConnection
	if err := r.db.Order("id DESC").Find(&sims).Error; err != nil {
		return nil, err
	}
	return sims, nil
}

func (r *GormSimConnectionRepository) Update(sim *models.SimConnection) error {
	return r.db.Save(sim).Error
}

func (r *GormSimConnectionRepository) Delete(simMobileNumber string) (int64, error) {
	result := r.db.Where("sim_mobile_number = ?", simMobileNumber).Delete(&models.SimConnection{})
	return result.RowsAffected, result.Error
}
