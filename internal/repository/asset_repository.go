package repository

import (
	"gorm.io/gorm"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/models"
)

// GormAssetRepository is a GORM implementation of AssetRepository
type GormAssetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new AssetRepository
func NewAssetRepository(db *gorm.DB) AssetRepository {
	return &GormAssetRepository{db: db}
}

func (r *GormAssetRepository) Create(asset *models.Asset) error {
	return r.db.Create(asset).Error
}

func (r *GormAssetRepository) FindByAssetID(assetID string) (*models.Asset, error) {
	var asset models.Asset
	if err := r.db.Where("asset_id = ?", assetID).First(&asset).Error; err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *GormAssetRepository) List() ([]models.Asset, error) {
	var assets []models.Asset
	if err := r.db.Order("id DESC").Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *GormAssetRepository) Update(asset *models.Asset) error {
	return r.db.Save(asset).Error
}

func (r *GormAssetRepository) Delete(assetID string) (int64, error) {
	result := r.db.Where("asset_id = ?", assetID).Delete(&models.Asset{})
	return result.RowsAffected, result.Error
}

func (r *GormAssetRepository) SerialNumberExists(serial string, excludeID uint64) (bool, error) {
	var count int64
	query := r.db.Model(&models.Asset{}).Where("serial_number = ?", serial)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormAssetRepository) IMEI2Exists(imei string, excludeID uint64) (bool, error) {
	var count int64
	query := r.db.Model(&models.Asset{}).Where("imei_2 = ?", imei)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
