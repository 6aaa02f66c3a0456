package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/constants"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/database"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/models"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/repository"
)

var (
	ErrAssetFieldsRequired    = errors.New("asset name, category, brand, condition, and status are required")
	ErrSerialNumberRequired   = errors.New("serial number is required for this category")
	ErrMobileIdentifier       = errors.New("serial number / IMEI 1 or IMEI 2 is required for mobile assets")
	ErrDuplicateSerialNumber  = errors.New("an asset with this serial number already exists")
	ErrDuplicateIMEI2         = errors.New("an asset with this IMEI 2 already exists")
	ErrInvalidAssetStatus     = errors.New("invalid asset status")
	ErrInvalidAssetCondition  = errors.New("invalid asset condition")
	ErrAssetActivelyAssigned  = errors.New("asset has an active assignment; return it before deleting")
)

// AssetService handles asset inventory CRUD and the identifier rules that
// vary by category.
type AssetService struct {
	db *gorm.DB
}

// NewAssetService creates a new AssetService
func NewAssetService(db *gorm.DB) *AssetService {
	return &AssetService{db: db}
}

// CreateAssetInput represents input for creating an asset
type CreateAssetInput struct {
	AssetName    string
	Category     string
	Brand        string
	SerialNumber *string
	IMEI2        *string
	Condition    string
	Status       string
	Remarks      string
}

// UpdateAssetInput represents a partial asset update
type UpdateAssetInput struct {
	AssetName    *string
	Category     *string
	Brand        *string
	SerialNumber *string
	IMEI2        *string
	Condition    *string
	Status       *string
	Remarks      *string
}

// List returns all assets, newest first
func (s *AssetService) List() ([]models.Asset, error) {
	return repository.NewStore(s.db).Assets.List()
}

// Get returns a single asset
func (s *AssetService) Get(assetID string) (*models.Asset, error) {
	asset, err := repository.NewStore(s.db).Assets.FindByAssetID(assetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}
	return asset, nil
}

// Create validates category-specific identifier rules, checks global
// uniqueness of serial number and IMEI 2, allocates an AST#### identifier,
// and inserts the asset.
func (s *AssetService) Create(input CreateAssetInput) (*models.Asset, error) {
	if input.AssetName == "" || input.Category == "" || input.Brand == "" || input.Condition == "" || input.Status == "" {
		return nil, ErrAssetFieldsRequired
	}
	if !models.ValidAssetStatus(input.Status) {
		return nil, ErrInvalidAssetStatus
	}
	if !models.ValidAssetCondition(input.Condition) {
		return nil, ErrInvalidAssetCondition
	}
	serial := normalizeIdentifier(input.SerialNumber)
	imei2 := normalizeIdentifier(input.IMEI2)
	if err := validateIdentifiers(input.Category, serial, imei2); err != nil {
		return nil, err
	}

	var created *models.Asset
	err := s.db.Transaction(func(tx *gorm.DB) error {
		store := repository.NewStore(tx)

		if err := s.checkIdentifierUniqueness(store, serial, imei2, 0); err != nil {
			return err
		}

		assetID, err := database.NextID(tx, constants.SeqAssets, constants.AssetIDPrefix)
		if err != nil {
			return err
		}

		asset := &models.Asset{
			AssetID:      assetID,
			AssetName:    input.AssetName,
			Category:     input.Category,
			Brand:        input.Brand,
			SerialNumber: serial,
			IMEI2:        imei2,
			Condition:    models.AssetCondition(input.Condition),
			Status:       models.AssetStatus(input.Status),
			Remarks:      input.Remarks,
		}
		if err := store.Assets.Create(asset); err != nil {
			return fmt.Errorf("failed to create asset: %w", err)
		}
		created = asset
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies a partial update. Status and condition edits are rejected
// while the asset has an active assignment, since the assignment lifecycle
// owns those fields.
func (s *AssetService) Update(assetID string, input UpdateAssetInput) (*models.Asset, error) {
	if input.Status != nil && !models.ValidAssetStatus(*input.Status) {
		return nil, ErrInvalidAssetStatus
	}
	if input.Condition != nil && !models.ValidAssetCondition(*input.Condition) {
		return nil, ErrInvalidAssetCondition
	}

	var updated *models.Asset
	err := s.db.Transaction(func(tx *gorm.DB) error {
		store := repository.NewStore(tx)

		asset, err := store.Assets.FindByAssetID(assetID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssetNotFound
			}
			return fmt.Errorf("failed to find asset: %w", err)
		}

		if input.Status != nil || input.Condition != nil {
			active, err := store.Assignments.FindActiveByAssetID(assetID, "")
			if err != nil {
				return fmt.Errorf("failed to check active assignments: %w", err)
			}
			if len(active) > 0 {
				statusChanged := input.Status != nil && models.AssetStatus(*input.Status) != asset.Status
				conditionChanged := input.Condition != nil && models.AssetCondition(*input.Condition) != asset.Condition
				// The assignment lifecycle owns these fields while a
				// holder exists; the caller must return the asset first.
				if statusChanged || conditionChanged {
					return &AssetConflictError{Existing: &active[0]}
				}
			}
		}

		if input.AssetName != nil {
			asset.AssetName = *input.AssetName
		}
		if input.Category != nil {
			asset.Category = *input.Category
		}
		if input.Brand != nil {
			asset.Brand = *input.Brand
		}
		if input.SerialNumber != nil {
			asset.SerialNumber = normalizeIdentifier(input.SerialNumber)
		}
		if input.IMEI2 != nil {
			asset.IMEI2 = normalizeIdentifier(input.IMEI2)
		}
		if input.Condition != nil {
			asset.Condition = models.AssetCondition(*input.Condition)
		}
		if input.Status != nil {
			asset.Status = models.AssetStatus(*input.Status)
		}
		if input.Remarks != nil {
			asset.Remarks = *input.Remarks
		}

		if err := validateIdentifiers(asset.Category, asset.SerialNumber, asset.IMEI2); err != nil {
			return err
		}
		if err := s.checkIdentifierUniqueness(store, asset.SerialNumber, asset.IMEI2, asset.ID); err != nil {
			return err
		}

		if err := store.Assets.Update(asset); err != nil {
			return fmt.Errorf("failed to update asset: %w", err)
		}
		updated = asset
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes an asset. Deletion is refused while an active assignment
// references it.
func (s *AssetService) Delete(assetID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		store := repository.NewStore(tx)

		active, err := store.Assignments.FindActiveByAssetID(assetID, "")
		if err != nil {
			return fmt.Errorf("failed to check active assignments: %w", err)
		}
		if len(active) > 0 {
			return ErrAssetActivelyAssigned
		}

		affected, err := store.Assets.Delete(assetID)
		if err != nil {
			return fmt.Errorf("failed to delete asset: %w", err)
		}
		if affected == 0 {
			return ErrAssetNotFound
		}
		return nil
	})
}

func (s *AssetService) checkIdentifierUniqueness(store *repository.Store, serial, imei2 *string, excludeID uint64) error {
	if serial != nil {
		exists, err := store.Assets.SerialNumberExists(*serial, excludeID)
		if err != nil {
			return fmt.Errorf("failed to check serial number: %w", err)
		}
		if exists {
			return ErrDuplicateSerialNumber
		}
	}
	if imei2 != nil {
		exists, err := store.Assets.IMEI2Exists(*imei2, excludeID)
		if err != nil {
			return fmt.Errorf("failed to check IMEI 2: %w", err)
		}
		if exists {
			return ErrDuplicateIMEI2
		}
	}
	return nil
}

// validateIdentifiers enforces the per-category identifier rules: laptops
// need a serial number, mobiles need either identifier, everything else
// needs a serial number.
func validateIdentifiers(category string, serial, imei2 *string) error {
	switch category {
	case models.CategoryMobile:
		if serial == nil && imei2 == nil {
			return ErrMobileIdentifier
		}
	case models.CategoryLaptop:
		if serial == nil {
			return ErrSerialNumberRequired
		}
	default:
		if serial == nil {
			return ErrSerialNumberRequired
		}
	}
	return nil
}

// normalizeIdentifier maps empty strings to NULL so blank identifiers never
// collide on the unique indexes.
func normalizeIdentifier(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	return value
}
