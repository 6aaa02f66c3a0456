package database

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/models"
)

// NextID reserves the next value of the named sequence and formats it as a
// human-readable identifier (EMP0001, AST0001, ASG0001). It must be called
// inside the same transaction as the insert that consumes the ID: the
// UPDATE takes a row lock on the sequence row, so two concurrent creates
// cannot reserve the same value.
func NextID(tx *gorm.DB, name, prefix string) (string, error) {
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.IDSequence{Name: name}).Error; err != nil {
		return "", fmt.Errorf("failed to ensure sequence %s: %w", name, err)
	}

	if err := tx.Model(&models.IDSequence{}).
		Where("name = ?", name).
		UpdateColumn("value", gorm.Expr("value + 1")).Error; err != nil {
		return "", fmt.Errorf("failed to increment sequence %s: %w", name, err)
	}

	var seq models.IDSequence
	if err := tx.Where("name = ?", name).First(&seq).Error; err != nil {
		return "", fmt.Errorf("failed to read sequence %s: %w", name, err)
	}

	return fmt.Sprintf("%s%04d", prefix, seq.Value), nil
}
