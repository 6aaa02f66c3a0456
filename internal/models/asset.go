package models

import "time"

type AssetStatus string

const (
	AssetStatusAvailable   AssetStatus = "Available"
	AssetStatusAssigned    AssetStatus = "Assigned"
	AssetStatusUnderRepair AssetStatus = "Under Repair/Maintenance"
	AssetStatusRetired     AssetStatus = "Retired"
)

type AssetCondition string

const (
	AssetConditionNew     AssetCondition = "New"
	AssetConditionGood    AssetCondition = "Good"
	AssetConditionDamaged AssetCondition = "Damaged"
	AssetConditionFair    AssetCondition = "Fair"
	AssetConditionPoor    AssetCondition = "Poor"
)

// CategoryMobile assets identify by IMEI: serial_number doubles as IMEI-1
// and imei_2 holds the second slot.
const CategoryMobile = "Mobile"

const CategoryLaptop = "Laptop"

type Asset struct {
	ID           uint64         `gorm:"primarykey" json:"-"`
	AssetID      string         `gorm:"type:varchar(20);uniqueIndex;not null" json:"asset_id"`
	AssetName    string         `gorm:"type:varchar(255);not null" json:"asset_name"`
	Category     string         `gorm:"type:varchar(100);not null" json:"category"`
	Brand        string         `gorm:"type:varchar(100);not null" json:"brand"`
	SerialNumber *string        `gorm:"type:varchar(100);uniqueIndex" json:"serial_number"`
	IMEI2        *string        `gorm:"column:imei_2;type:varchar(100);uniqueIndex" json:"imei_2"`
	Condition    AssetCondition `gorm:"type:varchar(20);not null;default:'New'" json:"condition"`
	Status       AssetStatus    `gorm:"type:varchar(30);not null;default:'Available'" json:"status"`
	Remarks      string         `gorm:"type:text" json:"remarks"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// ValidAssetStatus reports whether s is one of the recognized statuses.
func ValidAssetStatus(s string) bool {
	switch AssetStatus(s) {
	case AssetStatusAvailable, AssetStatusAssigned, AssetStatusUnderRepair, AssetStatusRetired:
		return true
	}
	return false
}

// ValidAssetCondition reports whether c is one of the recognized conditions.
func ValidAssetCondition(c string) bool {
	switch AssetCondition(c) {
	case AssetConditionNew, AssetConditionGood, AssetConditionDamaged, AssetConditionFair, AssetConditionPoor:
		return true
	}
	return false
}
