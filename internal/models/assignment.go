package models

import "time"

// Return conditions accepted on an assignment. Damaged and Needs Repair both
// downgrade the asset's condition to Damaged; Good restores it to Good.
const (
	ReturnConditionGood        = "Good"
	ReturnConditionDamaged     = "Damaged"
	ReturnConditionNeedsRepair = "Needs Repair"
)

// Assignment links an employee to an asset. ReturnDate nil means the
// assignment is active: the employee still holds the asset.
// EmployeeName and AssetName are snapshots taken at write time so historical
// records survive later renames.
type Assignment struct {
	ID                   uint64  `gorm:"primarykey" json:"-"`
	AssignmentID         string  `gorm:"type:varchar(20);uniqueIndex;not null" json:"assignment_id"`
	EmployeeID           string  `gorm:"type:varchar(20);index;not null" json:"employee_id"`
	EmployeeName         string  `gorm:"type:varchar(255);not null" json:"employee_name"`
	AssetID              string  `gorm:"type:varchar(20);index;not null" json:"asset_id"`
	AssetName            string  `gorm:"type:varchar(255);not null" json:"asset_name"`
	AssignedDate         string  `gorm:"type:varchar(10);not null" json:"assigned_date"`
	ReturnDate           *string `gorm:"type:varchar(10)" json:"return_date"`
	AssetReturnCondition *string `gorm:"type:varchar(30)" json:"asset_return_condition"`
	Remarks              string  `gorm:"type:text" json:"remarks"`

	// SIM sub-fields, populated when the linked asset is a mobile connection
	SimProvider     string `gorm:"type:varchar(50)" json:"sim_provider"`
	SimMobileNumber string `gorm:"type:varchar(20)" json:"sim_mobile_number"`
	SimType         string `gorm:"type:varchar(20)" json:"sim_type"`
	SimOwnership    string `gorm:"type:varchar(20)" json:"sim_ownership"`
	SimPurpose      string `gorm:"type:text" json:"sim_purpose"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Active reports whether the asset is still with the employee.
func (a *Assignment) Active() bool {
	return a.ReturnDate == nil
}
