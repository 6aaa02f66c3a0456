package dto

// CreateAssignmentRequest represents the payload for creating an assignment
type CreateAssignmentRequest struct {
	EmployeeID           string  `json:"employee_id" binding:"required"`
	AssetID              string  `json:"asset_id" binding:"required"`
	AssignedDate         string  `json:"assigned_date" binding:"required"`
	ReturnDate           *string `json:"return_date"`
	AssetReturnCondition *string `json:"asset_return_condition"`
	Remarks              string  `json:"remarks"`
	SimProvider          string  `json:"sim_provider"`
	SimMobileNumber      string  `json:"sim_mobile_number"`
	SimType              string  `json:"sim_type"`
	SimOwnership         string  `json:"sim_ownership"`
	SimPurpose           string  `json:"sim_purpose"`
}

// UpdateAssignmentRequest represents a partial assignment update.
// clear_return_date re-opens a returned assignment by nulling its return
// date; return_date and clear_return_date are mutually exclusive.
type UpdateAssignmentRequest struct {
	EmployeeID           *string `json:"employee_id"`
	AssetID              *string `json:"asset_id"`
	AssignedDate         *string `json:"assigned_date"`
	ReturnDate           *string `json:"return_date"`
	ClearReturnDate      bool    `json:"clear_return_date"`
	AssetReturnCondition *string `json:"asset_return_condition"`
	Remarks              *string `json:"remarks"`
	SimProvider          *string `json:"sim_provider"`
	SimMobileNumber      *string `json:"sim_mobile_number"`
	SimType              *string `json:"sim_type"`
	SimOwnership         *string `json:"sim_ownership"`
	SimPurpose           *string `json:"sim_purpose"`
}
