package dto

// CreateSimConnectionRequest represents the payload for registering a SIM
type CreateSimConnectionRequest struct {
	SimMobileNumber  string  `json:"sim_mobile_number" binding:"required"`
	CurrentOwnerName string  `json:"current_owner_name"`
	ConnectionStatus string  `json:"connection_status"`
	SimStatus        string  `json:"sim_status"`
	Remarks          *string `json:"remarks"`
}

// UpdateSimConnectionRequest represents a partial SIM connection update
type UpdateSimConnectionRequest struct {
	CurrentOwnerName *string `json:"current_owner_name"`
	ConnectionStatus *string `json:"connection_status"`
	SimStatus        *string `json:"sim_status"`
	Remarks          *string `json:"remarks"`
}
