package dto

// CreateEmployeeRequest represents the payload for creating an employee
type CreateEmployeeRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	Department    string `json:"department"`
	Designation   string `json:"designation"`
	Email         string `json:"email" binding:"required"`
	DateOfJoining string `json:"date_of_joining" binding:"required"`
	Status        string `json:"status"`
}

// UpdateEmployeeRequest represents a partial employee update; absent fields
// are left untouched.
type UpdateEmployeeRequest struct {
	FullName      *string `json:"full_name"`
	Department    *string `json:"department"`
	Designation   *string `json:"designation"`
	Email         *string `json:"email"`
	DateOfJoining *string `json:"date_of_joining"`
	Status        *string `json:"status"`
}
