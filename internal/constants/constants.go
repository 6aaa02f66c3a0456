package constants

// Context keys set by the auth middleware
const (
	ContextKeyUsername   = "username"
	ContextKeyRole       = "role"
	ContextKeyEmployeeID = "employee_id"
)

// User roles
const (
	RoleHR       = "HR"
	RoleAdmin    = "Admin"
	RoleEmployee = "Employee"
)

// Generated ID prefixes and sequence names
const (
	EmployeeIDPrefix   = "EMP"
	AssetIDPrefix      = "AST"
	AssignmentIDPrefix = "ASG"

	SeqEmployees   = "employees"
	SeqAssets      = "assets"
	SeqAssignments = "assignments"
)

// DateLayout is the wire format for all date fields (assigned_date,
// return_date, date_of_joining).
const DateLayout = "2006-01-02"

const MinPasswordLength = 8
