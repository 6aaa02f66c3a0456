package repository

import (
	"gorm.io/gorm"
)

// EmployeeStats aggregates employee counts by status
type EmployeeStats struct {
	TotalEmployees  int64 `json:"total_employees"`
	ActiveEmployees int64 `json:"active_employees"`
	ExitedEmployees int64 `json:"exited_employees"`
}

// AssetStats aggregates asset counts by status
type AssetStats struct {
	TotalAssets       int64 `json:"total_assets"`
	AvailableAssets   int64 `json:"available_assets"`
	AssignedAssets    int64 `json:"assigned_assets"`
	UnderRepairAssets int64 `json:"under_repair_assets"`
}

// AssignmentStats aggregates assignment counts by return state
type AssignmentStats struct {
	TotalAssignments  int64 `json:"total_assignments"`
	ActiveAssignments int64 `json:"active_assignments"`
}

// SimStats aggregates SIM connection counts by status
type SimStats struct {
	TotalSimConnections    int64 `json:"total_sim_connections"`
	ActiveSimConnections   int64 `json:"active_sim_connections"`
	AssignedSimConnections int64 `json:"assigned_sim_connections"`
	InStockSimConnections  int64 `json:"in_stock_sim_connections"`
}

// PendingReturnRow is one active assignment held by an exited employee
type PendingReturnRow struct {
	AssignmentID         string  `json:"assignment_id"`
	EmployeeID           string  `json:"employee_id"`
	EmployeeName         string  `json:"employee_name"`
	Email                string  `json:"email"`
	AssetID              string  `json:"asset_id"`
	AssetName            string  `json:"asset_name"`
	AssignedDate         string  `json:"assigned_date"`
	AssetReturnCondition *string `json:"asset_return_condition"`
	Remarks              string  `json:"remarks"`
	SimProvider          string  `json:"sim_provider"`
	SimMobileNumber      string  `json:"sim_mobile_number"`
	SimType              string  `json:"sim_type"`
	SimOwnership         string  `json:"sim_ownership"`
	SimPurpose           string  `json:"sim_purpose"`
}

// ReportRepository runs the aggregate and cross-entity queries behind the
// dashboard, the pending-returns report, and search.
type ReportRepository interface {
	EmployeeStats() (EmployeeStats, error)
	AssetStats() (AssetStats, error)
	AssignmentStats() (AssignmentStats, error)
	SimStats() (SimStats, error)
	PendingReturns() ([]PendingReturnRow, error)
	SearchEmployees(q string) ([]EmployeeSearchRow, error)
	SearchAssets(q string) ([]AssetSearchRow, error)
	SearchAssignments(q string) ([]AssignmentSearchRow, error)
}

// EmployeeSearchRow is an employee search hit
type EmployeeSearchRow struct {
	EmployeeID  string `json:"employee_id"`
	FullName    string `json:"full_name"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	Email       string `json:"email"`
}

// AssetSearchRow is an asset search hit
type AssetSearchRow struct {
	AssetID      string  `json:"asset_id"`
	AssetName    string  `json:"asset_name"`
	Category     string  `json:"category"`
	Brand        string  `json:"brand"`
	SerialNumber *string `json:"serial_number"`
	Status       string  `json:"status"`
}

// AssignmentSearchRow is an assignment search hit
type AssignmentSearchRow struct {
	AssignmentID string `json:"assignment_id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	AssetID      string `json:"asset_id"`
	AssetName    string `json:"asset_name"`
	AssignedDate string `json:"assigned_date"`
}

// GormReportRepository is a GORM implementation of ReportRepository
type GormReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &GormReportRepository{db: db}
}

func (r *GormReportRepository) EmployeeStats() (EmployeeStats, error) {
	var stats EmployeeStats
	err := r.db.Raw(`
		SELECT
			COUNT(*) AS total_employees,
			COALESCE(SUM(CASE WHEN status = 'Active' THEN 1 ELSE 0 END), 0) AS active_employees,
			COALESCE(SUM(CASE WHEN status = 'Exit' THEN 1 ELSE 0 END), 0) AS exited_employees
		FROM employees`).Scan(&stats).Error
	return stats, err
}

func (r *GormReportRepository) AssetStats() (AssetStats, error) {
	var stats AssetStats
	err := r.db.Raw(`
		SELECT
			COUNT(*) AS total_assets,
			COALESCE(SUM(CASE WHEN status = 'Available' THEN 1 ELSE 0 END), 0) AS available_assets,
			COALESCE(SUM(CASE WHEN status = 'Assigned' THEN 1 ELSE 0 END), 0) AS assigned_assets,
			COALESCE(SUM(CASE WHEN status = 'Under Repair/Maintenance' THEN 1 ELSE 0 END), 0) AS under_repair_assets
		FROM assets`).Scan(&stats).Error
	return stats, err
}

func (r *GormReportRepository) AssignmentStats() (AssignmentStats, error) {
	var stats AssignmentStats
	err := r.db.Raw(`
		SELECT
			COUNT(*) AS total_assignments,
			COALESCE(SUM(CASE WHEN return_date IS NULL THEN 1 ELSE 0 END), 0) AS active_assignments
		FROM assignments`).Scan(&stats).Error
	return stats, err
}

func (r *GormReportRepository) SimStats() (SimStats, error) {
	var stats SimStats
	err := r.db.Raw(`
		SELECT
			COUNT(*) AS total_sim_connections,
			COALESCE(SUM(CASE WHEN connection_status = 'Active' THEN 1 ELSE 0 END), 0) AS active_sim_connections,
			COALESCE(SUM(CASE WHEN sim_status = 'Assigned' THEN 1 ELSE 0 END), 0) AS assigned_sim_connections,
			COALESCE(SUM(CASE WHEN sim_status = 'In Stock' THEN 1 ELSE 0 END), 0) AS in_stock_sim_connections
		FROM sim_connections`).Scan(&stats).Error
	return stats, err
}

func (r *GormReportRepository) PendingReturns() ([]PendingReturnRow, error) {
	var rows []PendingReturnRow
	err := r.db.Raw(`
		SELECT
			a.assignment_id, a.employee_id, a.employee_name,
			COALESCE(e.email, '') AS email,
			a.asset_id, a.asset_name, a.assigned_date,
			a.asset_return_condition, a.remarks,
			a.sim_provider, a.sim_mobile_number, a.sim_type, a.sim_ownership, a.sim_purpose
		FROM assignments a
		LEFT JOIN employees e ON a.employee_id = e.employee_id
		WHERE a.return_date IS NULL AND e.status = 'Exit'
		ORDER BY a.assigned_date ASC`).Scan(&rows).Error
	return rows, err
}

func (r *GormReportRepository) SearchEmployees(q string) ([]EmployeeSearchRow, error) {
	var rows []EmployeeSearchRow
	pattern := "%" + q + "%"
	err := r.db.Raw(`
		SELECT employee_id, full_name, department, designation, email
		FROM employees
		WHERE lower(full_name) LIKE lower(?)
		   OR lower(employee_id) LIKE lower(?)
		   OR lower(email) LIKE lower(?)
		   OR lower(department) LIKE lower(?)`,
		pattern, pattern, pattern, pattern).Scan(&rows).Error
	return rows, err
}

func (r *GormReportRepository) SearchAssets(q string) ([]AssetSearchRow, error) {
	var rows []AssetSearchRow
	pattern := "%" + q + "%"
	err := r.db.Raw(`
		SELECT asset_id, asset_name, category, brand, serial_number, status
		FROM assets
		WHERE lower(asset_name) LIKE lower(?)
		   OR lower(asset_id) LIKE lower(?)
		   OR lower(serial_number) LIKE lower(?)
		   OR lower(category) LIKE lower(?)`,
		pattern, pattern, pattern, pattern).Scan(&rows).Error
	return rows, err
}

func (r *GormReportRepository) SearchAssignments(q string) ([]AssignmentSearchRow, error) {
	var rows []AssignmentSearchRow
	pattern := "%" + q + "%"
	err := r.db.Raw(`
		SELECT assignment_id, employee_id, employee_name, asset_id, asset_name, assigned_date
		FROM assignments
		WHERE lower(employee_name) LIKE lower(?)
		   OR lower(asset_name) LIKE lower(?)
		   OR lower(assignment_id) LIKE lower(?)`,
		pattern, pattern, pattern).Scan(&rows).Error
	return rows, err
}
