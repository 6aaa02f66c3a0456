package repository

import (
	"gorm.io/gorm"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/models"
)

// EmployeeRepository defines the interface for employee data access
type EmployeeRepository interface {
	// Create creates a new employee
	Create(employee *models.Employee) error

	// FindByEmployeeID finds an employee by its EMP#### identifier
	FindByEmployeeID(employeeID string) (*models.Employee, error)

	// List retrieves all employees, newest first
	List() ([]models.Employee, error)

	// Update saves an employee
	Update(employee *models.Employee) error

	// Delete hard-deletes an employee, returning the affected row count
	Delete(employeeID string) (int64, error)

	// EmailExists reports whether another employee already uses the email
	EmailExists(email string, excludeID uint64) (bool, error)

	// Resolve finds an employee by a case-insensitive match on employee ID,
	// full name, or email. When both ref and email are given, a combined
	// match is preferred before falling back to an OR-match.
	Resolve(ref, email string) (*models.Employee, error)
}

// AssetRepository defines the interface for asset data access
type AssetRepository interface {
	Create(asset *models.Asset) error
	FindByAssetID(assetID string) (*models.Asset, error)
	List() ([]models.Asset, error)
	Update(asset *models.Asset) error
	Delete(assetID string) (int64, error)

	// SerialNumberExists reports whether another asset already carries the
	// serial number (case-sensitive exact match)
	SerialNumberExists(serial string, excludeID uint64) (bool, error)

	// IMEI2Exists reports whether another asset already carries the IMEI-2
	IMEI2Exists(imei string, excludeID uint64) (bool, error)
}

// AssignmentRepository defines the interface for assignment data access
type AssignmentRepository interface {
	Create(assignment *models.Assignment) error
	FindByAssignmentID(assignmentID string) (*models.Assignment, error)
	List() ([]models.Assignment, error)
	Update(assignment *models.Assignment) error

	// Delete hard-deletes an assignment with no asset side effect
	Delete(assignmentID string) (int64, error)

	// FindActiveByAssetID lists assignments on the asset with no return date,
	// optionally excluding one assignment (the row being updated)
	FindActiveByAssetID(assetID string, excludeAssignmentID string) ([]models.Assignment, error)

	// ListActiveByEmployeeID lists an employee's outstanding assignments
	ListActiveByEmployeeID(employeeID string) ([]models.Assignment, error)
}

// SimConnectionRepository defines the interface for the SIM registry
type SimConnectionRepository interface {
	Create(sim *models.SimConnection) error
	FindByNumber(simMobileNumber string) (*models.SimConnection, error)
	List() ([]models.SimConnection, error)
	Update(sim *models.SimConnection) error
	Delete(simMobileNumber string) (int64, error)
}

// UserRepository defines the interface for auth user data access
type UserRepository interface {
	Create(user *models.User) error
	FindByUsername(username string) (*models.User, error)
}

// Store bundles all repositories bound to one database handle. Services
// create a tx-bound Store inside gorm transactions so every read informing a
// reconciliation decision and every write commit or roll back together.
type Store struct {
	Employees   EmployeeRepository
	Assets      AssetRepository
	Assignments AssignmentRepository
	Sims        SimConnectionRepository
	Users       UserRepository
}

// NewStore creates a Store bound to db (either the shared handle or a tx).
func NewStore(db *gorm.DB) *Store {
	return &Store{
		Employees:   NewEmployeeRepository(db),
		Assets:      NewAssetRepository(db),
		Assignments: NewAssignmentRepository(db),
		Sims:        NewSimConnectionRepository(db),
		Users:       NewUserRepository(db),
	}
}
