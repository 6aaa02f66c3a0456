package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/constants"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/database"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/models"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/repository"
)

var (
	ErrEmployeeFieldsRequired = errors.New("full name, email, and date of joining are required")
	ErrInvalidEmail           = errors.New("invalid email address")
	ErrDuplicateEmail         = errors.New("an employee with this email already exists")
	ErrInvalidEmployeeStatus  = errors.New("employee status must be Active or Exit")
)

var emailValidator = validator.New()

// EmployeeService handles employee directory CRUD
type EmployeeService struct {
	db *gorm.DB
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(db *gorm.DB) *EmployeeService {
	return &EmployeeService{db: db}
}

// CreateEmployeeInput represents input for creating an employee
type CreateEmployeeInput struct {
	FullName      string
	Department    string
	Designation   string
	Email         string
	DateOfJoining string
	Status        string
}

// UpdateEmployeeInput represents a partial employee update
type UpdateEmployeeInput struct {
	FullName      *string
	Department    *string
	Designation   *string
	Email         *string
	DateOfJoining *string
	Status        *string
}

// List returns all employees, newest first
func (s *EmployeeService) List() ([]models.Employee, error) {
	return repository.NewStore(s.db).Employees.List()
}

// Get returns a single employee
func (s *EmployeeService) Get(employeeID string) (*models.Employee, error) {
	employee, err := repository.NewStore(s.db).Employees.FindByEmployeeID(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	return employee, nil
}

// Create validates the input, allocates an EMP#### identifier, and inserts
// the employee.
func (s *EmployeeService) Create(input CreateEmployeeInput) (*models.Employee, error) {
	if input.FullName == "" || input.Email == "" || input.DateOfJoining == "" {
		return nil, ErrEmployeeFieldsRequired
	}
	if err := validateEmail(input.Email); err != nil {
		return nil, err
	}
	if err := validateDate(input.DateOfJoining); err != nil {
		return nil, err
	}
	status := models.EmployeeStatusActive
	if input.Status != "" {
		if !models.ValidEmployeeStatus(input.Status) {
			return nil, ErrInvalidEmployeeStatus
		}
		status = models.EmployeeStatus(input.Status)
	}

	var created *models.Employee
	err := s.db.Transaction(func(tx *gorm.DB) error {
		store := repository.NewStore(tx)

		exists, err := store.Employees.EmailExists(input.Email, 0)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return ErrDuplicateEmail
		}

		employeeID, err := database.NextID(tx, constants.SeqEmployees, constants.EmployeeIDPrefix)
		if err != nil {
			return err
		}

		employee := &models.Employee{
			EmployeeID:    employeeID,
			FullName:      input.FullName,
			Department:    input.Department,
			Designation:   input.Designation,
			Email:         input.Email,
			DateOfJoining: input.DateOfJoining,
			Status:        status,
		}
		if err := store.Employees.Create(employee); err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}
		created = employee
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies a partial update to an employee
func (s *EmployeeService) Update(employeeID string, input UpdateEmployeeInput) (*models.Employee, error) {
	if input.Email != nil {
		if err := validateEmail(*input.Email); err != nil {
			return nil, err
		}
	}
	if input.DateOfJoining != nil {
		if err := validateDate(*input.DateOfJoining); err != nil {
			return nil, err
		}
	}
	if input.Status != nil && !models.ValidEmployeeStatus(*input.Status) {
		return nil, ErrInvalidEmployeeStatus
	}

	var updated *models.Employee
	err := s.db.Transaction(func(tx *gorm.DB) error {
		store := repository.NewStore(tx)

		employee, err := store.Employees.FindByEmployeeID(employeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmployeeNotFound
			}
			return fmt.Errorf("failed to find employee: %w", err)
		}

		if input.Email != nil {
			exists, err := store.Employees.EmailExists(*input.Email, employee.ID)
			if err != nil {
				return fmt.Errorf("failed to check email: %w", err)
			}
			if exists {
				return ErrDuplicateEmail
			}
			employee.Email = *input.Email
		}
		if input.FullName != nil {
			employee.FullName = *input.FullName
		}
		if input.Department != nil {
			employee.Department = *input.Department
		}
		if input.Designation != nil {
			employee.Designation = *input.Designation
		}
		if input.DateOfJoining != nil {
			employee.DateOfJoining = *input.DateOfJoining
		}
		if input.Status != nil {
			employee.Status = models.EmployeeStatus(*input.Status)
		}

		if err := store.Employees.Update(employee); err != nil {
			return fmt.Errorf("failed to update employee: %w", err)
		}
		updated = employee
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete hard-deletes an employee. Assignment history keeps its snapshot
// columns, so past records stay readable.
func (s *EmployeeService) Delete(employeeID string) error {
	affected, err := repository.NewStore(s.db).Employees.Delete(employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if affected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func validateEmail(email string) error {
	if err := emailValidator.Var(email, "required,email"); err != nil {
		return ErrInvalidEmail
	}
	return nil
}
