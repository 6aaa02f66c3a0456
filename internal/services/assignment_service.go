package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/constants"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/database"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/models"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/repository"
)

var (
	ErrEmployeeNotFound         = errors.New("employee not found")
	ErrAssetNotFound            = errors.New("asset not found")
	ErrAssignmentNotFound       = errors.New("assignment not found")
	ErrAssignedDateRequired     = errors.New("employee ID, asset ID, and assigned date are required")
	ErrReturnConditionRequired  = errors.New("asset return condition is required when a return date is set")
	ErrInvalidDate              = errors.New("date must be in YYYY-MM-DD format")
	ErrReturnedAssignmentLocked = errors.New("returned assignments can only be edited by an Admin")
	ErrNoFieldsToUpdate         = errors.New("no fields to update")
)

// AssetConflictError is returned when an operation would give an asset two
// simultaneous holders. Existing carries the active assignment so the client
// can disambiguate.
type AssetConflictError struct {
	Existing *models.Assignment
}

func (e *AssetConflictError) Error() string {
	return "asset is already assigned to another employee"
}

// AssignmentService owns the assignment lifecycle: validation, the
// single-active-holder rule, and keeping the linked asset's status and
// condition in sync with return_date transitions. Every mutation runs in one
// transaction so the reads that decide the outcome commit or roll back with
// the writes.
type AssignmentService struct {
	db *gorm.DB
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(db *gorm.DB) *AssignmentService {
	return &AssignmentService{db: db}
}

// CreateAssignmentInput represents input for creating an assignment
type CreateAssignmentInput struct {
	EmployeeID           string
	AssetID              string
	AssignedDate         string
	ReturnDate           *string
	AssetReturnCondition *string
	Remarks              string
	SimProvider          string
	SimMobileNumber      string
	SimType              string
	SimOwnership         string
	SimPurpose           string
}

// UpdateAssignmentInput represents a partial update. Pointer fields are
// applied only when non-nil; Clear* flags reset the nullable columns.
type UpdateAssignmentInput struct {
	ActorRole            string
	EmployeeID           *string
	AssetID              *string
	AssignedDate         *string
	ReturnDate           *string
	ClearReturnDate      bool
	AssetReturnCondition *string
	Remarks              *string
	SimProvider          *string
	SimMobileNumber      *string
	SimType              *string
	SimOwnership         *string
	SimPurpose           *string
}

// List returns all assignments, newest first
func (s *AssignmentService) List() ([]models.Assignment, error) {
	return repository.NewStore(s.db).Assignments.List()
}

// Get returns a single assignment
func (s *AssignmentService) Get(assignmentID string) (*models.Assignment, error) {
	assignment, err := repository.NewStore(s.db).Assignments.FindByAssignmentID(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to find assignment: %w", err)
	}
	return assignment, nil
}

// Create validates the input, allocates an ASG#### identifier, inserts the
// assignment, and reconciles the asset's status and condition.
func (s *AssignmentService) Create(input CreateAssignmentInput) (*models.Assignment, error) {
	if input.EmployeeID == "" || input.AssetID == "" || input.AssignedDate == "" {
		return nil, ErrAssignedDateRequired
	}
	if err := validateDate(input.AssignedDate); err != nil {
		return nil, err
	}
	if input.ReturnDate != nil {
		if err := validateDate(*input.ReturnDate); err != nil {
			return nil, err
		}
		if input.AssetReturnCondition == nil || *input.AssetReturnCondition == "" {
			return nil, ErrReturnConditionRequired
		}
	}

	var created *models.Assignment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		store := repository.NewStore(tx)

		employee, err := store.Employees.FindByEmployeeID(input.EmployeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmployeeNotFound
			}
			return fmt.Errorf("failed to find employee: %w", err)
		}

		asset, err := store.Assets.FindByAssetID(input.AssetID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssetNotFound
			}
			return fmt.Errorf("failed to find asset: %w", err)
		}

		if asset.Status == models.AssetStatusAssigned {
			active, err := store.Assignments.FindActiveByAssetID(asset.AssetID, "")
			if err != nil {
				return fmt.Errorf("failed to check active assignments: %w", err)
			}
			if len(active) > 0 {
				return &AssetConflictError{Existing: &active[0]}
			}
		}

		assignmentID, err := database.NextID(tx, constants.SeqAssignments, constants.AssignmentIDPrefix)
		if err != nil {
			return err
		}

		assignment := &models.Assignment{
			AssignmentID:         assignmentID,
			EmployeeID:           employee.EmployeeID,
			EmployeeName:         employee.FullName,
			AssetID:              asset.AssetID,
			AssetName:            asset.AssetName,
			AssignedDate:         input.AssignedDate,
			ReturnDate:           input.ReturnDate,
			AssetReturnCondition: input.AssetReturnCondition,
			Remarks:              input.Remarks,
			SimProvider:          input.SimProvider,
			SimMobileNumber:      input.SimMobileNumber,
			SimType:              input.SimType,
			SimOwnership:         input.SimOwnership,
			SimPurpose:           input.SimPurpose,
		}
		if err := store.Assignments.Create(assignment); err != nil {
			return fmt.Errorf("failed to create assignment: %w", err)
		}

		// Create-and-immediately-return leaves the asset Available;
		// otherwise the asset now has a holder.
		if input.ReturnDate != nil {
			asset.Status = models.AssetStatusAvailable
		} else {
			asset.Status = models.AssetStatusAssigned
		}
		if input.AssetReturnCondition != nil {
			applyReturnCondition(asset, *input.AssetReturnCondition)
		}
		if err := store.Assets.Update(asset); err != nil {
			return fmt.Errorf("failed to update asset: %w", err)
		}

		created = assignment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies a partial update, enforcing the returned-assignment edit
// lock and the single-active-holder rule across return_date transitions.
func (s *AssignmentService) Update(assignmentID string, input UpdateAssignmentInput) (*models.Assignment, error) {
	if input.AssignedDate != nil {
		if err := validateDate(*input.AssignedDate); err != nil {
			return nil, err
		}
	}
	if input.ReturnDate != nil {
		if err := validateDate(*input.ReturnDate); err != nil {
			return nil, err
		}
	}

	var updated *models.Assignment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		store := repository.NewStore(tx)

		assignment, err := store.Assignments.FindByAssignmentID(assignmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssignmentNotFound
			}
			return fmt.Errorf("failed to find assignment: %w", err)
		}

		// Once returned, only Admin may correct the record; HR is view-only.
		if assignment.ReturnDate != nil && input.ActorRole != constants.RoleAdmin {
			return ErrReturnedAssignmentLocked
		}

		wasActive := assignment.Active()
		previousAssetID := assignment.AssetID

		if input.EmployeeID != nil {
			employee, err := store.Employees.FindByEmployeeID(*input.EmployeeID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrEmployeeNotFound
				}
				return fmt.Errorf("failed to find employee: %w", err)
			}
			assignment.EmployeeID = employee.EmployeeID
			assignment.EmployeeName = employee.FullName
		}
		if input.AssetID != nil {
			asset, err := store.Assets.FindByAssetID(*input.AssetID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrAssetNotFound
				}
				return fmt.Errorf("failed to find asset: %w", err)
			}
			assignment.AssetID = asset.AssetID
			assignment.AssetName = asset.AssetName
		}
		if input.AssignedDate != nil {
			assignment.AssignedDate = *input.AssignedDate
		}
		if input.ClearReturnDate {
			assignment.ReturnDate = nil
			assignment.AssetReturnCondition = nil
		} else if input.ReturnDate != nil {
			assignment.ReturnDate = input.ReturnDate
		}
		if input.AssetReturnCondition != nil {
			if *input.AssetReturnCondition == "" {
				assignment.AssetReturnCondition = nil
			} else {
				assignment.AssetReturnCondition = input.AssetReturnCondition
			}
		}
		if assignment.ReturnDate != nil && assignment.AssetReturnCondition == nil {
			return ErrReturnConditionRequired
		}
		if input.Remarks != nil {
			assignment.Remarks = *input.Remarks
		}
		if input.SimProvider != nil {
			assignment.SimProvider = *input.SimProvider
		}
		if input.SimMobileNumber != nil {
			assignment.SimMobileNumber = *input.SimMobileNumber
		}
		if input.SimType != nil {
			assignment.SimType = *input.SimType
		}
		if input.SimOwnership != nil {
			assignment.SimOwnership = *input.SimOwnership
		}
		if input.SimPurpose != nil {
			assignment.SimPurpose = *input.SimPurpose
		}

		isActive := assignment.Active()

		// Re-opening a returned assignment must not create a second holder.
		if !wasActive && isActive {
			others, err := store.Assignments.FindActiveByAssetID(assignment.AssetID, assignment.AssignmentID)
			if err != nil {
				return fmt.Errorf("failed to check active assignments: %w", err)
			}
			if len(others) > 0 {
				return &AssetConflictError{Existing: &others[0]}
			}
		}
		// Moving an active assignment onto another asset must not either.
		assetMoved := previousAssetID != assignment.AssetID
		if assetMoved && isActive {
			others, err := store.Assignments.FindActiveByAssetID(assignment.AssetID, assignment.AssignmentID)
			if err != nil {
				return fmt.Errorf("failed to check active assignments: %w", err)
			}
			if len(others) > 0 {
				return &AssetConflictError{Existing: &others[0]}
			}
		}

		if err := store.Assignments.Update(assignment); err != nil {
			return fmt.Errorf("failed to update assignment: %w", err)
		}

		if err := s.reconcileAsset(store, assignment, input.AssetReturnCondition); err != nil {
			return err
		}
		if assetMoved {
			if err := s.reconcileAssetByID(store, previousAssetID); err != nil {
				return err
			}
		}

		updated = assignment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete hard-deletes an assignment. Per the API contract this has no asset
// status side effect.
func (s *AssignmentService) Delete(assignmentID string) error {
	affected, err := repository.NewStore(s.db).Assignments.Delete(assignmentID)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if affected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

// reconcileAsset recomputes the status of the assignment's asset from the
// set of remaining active assignments, and applies the condition mapping
// when a return condition was supplied on this mutation.
func (s *AssignmentService) reconcileAsset(store *repository.Store, assignment *models.Assignment, suppliedCondition *string) error {
	asset, err := store.Assets.FindByAssetID(assignment.AssetID)
	if err != nil {
		return fmt.Errorf("failed to load asset for reconciliation: %w", err)
	}

	active, err := store.Assignments.FindActiveByAssetID(asset.AssetID, "")
	if err != nil {
		return fmt.Errorf("failed to check active assignments: %w", err)
	}
	if len(active) > 0 {
		asset.Status = models.AssetStatusAssigned
	} else if asset.Status == models.AssetStatusAssigned {
		asset.Status = models.AssetStatusAvailable
	}

	if suppliedCondition != nil {
		applyReturnCondition(asset, *suppliedCondition)
	}

	if err := store.Assets.Update(asset); err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}
	return nil
}

func (s *AssignmentService) reconcileAssetByID(store *repository.Store, assetID string) error {
	asset, err := store.Assets.FindByAssetID(assetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load asset for reconciliation: %w", err)
	}

	active, err := store.Assignments.FindActiveByAssetID(assetID, "")
	if err != nil {
		return fmt.Errorf("failed to check active assignments: %w", err)
	}
	if len(active) > 0 {
		asset.Status = models.AssetStatusAssigned
	} else if asset.Status == models.AssetStatusAssigned {
		asset.Status = models.AssetStatusAvailable
	}

	if err := store.Assets.Update(asset); err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}
	return nil
}

// applyReturnCondition maps a reported return condition onto the asset's
// condition. Unknown values leave the condition untouched.
func applyReturnCondition(asset *models.Asset, condition string) {
	switch condition {
	case models.ReturnConditionDamaged, models.ReturnConditionNeedsRepair:
		asset.Condition = models.AssetConditionDamaged
	case models.ReturnConditionGood:
		asset.Condition = models.AssetConditionGood
	}
}

func validateDate(value string) error {
	if _, err := time.Parse(constants.DateLayout, value); err != nil {
		return ErrInvalidDate
	}
	return nil
}
