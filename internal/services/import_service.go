package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/constants"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/database"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/excel"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/models"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/repository"
)

var ErrNoImportRows = errors.New("the uploaded file contains no data rows")

// ImportRowError reports why one spreadsheet row was rejected. Row is the
// 1-based row number in the sheet, counting the header as row 1.
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"error"`
}

// ImportResult summarizes a bulk import: how many rows landed and which were
// rejected. Good rows commit even when others fail.
type ImportResult struct {
	Imported int              `json:"imported"`
	Errors   []ImportRowError `json:"errors"`
}

// ImportService ingests spreadsheet rows into the employee, asset, and SIM
// tables. Each import runs in a single transaction: valid rows are written
// as they are reached, invalid rows become row errors, and only
// infrastructure failures roll the batch back.
type ImportService struct {
	db *gorm.DB
}

// NewImportService creates a new ImportService
func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{db: db}
}

// ImportEmployees ingests employee rows in template column order:
// Full Name, Department, Designation, Email, Date of Joining, Status.
func (s *ImportService) ImportEmployees(rows [][]string) (*ImportResult, error) {
	if len(rows) == 0 {
		return nil, ErrNoImportRows
	}

	result := &ImportResult{Errors: make([]ImportRowError, 0)}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		store := repository.NewStore(tx)
		seenEmails := make(map[string]bool)

		for i, row := range rows {
			rowNum := i + 2
			if blankRow(row) {
				continue
			}

			fullName := cell(row, 0)
			department := cell(row, 1)
			designation := cell(row, 2)
			email := cell(row, 3)
			joining := cell(row, 4)
			status := cell(row, 5)

			if fullName == "" || department == "" || designation == "" || email == "" || joining == "" {
				result.reject(rowNum, "full name, department, designation, email, and date of joining are required")
				continue
			}
			if err := validateEmail(email); err != nil {
				result.reject(rowNum, "invalid email address")
				continue
			}
			normalizedDate, err := excel.NormalizeDate(joining)
			if err != nil {
				result.reject(rowNum, "unrecognized date of joining")
				continue
			}
			if status == "" {
				status = string(models.EmployeeStatusActive)
			}
			if !models.ValidEmployeeStatus(status) {
				result.reject(rowNum, "status must be Active or Exit")
				continue
			}

			emailKey := strings.ToLower(email)
			if seenEmails[emailKey] {
				result.reject(rowNum, "duplicate email within the file")
				continue
			}
			exists, err := store.Employees.EmailExists(email, 0)
			if err != nil {
				return fmt.Errorf("failed to check email: %w", err)
			}
			if exists {
				result.reject(rowNum, "an employee with this email already exists")
				continue
			}

			employeeID, err := database.NextID(tx, constants.SeqEmployees, constants.EmployeeIDPrefix)
			if err != nil {
				return err
			}
			employee := &models.Employee{
				EmployeeID:    employeeID,
				FullName:      fullName,
				Department:    department,
				Designation:   designation,
				Email:         email,
				DateOfJoining: normalizedDate,
				Status:        models.EmployeeStatus(status),
			}
			if err := store.Employees.Create(employee); err != nil {
				return fmt.Errorf("failed to create employee: %w", err)
			}

			seenEmails[emailKey] = true
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ImportAssets ingests asset rows in template column order: Asset Name,
// Category, Brand, Serial Number, IMEI 2, Condition, Status, Assigned To
// (Employee ID), Assigned To (Employee Email), Assigned Date. Rows with
// status Assigned must name a resolvable employee and create the asset and
// its assignment together; any other status imports the asset alone.
func (s *ImportService) ImportAssets(rows [][]string) (*ImportResult, error) {
	if len(rows) == 0 {
		return nil, ErrNoImportRows
	}

	result := &ImportResult{Errors: make([]ImportRowError, 0)}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		store := repository.NewStore(tx)
		seenSerials := make(map[string]bool)
		seenIMEIs := make(map[string]bool)

		for i, row := range rows {
			rowNum := i + 2
			if blankRow(row) {
				continue
			}

			assetName := cell(row, 0)
			category := cell(row, 1)
			brand := cell(row, 2)
			serial := optionalCell(row, 3)
			imei2 := optionalCell(row, 4)
			condition := cell(row, 5)
			status := cell(row, 6)
			assigneeRef := cell(row, 7)
			assigneeEmail := cell(row, 8)
			assignedDate := cell(row, 9)

			if assetName == "" || category == "" || brand == "" {
				result.reject(rowNum, "asset name, category, and brand are required")
				continue
			}
			if err := validateIdentifiers(category, serial, imei2); err != nil {
				result.reject(rowNum, err.Error())
				continue
			}
			if condition == "" {
				condition = string(models.AssetConditionGood)
			}
			if !models.ValidAssetCondition(condition) {
				result.reject(rowNum, "invalid condition")
				continue
			}
			if status == "" {
				status = string(models.AssetStatusAvailable)
			}
			if !models.ValidAssetStatus(status) {
				result.reject(rowNum, "invalid status")
				continue
			}

			if serial != nil {
				if seenSerials[*serial] {
					result.reject(rowNum, "duplicate serial number within the file")
					continue
				}
				exists, err := store.Assets.SerialNumberExists(*serial, 0)
				if err != nil {
					return fmt.Errorf("failed to check serial number: %w", err)
				}
				if exists {
					result.reject(rowNum, "an asset with this serial number already exists")
					continue
				}
			}
			if imei2 != nil {
				if seenIMEIs[*imei2] {
					result.reject(rowNum, "duplicate IMEI 2 within the file")
					continue
				}
				exists, err := store.Assets.IMEI2Exists(*imei2, 0)
				if err != nil {
					return fmt.Errorf("failed to check IMEI 2: %w", err)
				}
				if exists {
					result.reject(rowNum, "an asset with this IMEI 2 already exists")
					continue
				}
			}

			// Only status Assigned gets an assignment row, and then the
			// assignee is mandatory; resolve it before writing anything
			// so a bad reference rejects the whole row.
			var assignee *models.Employee
			if models.AssetStatus(status) == models.AssetStatusAssigned {
				if assigneeRef == "" && assigneeEmail == "" {
					result.reject(rowNum, "an assigned-to employee is required when status is Assigned")
					continue
				}
				found, err := store.Employees.Resolve(assigneeRef, assigneeEmail)
				if err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						result.reject(rowNum, "assigned-to employee not found")
						continue
					}
					return fmt.Errorf("failed to resolve employee: %w", err)
				}
				assignee = found
			}
			normalizedAssigned := time.Now().Format(constants.DateLayout)
			if assignee != nil && assignedDate != "" {
				normalized, err := excel.NormalizeDate(assignedDate)
				if err != nil {
					result.reject(rowNum, "unrecognized assigned date")
					continue
				}
				normalizedAssigned = normalized
			}

			assetID, err := database.NextID(tx, constants.SeqAssets, constants.AssetIDPrefix)
			if err != nil {
				return err
			}
			asset := &models.Asset{
				AssetID:      assetID,
				AssetName:    assetName,
				Category:     category,
				Brand:        brand,
				SerialNumber: serial,
				IMEI2:        imei2,
				Condition:    models.AssetCondition(condition),
				Status:       models.AssetStatus(status),
			}
			if err := store.Assets.Create(asset); err != nil {
				return fmt.Errorf("failed to create asset: %w", err)
			}

			if assignee != nil {
				assignmentID, err := database.NextID(tx, constants.SeqAssignments, constants.AssignmentIDPrefix)
				if err != nil {
					return err
				}
				assignment := &models.Assignment{
					AssignmentID: assignmentID,
					EmployeeID:   assignee.EmployeeID,
					EmployeeName: assignee.FullName,
					AssetID:      asset.AssetID,
					AssetName:    asset.AssetName,
					AssignedDate: normalizedAssigned,
				}
				if err := store.Assignments.Create(assignment); err != nil {
					return fmt.Errorf("failed to create assignment: %w", err)
				}
			}

			if serial != nil {
				seenSerials[*serial] = true
			}
			if imei2 != nil {
				seenIMEIs[*imei2] = true
			}
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ImportSims ingests SIM registry rows in template column order:
// CONNECTION, Current owner, Active/Inactive, Assigned/InStock, Remarks.
func (s *ImportService) ImportSims(rows [][]string) (*ImportResult, error) {
	if len(rows) == 0 {
		return nil, ErrNoImportRows
	}

	result := &ImportResult{Errors: make([]ImportRowError, 0)}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		store := repository.NewStore(tx)

		for i, row := range rows {
			rowNum := i + 2
			if blankRow(row) {
				continue
			}

			number := cell(row, 0)
			owner := cell(row, 1)
			connectionStatus := cell(row, 2)
			simStatus := cell(row, 3)
			remarks := optionalCell(row, 4)

			if number == "" {
				result.reject(rowNum, "SIM mobile number is required")
				continue
			}
			if connectionStatus == "" {
				connectionStatus = string(models.ConnectionStatusActive)
			}
			if !models.ValidConnectionStatus(connectionStatus) {
				result.reject(rowNum, "connection status must be Active or Inactive")
				continue
			}
			if simStatus == "" {
				simStatus = string(models.SimStatusInStock)
			}
			if !models.ValidSimStatus(simStatus) {
				result.reject(rowNum, "SIM status must be Assigned or In Stock")
				continue
			}

			// The mobile number is the natural key: a known number
			// updates the existing registry row instead of erroring.
			existing, err := store.Sims.FindByNumber(number)
			if err == nil {
				existing.CurrentOwnerName = owner
				existing.ConnectionStatus = models.ConnectionStatus(connectionStatus)
				existing.SimStatus = models.SimStatus(simStatus)
				existing.Remarks = remarks
				if err := store.Sims.Update(existing); err != nil {
					return fmt.Errorf("failed to update SIM connection: %w", err)
				}
				result.Imported++
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to check SIM number: %w", err)
			}

			sim := &models.SimConnection{
				SimMobileNumber:  number,
				CurrentOwnerName: owner,
				ConnectionStatus: models.ConnectionStatus(connectionStatus),
				SimStatus:        models.SimStatus(simStatus),
				Remarks:          remarks,
			}
			if err := store.Sims.Create(sim); err != nil {
				return fmt.Errorf("failed to create SIM connection: %w", err)
			}

			result.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *ImportResult) reject(rowNum int, message string) {
	r.Errors = append(r.Errors, ImportRowError{Row: rowNum, Message: message})
}

// cell reads a trimmed cell value, tolerating ragged rows.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func optionalCell(row []string, i int) *string {
	v := cell(row, i)
	if v == "" {
		return nil
	}
	return &v
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
