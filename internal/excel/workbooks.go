package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/models"
)

// Column orders here are a contract with the import parsers and with the
// spreadsheets users already have; change them only together.

var employeeTemplateHeaders = []interface{}{
	"Full Name", "Department", "Designation", "Email", "Date of Joining", "Status",
}

var employeeExportHeaders = []interface{}{
	"Employee ID", "Full Name", "Department", "Designation", "Email", "Date of Joining", "Status",
}

var assetTemplateHeaders = []interface{}{
	"Asset Name", "Category", "Brand", "Serial Number", "IMEI 2", "Condition", "Status",
	"Assigned To (Employee ID)", "Assigned To (Employee Email)", "Assigned Date",
}

var assetExportHeaders = []interface{}{
	"Asset ID", "Asset Name", "Category", "Brand", "Serial Number / IMEI 1", "IMEI 2", "Condition", "Status",
}

var assignmentTemplateHeaders = []interface{}{
	"Employee ID", "Employee Name", "Asset ID", "Asset Name", "Assigned Date", "Return Date",
	"Return Condition", "Remarks", "SIM Provider", "SIM Mobile Number", "SIM Type", "SIM Ownership", "SIM Purpose",
}

var assignmentExportHeaders = []interface{}{
	"Assignment ID", "Employee ID", "Employee Name", "Asset ID", "Asset Name", "Assigned Date", "Return Date", "Remarks",
}

var simHeaders = []interface{}{
	"CONNECTION", "Current owner", "Active/Inactive", "Assigned/InStock", "Remarks",
}

// ParseUpload reads the first sheet of an uploaded workbook and returns its
// data rows with the header row stripped.
func ParseUpload(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}

// EmployeeTemplate builds the blank employee import workbook
func EmployeeTemplate() (*excelize.File, error) {
	return newWorkbook(employeeTemplateHeaders, [][]interface{}{
		{"Jane Doe", "Engineering", "Software Engineer", "jane.doe@example.com", "2024-01-15", "Active"},
	})
}

// EmployeesExport builds a workbook listing all employees
func EmployeesExport(employees []models.Employee) (*excelize.File, error) {
	rows := make([][]interface{}, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []interface{}{
			e.EmployeeID, e.FullName, e.Department, e.Designation, e.Email, e.DateOfJoining, string(e.Status),
		})
	}
	return newWorkbook(employeeExportHeaders, rows)
}

// AssetTemplate builds the blank asset import workbook
func AssetTemplate() (*excelize.File, error) {
	return newWorkbook(assetTemplateHeaders, [][]interface{}{
		{"MacBook Pro 14", "Laptop", "Apple", "C02XL0GYJGH5", "", "New", "Available", "", "", ""},
	})
}

// AssetsExport builds a workbook listing all assets
func AssetsExport(assets []models.Asset) (*excelize.File, error) {
	rows := make([][]interface{}, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, []interface{}{
			a.AssetID, a.AssetName, a.Category, a.Brand, deref(a.SerialNumber), deref(a.IMEI2),
			string(a.Condition), string(a.Status),
		})
	}
	return newWorkbook(assetExportHeaders, rows)
}

// AssignmentTemplate builds the blank assignment import workbook
func AssignmentTemplate() (*excelize.File, error) {
	return newWorkbook(assignmentTemplateHeaders, [][]interface{}{
		{"EMP0001", "Jane Doe", "AST0001", "MacBook Pro 14", "2024-01-15", "", "", "", "", "", "", "", ""},
	})
}

// AssignmentsExport builds a workbook listing all assignments
func AssignmentsExport(assignments []models.Assignment) (*excelize.File, error) {
	rows := make([][]interface{}, 0, len(assignments))
	for _, a := range assignments {
		rows = append(rows, []interface{}{
			a.AssignmentID, a.EmployeeID, a.EmployeeName, a.AssetID, a.AssetName,
			a.AssignedDate, deref(a.ReturnDate), a.Remarks,
		})
	}
	return newWorkbook(assignmentExportHeaders, rows)
}

// SimTemplate builds the blank SIM registry import workbook
func SimTemplate() (*excelize.File, error) {
	return newWorkbook(simHeaders, [][]interface{}{
		{"9876543210", "Jane Doe", "Active", "Assigned", ""},
	})
}

// SimsExport builds a workbook listing all SIM connections
func SimsExport(sims []models.SimConnection) (*excelize.File, error) {
	rows := make([][]interface{}, 0, len(sims))
	for _, s := range sims {
		rows = append(rows, []interface{}{
			s.SimMobileNumber, s.CurrentOwnerName, string(s.ConnectionStatus), string(s.SimStatus), deref(s.Remarks),
		})
	}
	return newWorkbook(simHeaders, rows)
}

func newWorkbook(headers []interface{}, rows [][]interface{}) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	return f, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
