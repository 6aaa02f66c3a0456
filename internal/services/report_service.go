package services

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/models"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/repository"
)

// DashboardStats is the aggregate snapshot behind the dashboard. Each section
// is computed independently; a failing section is logged and reported as
// zeros rather than failing the whole response.
type DashboardStats struct {
	repository.EmployeeStats
	repository.AssetStats
	repository.AssignmentStats
	repository.SimStats
}

// PendingReturnGroup lists one exited employee's outstanding assets
type PendingReturnGroup struct {
	EmployeeID         string                        `json:"employee_id"`
	EmployeeName       string                        `json:"employee_name"`
	Email              string                        `json:"email"`
	TotalPendingAssets int                           `json:"total_pending_assets"`
	Assets             []repository.PendingReturnRow `json:"assets"`
}

// SearchResults bundles the per-entity hits of a global search
type SearchResults struct {
	Employees   []repository.EmployeeSearchRow   `json:"employees"`
	Assets      []repository.AssetSearchRow      `json:"assets"`
	Assignments []repository.AssignmentSearchRow `json:"assignments"`
}

// EmployeeSearchDetail is an employee search hit enriched with the
// employee's outstanding assignments
type EmployeeSearchDetail struct {
	repository.EmployeeSearchRow
	ActiveAssignments []models.Assignment `json:"active_assignments"`
}

// ReportService serves the dashboard, the pending-returns report, and search
type ReportService struct {
	db      *gorm.DB
	reports repository.ReportRepository
}

// NewReportService creates a new ReportService
func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db, reports: repository.NewReportRepository(db)}
}

// Dashboard gathers counts across all four tables. Sections degrade to
// zeros independently so one broken table never blanks the whole dashboard.
func (s *ReportService) Dashboard() DashboardStats {
	var stats DashboardStats

	employeeStats, err := s.reports.EmployeeStats()
	if err != nil {
		log.Printf("dashboard: employee stats unavailable: %v", err)
	} else {
		stats.EmployeeStats = employeeStats
	}

	assetStats, err := s.reports.AssetStats()
	if err != nil {
		log.Printf("dashboard: asset stats unavailable: %v", err)
	} else {
		stats.AssetStats = assetStats
	}

	assignmentStats, err := s.reports.AssignmentStats()
	if err != nil {
		log.Printf("dashboard: assignment stats unavailable: %v", err)
	} else {
		stats.AssignmentStats = assignmentStats
	}

	simStats, err := s.reports.SimStats()
	if err != nil {
		log.Printf("dashboard: sim stats unavailable: %v", err)
	} else {
		stats.SimStats = simStats
	}

	return stats
}

// PendingReturns lists active assignments held by exited employees, grouped
// per employee in order of oldest outstanding assignment.
func (s *ReportService) PendingReturns() ([]PendingReturnGroup, error) {
	rows, err := s.reports.PendingReturns()
	if err != nil {
		return nil, fmt.Errorf("failed to query pending returns: %w", err)
	}

	groups := make([]PendingReturnGroup, 0)
	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.EmployeeID]
		if !ok {
			i = len(groups)
			index[row.EmployeeID] = i
			groups = append(groups, PendingReturnGroup{
				EmployeeID:   row.EmployeeID,
				EmployeeName: row.EmployeeName,
				Email:        row.Email,
				Assets:       make([]repository.PendingReturnRow, 0, 1),
			})
		}
		groups[i].Assets = append(groups[i].Assets, row)
		groups[i].TotalPendingAssets++
	}
	return groups, nil
}

// Search runs a case-insensitive substring search across employees, assets,
// and assignments.
func (s *ReportService) Search(q string) (*SearchResults, error) {
	employees, err := s.reports.SearchEmployees(q)
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}
	assets, err := s.reports.SearchAssets(q)
	if err != nil {
		return nil, fmt.Errorf("failed to search assets: %w", err)
	}
	assignments, err := s.reports.SearchAssignments(q)
	if err != nil {
		return nil, fmt.Errorf("failed to search assignments: %w", err)
	}
	if employees == nil {
		employees = make([]repository.EmployeeSearchRow, 0)
	}
	if assets == nil {
		assets = make([]repository.AssetSearchRow, 0)
	}
	if assignments == nil {
		assignments = make([]repository.AssignmentSearchRow, 0)
	}
	return &SearchResults{Employees: employees, Assets: assets, Assignments: assignments}, nil
}

// SearchEmployeesWithAssets finds matching employees and attaches each one's
// outstanding assignments.
func (s *ReportService) SearchEmployeesWithAssets(q string) ([]EmployeeSearchDetail, error) {
	hits, err := s.reports.SearchEmployees(q)
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}

	store := repository.NewStore(s.db)
	details := make([]EmployeeSearchDetail, 0, len(hits))
	for _, hit := range hits {
		active, err := store.Assignments.ListActiveByEmployeeID(hit.EmployeeID)
		if err != nil {
			return nil, fmt.Errorf("failed to load active assignments: %w", err)
		}
		if active == nil {
			active = make([]models.Assignment, 0)
		}
		details = append(details, EmployeeSearchDetail{
			EmployeeSearchRow: hit,
			ActiveAssignments: active,
		})
	}
	return details, nil
}
