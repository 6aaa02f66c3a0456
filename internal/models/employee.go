package models

import "time"

type EmployeeStatus string

const (
	EmployeeStatusActive EmployeeStatus = "Active"
	EmployeeStatusExit   EmployeeStatus = "Exit"
)

// ValidEmployeeStatus reports whether s is one of the recognized statuses.
func ValidEmployeeStatus(s string) bool {
	switch EmployeeStatus(s) {
	case EmployeeStatusActive, EmployeeStatusExit:
		return true
	}
	return false
}

type Employee struct {
	ID            uint64         `gorm:"primarykey" json:"-"`
	EmployeeID    string         `gorm:"type:varchar(20);uniqueIndex;not null" json:"employee_id"`
	FullName      string         `gorm:"type:varchar(255);not null" json:"full_name"`
	Department    string         `gorm:"type:varchar(100);not null" json:"department"`
	Designation   string         `gorm:"type:varchar(100);not null" json:"designation"`
	Email         string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	DateOfJoining string         `gorm:"type:varchar(10);not null" json:"date_of_joining"`
	Status        EmployeeStatus `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
