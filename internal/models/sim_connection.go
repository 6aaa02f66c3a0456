package models

import "time"

type ConnectionStatus string

const (
	ConnectionStatusActive   ConnectionStatus = "Active"
	ConnectionStatusInactive ConnectionStatus = "Inactive"
)

type SimStatus string

const (
	SimStatusAssigned SimStatus = "Assigned"
	SimStatusInStock  SimStatus = "In Stock"
)

// ValidConnectionStatus reports whether s is a recognized connection status.
func ValidConnectionStatus(s string) bool {
	switch ConnectionStatus(s) {
	case ConnectionStatusActive, ConnectionStatusInactive:
		return true
	}
	return false
}

// ValidSimStatus reports whether s is a recognized SIM status.
func ValidSimStatus(s string) bool {
	switch SimStatus(s) {
	case SimStatusAssigned, SimStatusInStock:
		return true
	}
	return false
}

// SimConnection is an independent registry of SIM cards keyed by mobile
// number. It is deliberately not foreign-keyed to Assignment's sim_* fields;
// the two are separately owned.
type SimConnection struct {
	ID               uint64           `gorm:"primarykey" json:"-"`
	SimMobileNumber  string           `gorm:"type:varchar(20);uniqueIndex;not null" json:"sim_mobile_number"`
	CurrentOwnerName string           `gorm:"type:varchar(255)" json:"current_owner_name"`
	ConnectionStatus ConnectionStatus `gorm:"type:varchar(20);not null;default:'Active'" json:"connection_status"`
	SimStatus        SimStatus        `gorm:"type:varchar(20);not null;default:'In Stock'" json:"sim_status"`
	Remarks          *string          `gorm:"type:text" json:"remarks"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}
