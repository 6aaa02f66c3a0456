package models

import "time"

type User struct {
	ID           uint64    `gorm:"primarykey" json:"-"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         string    `gorm:"type:varchar(20);not null" json:"role"`
	EmployeeID   *string   `gorm:"type:varchar(20)" json:"employee_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
