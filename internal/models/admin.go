package models

import "time"

// Admin is an operator account that manages mandal tenants. Seeded at
// migration time from the environment.
type Admin struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PhoneNumber  string    `gorm:"uniqueIndex" json:"phone_number"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
