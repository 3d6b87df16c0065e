package models

import (
	"time"
)

// Mandal is a savings-group tenant. It owns its sub-users, months and ledger
// rows; deleting a mandal cascades to all three.
type Mandal struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	UUID          string  `gorm:"uniqueIndex" json:"uuid"`
	Name          string  `json:"name"`
	LocalName     string  `json:"local_name"` // display name in the local script
	PhoneNumber   string  `gorm:"uniqueIndex" json:"phone_number"`
	PasswordHash  string  `json:"-"`
	EstablishedOn string  `json:"established_on"` // YYYY-MM-DD
	Hapto         float64 `json:"hapto"` // configured monthly installment amount
	IsActive      bool    `gorm:"default:true" json:"is_active"`

	SubUsers []SubUser    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Months   []Month      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Rows     []MemberData `json:"-" gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
