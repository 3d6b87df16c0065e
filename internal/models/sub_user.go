package models

import "time"

// SubUser is an individual member of a mandal. Identity fields are immutable
// once created; there is no update or delete path for a member.
type SubUser struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	MandalID    uint      `gorm:"index;not null" json:"mandal_id"`
	Name        string    `json:"name"`
	PhoneNumber string    `gorm:"uniqueIndex" json:"phone_number"` // unique across the whole system
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
