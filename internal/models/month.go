package models

import "time"

// Month is one ledger period for a mandal, keyed "YYYY-MM". The composite
// unique index is the duplicate guard for concurrent open-next-month calls.
type Month struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MandalID  uint      `gorm:"not null;uniqueIndex:idx_mandal_month" json:"mandal_id"`
	Month     string    `gorm:"size:7;not null;uniqueIndex:idx_mandal_month" json:"month"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
