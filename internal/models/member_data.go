package models

import "time"

// MemberData is the ledger row for one (mandal, sub-user, month) triple.
//
// "Paid" counters hold what was collected inside the month and reset to zero
// on rollover; "pending"/balance fields carry forward. Total is a derived
// display sum (installment + interest), recomputed on every save, and is not
// authoritative.
type MemberData struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	MandalID  uint   `gorm:"not null;uniqueIndex:idx_member_month" json:"mandal_id"`
	SubUserID uint   `gorm:"not null;uniqueIndex:idx_member_month" json:"sub_user_id"`
	Month     string `gorm:"size:7;not null;uniqueIndex:idx_member_month" json:"month"`

	SubUser SubUser `json:"-" gorm:"foreignKey:SubUserID"`

	Installment        float64 `json:"installment"`
	PaidInstallment    float64 `json:"paid_installment"`
	PendingInstallment float64 `json:"pending_installment"`
	Amount             float64 `json:"amount"`
	Interest           float64 `json:"interest"`
	PaidInterest       float64 `json:"paid_interest"`
	Fine               float64 `json:"fine"`
	Withdrawal         float64 `json:"withdrawal"`
	PaidWithdrawal     float64 `json:"paid_withdrawal"`
	NewWithdrawal      float64 `json:"new_withdrawal"`
	Total              float64 `json:"total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
