package http

import "mandal-ledger-go/internal/models"

// MemberDataView is the API-boundary shape of a ledger row with its sub-user
// populated. Mapping is done by an explicit function rather than an implicit
// serialization transform, so the stored entity never leaks formatting
// concerns.
type MemberDataView struct {
	ID                 uint    `json:"id"`
	SubUserID          uint    `json:"subUserId"`
	SubUserName        string  `json:"subUserName"`
	PhoneNumber        string  `json:"phoneNumber"`
	Month              string  `json:"month"`
	Installment        float64 `json:"installment"`
	PaidInstallment    float64 `json:"paidInstallment"`
	PendingInstallment float64 `json:"pendingInstallment"`
	Amount             float64 `json:"amount"`
	Interest           float64 `json:"interest"`
	PaidInterest       float64 `json:"paidInterest"`
	Fine               float64 `json:"fine"`
	Withdrawal         float64 `json:"withdrawal"`
	PaidWithdrawal     float64 `json:"paidWithdrawal"`
	NewWithdrawal      float64 `json:"newWithdrawal"`
	Total              float64 `json:"total"`
}

func memberDataView(row models.MemberData, sub models.SubUser) MemberDataView {
	return MemberDataView{
		ID:                 row.ID,
		SubUserID:          row.SubUserID,
		SubUserName:        sub.Name,
		PhoneNumber:        sub.PhoneNumber,
		Month:              row.Month,
		Installment:        row.Installment,
		PaidInstallment:    row.PaidInstallment,
		PendingInstallment: row.PendingInstallment,
		Amount:             row.Amount,
		Interest:           row.Interest,
		PaidInterest:       row.PaidInterest,
		Fine:               row.Fine,
		Withdrawal:         row.Withdrawal,
		PaidWithdrawal:     row.PaidWithdrawal,
		NewWithdrawal:      row.NewWithdrawal,
		Total:              row.Total,
	}
}
