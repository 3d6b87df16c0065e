package http

import (
	"testing"

	"mandal-ledger-go/internal/models"
)

func TestMemberDataView(t *testing.T) {
	row := models.MemberData{
		ID:                 3,
		SubUserID:          9,
		Month:              "2024-07",
		Installment:        500,
		PaidInstallment:    300,
		PendingInstallment: 208,
		Amount:             12000,
		Interest:           8,
		Fine:               25,
		Withdrawal:         800,
		Total:              508,
	}
	sub := models.SubUser{ID: 9, Name: "Ramesh", PhoneNumber: "9876543210"}

	v := memberDataView(row, sub)

	if v.SubUserName != "Ramesh" || v.PhoneNumber != "9876543210" {
		t.Fatalf("sub-user not populated: %+v", v)
	}
	if v.Month != "2024-07" || v.SubUserID != 9 || v.ID != 3 {
		t.Fatalf("identity fields wrong: %+v", v)
	}
	if v.Installment != 500 || v.PendingInstallment != 208 || v.Total != 508 {
		t.Fatalf("amounts wrong: %+v", v)
	}
}
