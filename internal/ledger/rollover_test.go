package ledger

import "testing"

func TestCarryWorkedExample(t *testing.T) {
	prev := Row{
		Installment:        500,
		PaidInstallment:    300,
		Withdrawal:         1000,
		PaidWithdrawal:     200,
		NewWithdrawal:      0,
		PendingInstallment: 0,
	}
	next := Carry(prev)

	if next.Withdrawal != 800 {
		t.Errorf("withdrawal = %v, want 800", next.Withdrawal)
	}
	if next.Interest != 8 {
		t.Errorf("interest = %v, want 8", next.Interest)
	}
	if next.PendingInstallment != 208 {
		t.Errorf("pending installment = %v, want 208", next.PendingInstallment)
	}
	if next.PaidInstallment != 0 {
		t.Errorf("paid installment = %v, want 0", next.PaidInstallment)
	}
}

func TestCarryResetsPaidCounters(t *testing.T) {
	prev := Row{
		Installment:     500,
		PaidInstallment: 500,
		PaidWithdrawal:  100,
		NewWithdrawal:   250,
		PaidInterest:    12,
		Withdrawal:      400,
	}
	next := Carry(prev)
	if next.PaidWithdrawal != 0 || next.NewWithdrawal != 0 || next.PaidInterest != 0 || next.PaidInstallment != 0 {
		t.Fatalf("paid counters not reset: %+v", next)
	}
}

func TestCarryPendingNeverDecreases(t *testing.T) {
	cases := []Row{
		{Installment: 500, PaidInstallment: 0, PendingInstallment: 100},
		{Installment: 500, PaidInstallment: 500, PendingInstallment: 300},
		{Installment: 500, PaidInstallment: 700, PendingInstallment: 50}, // overpaid: shortfall clamps to 0
		{Installment: 0, PendingInstallment: 0, Withdrawal: 2000},
		{PendingInstallment: 42, Withdrawal: 100, PaidWithdrawal: 500}, // net withdrawal negative
	}
	for i, prev := range cases {
		next := Carry(prev)
		if next.PendingInstallment < prev.PendingInstallment {
			t.Errorf("case %d: pending decreased %v -> %v", i, prev.PendingInstallment, next.PendingInstallment)
		}
	}
}

func TestCarryInterestSign(t *testing.T) {
	cases := []struct {
		prev         Row
		wantInterest float64
	}{
		// positive net outstanding withdrawal accrues 1%
		{Row{Withdrawal: 1000, PaidWithdrawal: 200}, 8},
		{Row{NewWithdrawal: 500}, 5},
		// fully settled or overpaid: no interest
		{Row{Withdrawal: 300, PaidWithdrawal: 300}, 0},
		{Row{Withdrawal: 100, PaidWithdrawal: 500}, 0},
		{Row{}, 0},
	}
	for i, c := range cases {
		next := Carry(c.prev)
		if next.Interest != c.wantInterest {
			t.Errorf("case %d: interest = %v, want %v", i, next.Interest, c.wantInterest)
		}
		if next.Interest < 0 {
			t.Errorf("case %d: negative interest %v", i, next.Interest)
		}
		net := c.prev.Withdrawal - c.prev.PaidWithdrawal + c.prev.NewWithdrawal
		if net <= 0 && next.Interest != 0 {
			t.Errorf("case %d: interest %v on non-positive net withdrawal %v", i, next.Interest, net)
		}
	}
}

func TestCarryCopiesOtherFields(t *testing.T) {
	prev := Row{
		SubUserID:   7,
		Amount:      12000,
		Fine:        50,
		Installment: 500,
	}
	next := Carry(prev)
	if next.SubUserID != 7 || next.Amount != 12000 || next.Fine != 50 || next.Installment != 500 {
		t.Fatalf("verbatim fields not copied: %+v", next)
	}
}

func TestTotal(t *testing.T) {
	if got := Total(500, 8); got != 508 {
		t.Fatalf("Total = %v, want 508", got)
	}
}
