package ledger

import "errors"

// InterestRate is the monthly rate charged on a positive outstanding
// withdrawal balance.
const InterestRate = 0.01

var (
	// ErrNoMembers means a month cannot be opened before the mandal has at
	// least one member.
	ErrNoMembers = errors.New("mandal has no members")
	// ErrDuplicateMonth means the computed next month already exists for the
	// mandal; rollover never overwrites.
	ErrDuplicateMonth = errors.New("month already exists")
)

// Row holds the numeric state of one member's ledger row. It is the input and
// output of the carry-forward arithmetic, detached from storage.
type Row struct {
	SubUserID          uint
	Installment        float64
	PaidInstallment    float64
	PendingInstallment float64
	Amount             float64
	Interest           float64
	PaidInterest       float64
	Fine               float64
	Withdrawal         float64
	PaidWithdrawal     float64
	NewWithdrawal      float64
}

// Carry rolls a prior month's row forward into the next month's opening row.
//
// The net outstanding withdrawal carries forward (minus what was collected,
// plus what was newly taken) and accrues interest when positive. Any
// installment shortfall joins the pending balance together with the accrued
// interest, so pending never decreases without a payment. Paid counters reset;
// everything else copies verbatim.
func Carry(prev Row) Row {
	withdrawal := prev.Withdrawal - prev.PaidWithdrawal + prev.NewWithdrawal

	interest := 0.0
	if withdrawal > 0 {
		interest = withdrawal * InterestRate
	}

	unpaid := 0.0
	if prev.PaidInstallment < prev.Installment {
		unpaid = prev.Installment - prev.PaidInstallment
	}

	next := prev
	next.Withdrawal = withdrawal
	next.Interest = interest
	next.PendingInstallment = prev.PendingInstallment + unpaid + interest
	next.PaidInstallment = 0
	next.PaidWithdrawal = 0
	next.NewWithdrawal = 0
	next.PaidInterest = 0
	return next
}

// Total is the display-level sum stored alongside a row on every save. It is
// a convenience field only; pending and carried figures stay authoritative.
func Total(installment, interest float64) float64 {
	return installment + interest
}
