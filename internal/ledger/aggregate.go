package ledger

// Summary holds the derived totals for a set of ledger rows, either one month
// or a whole lifetime of months.
type Summary struct {
	TotalInstallments   float64 `json:"total_installments"`
	TotalInterest       float64 `json:"total_interest"`
	TotalWithdrawals    float64 `json:"total_withdrawals"` // paid withdrawals
	TotalNewWithdrawals float64 `json:"total_new_withdrawals"`
	TotalFines          float64 `json:"total_fines"`
	TotalMembers        int     `json:"total_members"`
	TotalCollected      float64 `json:"total_collected"`
	BandSilak           float64 `json:"band_silak"` // closing balance
	PerPerson           float64 `json:"per_person"`
	InterestPerPerson   float64 `json:"interest_per_person"`
}

// Summarize derives the summary figures from a row set. Members are counted
// as distinct sub-user ids appearing in the rows, not the mandal roster.
//
// Total collected is installments plus paid withdrawals; the band silak
// (closing balance) nets out new withdrawals. Divisions return 0 instead of
// NaN when the row set has no members.
func Summarize(rows []Row) Summary {
	var s Summary
	members := make(map[uint]struct{})
	for _, r := range rows {
		s.TotalInstallments += r.Installment
		s.TotalInterest += r.Interest
		s.TotalWithdrawals += r.PaidWithdrawal
		s.TotalNewWithdrawals += r.NewWithdrawal
		s.TotalFines += r.Fine
		members[r.SubUserID] = struct{}{}
	}
	s.TotalMembers = len(members)
	s.TotalCollected = s.TotalInstallments + s.TotalWithdrawals
	s.BandSilak = s.TotalCollected - s.TotalNewWithdrawals
	if s.TotalMembers > 0 {
		s.PerPerson = s.BandSilak / float64(s.TotalMembers)
		s.InterestPerPerson = s.TotalInterest / float64(s.TotalMembers)
	}
	return s
}

// CollectionRate is the raw, unclamped percentage of installments actually
// collected against the theoretical maximum for the period. Returns 0 when
// the maximum is 0.
func CollectionRate(actual float64, memberCount, monthCount int, monthlyRate float64) float64 {
	possible := float64(memberCount) * float64(monthCount) * monthlyRate
	if possible <= 0 {
		return 0
	}
	return actual / possible * 100
}

// ClampPercent bounds a percentage to [0,100] for display. The raw value is
// reported alongside it.
func ClampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// DisplayInstallment is what the UI shows for a member's installment in any
// month after the first: the carried prior installment plus the current
// month's recorded one.
func DisplayInstallment(prev, cur float64) float64 {
	return prev + cur
}
