package ledger

import "testing"

func TestSummarizeTwoRows(t *testing.T) {
	rows := []Row{
		{SubUserID: 1, Installment: 1000, PaidWithdrawal: 500, NewWithdrawal: 100},
		{SubUserID: 2, Installment: 800},
	}
	s := Summarize(rows)

	if s.TotalInstallments != 1800 {
		t.Errorf("total installments = %v, want 1800", s.TotalInstallments)
	}
	if s.TotalWithdrawals != 500 {
		t.Errorf("total withdrawals = %v, want 500", s.TotalWithdrawals)
	}
	if s.TotalNewWithdrawals != 100 {
		t.Errorf("total new withdrawals = %v, want 100", s.TotalNewWithdrawals)
	}
	if s.TotalMembers != 2 {
		t.Errorf("total members = %v, want 2", s.TotalMembers)
	}
	if s.TotalCollected != 2300 {
		t.Errorf("total collected = %v, want 2300", s.TotalCollected)
	}
	if s.BandSilak != 2200 {
		t.Errorf("band silak = %v, want 2200", s.BandSilak)
	}
	if s.PerPerson != 1100 {
		t.Errorf("per person = %v, want 1100", s.PerPerson)
	}
}

func TestSummarizeDistinctMembers(t *testing.T) {
	// same member across two months counts once
	rows := []Row{
		{SubUserID: 1, Installment: 500, Interest: 10},
		{SubUserID: 1, Installment: 500, Interest: 6},
	}
	s := Summarize(rows)
	if s.TotalMembers != 1 {
		t.Fatalf("total members = %v, want 1", s.TotalMembers)
	}
	if s.InterestPerPerson != 16 {
		t.Fatalf("interest per person = %v, want 16", s.InterestPerPerson)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalMembers != 0 {
		t.Fatalf("total members = %v, want 0", s.TotalMembers)
	}
	// zero denominators must yield exactly 0, never NaN
	if s.PerPerson != 0 {
		t.Errorf("per person = %v, want 0", s.PerPerson)
	}
	if s.InterestPerPerson != 0 {
		t.Errorf("interest per person = %v, want 0", s.InterestPerPerson)
	}
}

func TestCollectionRate(t *testing.T) {
	cases := []struct {
		name        string
		actual      float64
		members     int
		months      int
		rate        float64
		want        float64
	}{
		{"full", 1000, 2, 5, 100, 100},
		{"half", 500, 2, 5, 100, 50},
		{"over-collected raw exceeds 100", 1200, 2, 5, 100, 120},
		{"no members", 500, 0, 5, 100, 0},
		{"no months", 500, 2, 0, 100, 0},
		{"zero rate", 500, 2, 5, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CollectionRate(c.actual, c.members, c.months, c.rate); got != c.want {
				t.Fatalf("CollectionRate = %v, want %v", got, c.want)
			}
		})
	}
}

func TestClampPercent(t *testing.T) {
	if got := ClampPercent(120); got != 100 {
		t.Errorf("ClampPercent(120) = %v", got)
	}
	if got := ClampPercent(-3); got != 0 {
		t.Errorf("ClampPercent(-3) = %v", got)
	}
	if got := ClampPercent(55); got != 55 {
		t.Errorf("ClampPercent(55) = %v", got)
	}
}

func TestDisplayInstallment(t *testing.T) {
	if got := DisplayInstallment(500, 500); got != 1000 {
		t.Fatalf("DisplayInstallment = %v, want 1000", got)
	}
}
