package ledger

import (
	"testing"
	"time"
)

func TestNextKey(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"2024-01", "2024-02"},
		{"2024-11", "2024-12"},
		{"2024-12", "2025-01"}, // year rolls, month zero-padded
		{"1999-12", "2000-01"},
		{"2025-09", "2025-10"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := NextKey(c.in)
			if err != nil {
				t.Fatalf("NextKey(%q) error: %v", c.in, err)
			}
			if got != c.want {
				t.Fatalf("NextKey(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestNextKeyInvalid(t *testing.T) {
	for _, in := range []string{"", "2024", "2024-13", "2024-00", "24-01", "2024/01", "2024-1"} {
		if _, err := NextKey(in); err == nil {
			t.Errorf("NextKey(%q) expected error", in)
		}
	}
}

func TestPrevKey(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"2025-01", "2024-12"},
		{"2024-02", "2024-01"},
	}
	for _, c := range cases {
		got, err := PrevKey(c.in)
		if err != nil {
			t.Fatalf("PrevKey(%q) error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("PrevKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestValidKey(t *testing.T) {
	valid := []string{"2024-01", "2024-12", "0001-06"}
	invalid := []string{"2024-13", "2024-00", "2024-1", "abcd-ef", "2024-012"}
	for _, s := range valid {
		if !ValidKey(s) {
			t.Errorf("ValidKey(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if ValidKey(s) {
			t.Errorf("ValidKey(%q) = true, want false", s)
		}
	}
}

func TestKeyFromDate(t *testing.T) {
	d := time.Date(2021, time.March, 17, 0, 0, 0, 0, time.UTC)
	if got := KeyFromDate(d); got != "2021-03" {
		t.Fatalf("KeyFromDate = %q, want 2021-03", got)
	}
}
