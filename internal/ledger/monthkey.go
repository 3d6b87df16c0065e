package ledger

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var keyPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// ValidKey reports whether s is a well-formed "YYYY-MM" month key.
func ValidKey(s string) bool {
	if !keyPattern.MatchString(s) {
		return false
	}
	m, _ := strconv.Atoi(s[5:])
	return m >= 1 && m <= 12
}

// NextKey advances a month key by one calendar month. December rolls the year
// and the month resets to a zero-padded "01".
func NextKey(s string) (string, error) {
	if !ValidKey(s) {
		return "", fmt.Errorf("invalid month key %q", s)
	}
	year, _ := strconv.Atoi(s[:4])
	month, _ := strconv.Atoi(s[5:])
	month++
	if month > 12 {
		month = 1
		year++
	}
	return fmt.Sprintf("%04d-%02d", year, month), nil
}

// PrevKey is the inverse of NextKey.
func PrevKey(s string) (string, error) {
	if !ValidKey(s) {
		return "", fmt.Errorf("invalid month key %q", s)
	}
	year, _ := strconv.Atoi(s[:4])
	month, _ := strconv.Atoi(s[5:])
	month--
	if month < 1 {
		month = 12
		year--
	}
	return fmt.Sprintf("%04d-%02d", year, month), nil
}

// KeyFromDate derives the month key of a calendar date, used to seed the very
// first month from a mandal's establishment date.
func KeyFromDate(t time.Time) string {
	return t.Format("2006-01")
}
