// Package card holds the submitted payment card value object shared by the
// customer, instrument and order modules, plus the expiry/mask helpers they
// all compare with.
package card

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Mode selects the tenant-wide stored payment method representation.
// Exactly one mode is in effect per request; a customer never carries both.
type Mode int

const (
	// ModeLegacy stores card lines inline on the customer record.
	ModeLegacy Mode = iota
	// ModeTokenized stores separate payment instrument records.
	ModeTokenized
)

func (m Mode) String() string {
	if m == ModeTokenized {
		return "tokenized"
	}
	return "legacy"
}

// Details carries the card fields exactly as submitted on the checkout form.
// The number is masked before anything is persisted.
type Details struct {
	Method     string
	NameOnCard string
	Number     string
	CVC        string
	Expiry     string // "MM/YYYY"
	Street     string
	Zip        string
}

var ErrInvalidExpiry = errors.New("invalid_expiry")

// ParseExpiry parses an "MM/YYYY" expiry into the first day of that month (UTC).
func ParseExpiry(expiry string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(expiry), "/")
	if len(parts) != 2 {
		return time.Time{}, ErrInvalidExpiry
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, ErrInvalidExpiry
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 4 {
		return time.Time{}, ErrInvalidExpiry
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), nil
}

// FormatExpiry renders an expiry date back to "MM/YYYY" for comparison
// against submitted values.
func FormatExpiry(expiry time.Time) string {
	return fmt.Sprintf("%02d/%d", int(expiry.Month()), expiry.Year())
}

// SearchExpiry drops the leading zero from the month ("02/2028" -> "2/2028"),
// matching how stored instrument masks spell the expiry.
func SearchExpiry(expiry string) string {
	if strings.HasPrefix(expiry, "0") {
		return expiry[1:]
	}
	return expiry
}

// LastFour returns the last four digits of the card number, spaces stripped.
func LastFour(number string) string {
	digits := strings.ReplaceAll(strings.TrimSpace(number), " ", "")
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

// Mask replaces all but the last four digits with asterisks.
func Mask(number string) string {
	digits := strings.ReplaceAll(strings.TrimSpace(number), " ", "")
	last := LastFour(digits)
	if len(digits) <= 4 {
		return last
	}
	return strings.Repeat("*", len(digits)-4) + last
}
