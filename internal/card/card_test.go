package card

import (
	"testing"
	"time"
)

func TestParseExpiry(t *testing.T) {
	got, err := ParseExpiry("02/2028")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2028, time.February, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseExpiryInvalid(t *testing.T) {
	for _, input := range []string{"", "13/2028", "00/2028", "2/28", "02-2028", "feb/2028"} {
		if _, err := ParseExpiry(input); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}

func TestFormatExpiryRoundTrip(t *testing.T) {
	parsed, err := ParseExpiry("02/2028")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatExpiry(parsed); got != "02/2028" {
		t.Fatalf("expected 02/2028, got %s", got)
	}
}

func TestSearchExpiry(t *testing.T) {
	if got := SearchExpiry("02/2028"); got != "2/2028" {
		t.Fatalf("expected 2/2028, got %s", got)
	}
	if got := SearchExpiry("11/2027"); got != "11/2027" {
		t.Fatalf("expected 11/2027, got %s", got)
	}
}

func TestLastFour(t *testing.T) {
	if got := LastFour("5413 3300 8909 9999"); got != "9999" {
		t.Fatalf("expected 9999, got %s", got)
	}
	if got := LastFour("123"); got != "123" {
		t.Fatalf("expected 123, got %s", got)
	}
}

func TestMask(t *testing.T) {
	if got := Mask("5413330089099999"); got != "************9999" {
		t.Fatalf("unexpected mask: %s", got)
	}
	if got := Mask("9999"); got != "9999" {
		t.Fatalf("unexpected mask for short number: %s", got)
	}
}
