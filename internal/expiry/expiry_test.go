package expiry

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	if got := Format(3, 2026); got != "03/2026" {
		t.Fatalf("Format got %s want %s", got, "03/2026")
	}
	if got := Format(12, 2030); got != "12/2030" {
		t.Fatalf("Format got %s want %s", got, "12/2030")
	}
}

func TestParse(t *testing.T) {
	month, year, err := Parse("03/2026")
	if err != nil || month != 3 || year != 2026 {
		t.Fatalf("Parse(03/2026) got (%d,%d,%v)", month, year, err)
	}

	// Unpadded month is tolerated.
	month, year, err = Parse("3/2026")
	if err != nil || month != 3 || year != 2026 {
		t.Fatalf("Parse(3/2026) got (%d,%d,%v)", month, year, err)
	}

	for _, in := range []string{"", "032026", "13/2026", "00/2026", "aa/2026", "03/abcd", "03/-1", "03/2026/01"} {
		if _, _, err := Parse(in); err == nil {
			t.Fatalf("Parse(%q) expected error", in)
		}
	}
}

func TestCutoff(t *testing.T) {
	got := Cutoff(12, 2029, time.UTC)
	want := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Cutoff got %v want %v", got, want)
	}
}

func TestInFuture(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	// Current month is still valid; the card works through the end of June.
	if !InFuture(6, 2026, now) {
		t.Fatalf("expected current month to be valid")
	}
	// Previous month is expired.
	if InFuture(5, 2026, now) {
		t.Fatalf("expected previous month to be expired")
	}
	// Last instant of the expiry month is still valid.
	endOfJune := time.Date(2026, time.June, 30, 23, 59, 59, 999999999, time.UTC)
	if !InFuture(6, 2026, endOfJune) {
		t.Fatalf("expected end of expiry month to be valid")
	}
	// First instant of the following month is not.
	if InFuture(6, 2026, time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected first instant after expiry month to be expired")
	}
	// December rollover.
	if !InFuture(12, 2026, time.Date(2026, time.December, 31, 23, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected December card to be valid on Dec 31")
	}
}
