package dateutils

import (
	"testing"
	"time"
)

func TestExtractLegacyDate(t *testing.T) {
	got, ok := ExtractLegacyDate("Bal UGX 31,522. Date 13-April-2025 12:14.")
	if !ok {
		t.Fatal("expected a date match")
	}
	want := time.Date(2025, time.April, 13, 12, 14, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestExtractLegacyDateSingleDigits(t *testing.T) {
	got, ok := ExtractLegacyDate("Date 2-May-2025 9:05.")
	if !ok {
		t.Fatal("expected a date match")
	}
	want := time.Date(2025, time.May, 2, 9, 5, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestExtractLegacyDateAbsent(t *testing.T) {
	if _, ok := ExtractLegacyDate("no date in here"); ok {
		t.Error("expected no match")
	}
	// A malformed month name fails the parse, not just the pattern.
	if _, ok := ExtractLegacyDate("Date 13-Aprilis-2025 12:14."); ok {
		t.Error("expected unparseable month to be rejected")
	}
}

func TestExtractMTNDate(t *testing.T) {
	got, ok := ExtractMTNDate("from JANE DOE on 2025-05-01 10:00:00")
	if !ok {
		t.Fatal("expected a date match")
	}
	want := time.Date(2025, time.May, 1, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestExtractMTNDateAbsent(t *testing.T) {
	if _, ok := ExtractMTNDate("on 01/05/2025 at 10:00"); ok {
		t.Error("expected no match for non-ISO form")
	}
}

func TestParseDate(t *testing.T) {
	tests := []string{
		"2025-05-01T10:00:00Z",
		"2025-05-01 10:00:00",
		"2025-05-01",
		"13-April-2025 12:14",
	}
	for _, in := range tests {
		if _, err := ParseDate(in); err != nil {
			t.Errorf("ParseDate(%q) returned error: %v", in, err)
		}
	}

	if _, err := ParseDate("yesterday"); err == nil {
		t.Error("expected error for unparseable date")
	}
}
