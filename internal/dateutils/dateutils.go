// Package dateutils provides the date parsing shared by the extraction
// grammars and downstream reporting.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Layouts for the date phrasings observed in provider messages.
const (
	// LayoutLegacy matches the legacy format's "13-April-2025 12:14".
	LayoutLegacy = "2-January-2006 15:04"
	// LayoutMTN matches the MTN format's "2025-05-01 10:00:00".
	LayoutMTN = "2006-01-02 15:04:05"
	// LayoutISO is the date-only ISO form used for histogram keys.
	LayoutISO = "2006-01-02"
)

var (
	legacyDatePattern = regexp.MustCompile(`(?i)(\d{1,2}-[A-Za-z]+-\d{4})\s+(\d{1,2}:\d{2})`)
	mtnDatePattern    = regexp.MustCompile(`(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})`)
)

// ExtractLegacyDate finds and parses a "D-Month-YYYY H:MM" substring.
// The boolean is false when no parseable date phrase is present.
func ExtractLegacyDate(fragment string) (time.Time, bool) {
	m := legacyDatePattern.FindStringSubmatch(fragment)
	if m == nil {
		return time.Time{}, false
	}
	t, err := time.Parse(LayoutLegacy, m[1]+" "+m[2])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ExtractMTNDate finds and parses a "YYYY-MM-DD HH:MM:SS" substring.
func ExtractMTNDate(fragment string) (time.Time, bool) {
	m := mtnDatePattern.FindStringSubmatch(fragment)
	if m == nil {
		return time.Time{}, false
	}
	t, err := time.Parse(LayoutMTN, m[1])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseDate attempts a handful of common layouts for dates arriving from
// outside the SMS grammars (stored batches, CLI flags).
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	for _, layout := range []string{time.RFC3339, LayoutMTN, LayoutISO, LayoutLegacy} {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}
