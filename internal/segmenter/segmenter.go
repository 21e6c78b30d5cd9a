// Package segmenter splits a block of pasted SMS text into candidate
// message fragments.
//
// Provider messages arrive concatenated with no reliable delimiter; the
// only usable boundary evidence is the leading keyword of each message
// ("SENT", "You have received", a Y'ello greeting). The splitter cuts the
// text at every boundary-marker position but keeps the marker attached to
// the fragment that follows it, because the marker is the primary typing
// evidence for the extractors downstream.
package segmenter

import (
	"regexp"
	"strings"
)

// DefaultMinFragmentLength filters out split artifacts. Anything shorter
// is almost never a real message body.
const DefaultMinFragmentLength = 15

// Boundary markers, longest phrasings first so the regexp engine consumes
// "You have received" as one marker instead of cutting again at the bare
// "received" inside it. Each phrase alternative runs through the
// participle for the same reason.
var boundaryPattern = regexp.MustCompile(strings.Join([]string{
	`(?i)Y'ello[^.]*?You have (?:sent|received|paid|withdrawn|deposited)`,
	`(?i)You have (?:sent|received|paid|withdrawn|deposited)`,
	`(?i)\b(?:SENT|RECEIVED|PAID|WITHDRAWN|DEPOSITED)\b`,
}, "|"))

// Segmenter carries the configurable minimum fragment length.
type Segmenter struct {
	minLength int
}

// New returns a Segmenter. A non-positive minLength falls back to
// DefaultMinFragmentLength.
func New(minLength int) *Segmenter {
	if minLength <= 0 {
		minLength = DefaultMinFragmentLength
	}
	return &Segmenter{minLength: minLength}
}

// Split cuts text into ordered fragments at boundary-marker positions.
// Text before the first marker is kept as a fragment of its own; the
// extractors reject it if it is not a real message. Split never fails: a
// marker-free text yields either zero fragments or the whole string as
// one fragment.
func (s *Segmenter) Split(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	matches := boundaryPattern.FindAllStringIndex(trimmed, -1)
	if len(matches) == 0 {
		if len(trimmed) < s.minLength {
			return nil
		}
		return []string{trimmed}
	}

	var cuts []int
	if matches[0][0] != 0 {
		cuts = append(cuts, 0)
	}
	for _, m := range matches {
		cuts = append(cuts, m[0])
	}

	var fragments []string
	for i, start := range cuts {
		end := len(trimmed)
		if i+1 < len(cuts) {
			end = cuts[i+1]
		}
		fragment := strings.TrimSpace(trimmed[start:end])
		if len(fragment) < s.minLength {
			continue
		}
		fragments = append(fragments, fragment)
	}
	return fragments
}

// Split is the package-level convenience using the default minimum length.
func Split(text string) []string {
	return New(0).Split(text)
}
