// Package classifier decides which extraction grammar should attempt a
// fragment first.
//
// This is an OR-of-signals heuristic, not a strict format match: a false
// positive only costs an extra extraction attempt, because the MTN
// extractor itself rejects fragments missing its required fields and the
// pipeline then falls back to the legacy grammar.
package classifier

import "strings"

// Phrases that only ever appear in MTN Mobile Money notifications.
var mtnPhrases = []string{
	"y'ello",
	"mtn mobile money",
	"dial *165*3#",
	"momo app",
	"do not share your pin",
	"thank you for using",
	"fee:ugx",
	"transaction id:",
	"mobile money balance is now",
}

// IsMTN reports whether the fragment looks like MTN Mobile Money phrasing
// rather than the legacy TID-based format.
func IsMTN(fragment string) bool {
	lower := strings.ToLower(fragment)

	for _, phrase := range mtnPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}

	if strings.Contains(lower, "you have") && strings.Contains(lower, "ugx") {
		return true
	}

	if strings.Contains(lower, "ugx") &&
		(strings.Contains(lower, "id:") || strings.Contains(lower, "transaction id:")) {
		return true
	}

	return false
}
