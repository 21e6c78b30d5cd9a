// Package currencyutils provides amount string handling and currency
// inference shared by both extraction grammars.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Known currency codes the legacy grammar can infer from message text.
// The MTN grammar always assumes UGX.
const (
	CurrencyUGX = "UGX"
	CurrencyKES = "KES"
	CurrencyTZS = "TZS"
)

// StandardizeAmount strips the decoration mobile-money messages put around
// numeric literals: comma thousands separators, currency markers and
// stray whitespace. "UGX 103,000" becomes "103000".
func StandardizeAmount(amountStr string) string {
	s := strings.TrimSpace(amountStr)
	for _, marker := range []string{"UGX", "Shs", "KES", "TZS", "ugx", "shs", "kes", "tzs"} {
		s = strings.ReplaceAll(s, marker, "")
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

// ParseAmount converts an amount literal, possibly with comma thousands
// separators and a currency marker, into a decimal with no precision loss.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount %q: %w", amountStr, err)
	}
	return amount, nil
}

// InferCurrency decides the currency code from the fragment vocabulary.
// It returns the empty string when no explicit ISO code appears (the
// "Shs" marker names no country); the pipeline normalizer substitutes
// the configured default in that case.
func InferCurrency(fragment string) string {
	upper := strings.ToUpper(fragment)
	switch {
	case strings.Contains(upper, CurrencyKES):
		return CurrencyKES
	case strings.Contains(upper, CurrencyTZS):
		return CurrencyTZS
	case strings.Contains(upper, CurrencyUGX):
		return CurrencyUGX
	default:
		return ""
	}
}
