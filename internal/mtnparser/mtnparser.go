// Package mtnparser extracts transactions from MTN Mobile Money phrasing.
//
// Unlike the legacy grammar, the provider reference ("Transaction Id:") is
// optional here; the only hard requirement is an amount phrase. Every
// amount is UGX, the format never states another currency.
package mtnparser

import (
	"regexp"
	"strings"

	"kibuuka/momo-csv/internal/currencyutils"
	"kibuuka/momo-csv/internal/dateutils"
	"kibuuka/momo-csv/internal/models"
	"kibuuka/momo-csv/internal/parsererror"
)

const grammarName = "mtn"

const amountLiteral = `([\d,]+(?:\.\d+)?)`

// Per-type amount phrasings, tried in order; first match wins. The long
// "you have ..." form is listed before the bare participle so the greeting
// variant is preferred when both would match.
var amountPatterns = map[models.Type][]*regexp.Regexp{
	models.TypeWithdrawal: {
		regexp.MustCompile(`(?i)you have withdrawn\s+ugx\s*` + amountLiteral),
		regexp.MustCompile(`(?i)withdrawn\s+ugx\s*` + amountLiteral),
	},
	models.TypeDeposit: {
		regexp.MustCompile(`(?i)you have deposited\s+ugx\s*` + amountLiteral),
		regexp.MustCompile(`(?i)deposited\s+ugx\s*` + amountLiteral),
	},
	models.TypePayment: {
		regexp.MustCompile(`(?i)you have paid\s+ugx\s*` + amountLiteral),
		regexp.MustCompile(`(?i)paid\s+ugx\s*` + amountLiteral),
	},
	models.TypeReceive: {
		regexp.MustCompile(`(?i)you have received\s+ugx\s*` + amountLiteral),
		regexp.MustCompile(`(?i)received\s+ugx\s*` + amountLiteral),
	},
	models.TypeSend: {
		regexp.MustCompile(`(?i)you have sent\s+ugx\s*` + amountLiteral),
		regexp.MustCompile(`(?i)sent\s+ugx\s*` + amountLiteral),
	},
}

var (
	// Balance phrasings, tried in order; the bare "balance is:" form is a
	// last resort because it omits the currency marker.
	balancePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:mobile money balance is now|balance is now|new balance(?: is)?)[:\s]*ugx\s*` + amountLiteral),
		regexp.MustCompile(`(?i)balance is:\s*` + amountLiteral),
	}

	referencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)transaction id:\s*([A-Za-z0-9]+)`),
		regexp.MustCompile(`(?i)\bid:\s*([A-Za-z0-9]+)`),
	}

	feePattern = regexp.MustCompile(`(?i)fee:\s*ugx\s*` + amountLiteral)
	taxPattern = regexp.MustCompile(`(?i)tax:\s*ugx\s*` + amountLiteral)

	// Receive: "from NAME, 256700000000" or the name alone up to " on ",
	// punctuation or end of fragment.
	receiveNamePhonePattern = regexp.MustCompile(`(?i)\bfrom\s+([^,]+?),\s*(\d{9,12})`)
	receiveNamePattern      = regexp.MustCompile(`(?i)\bfrom\s+([A-Za-z][A-Za-z .'-]*?)(?:\s+on\b|[.,]|$)`)

	depositSenderPattern = regexp.MustCompile(`(?i)\bfrom\s+([A-Za-z][A-Za-z .'-]*?)(?:\s+on\b|\s*\d|[.,]|$)`)
	payRecipientPattern  = regexp.MustCompile(`(?i)\bto\s+([A-Za-z][A-Za-z .'-]*?)(?:\s+on\b|\s*\d|[.,]|$)`)
	sendPhonePattern     = regexp.MustCompile(`(?i)\bto\s+(\d{7,12})`)

	zeroReceivePattern = regexp.MustCompile(`(?i)received\s+ugx\s*0(?:\.0+)?\b`)
)

// TryParse attempts to extract a transaction from one fragment using the
// MTN grammar. A fragment without any amount phrase is rejected unless it
// explicitly states a zero-UGX receipt, the one narrow case where a
// literal zero amount is accepted.
func TryParse(fragment string) (*models.Transaction, error) {
	txType := detectType(fragment)

	tx := &models.Transaction{
		Type:     txType,
		Currency: currencyutils.CurrencyUGX,
	}

	found := false
	for _, pattern := range amountPatterns[txType] {
		if m := pattern.FindStringSubmatch(fragment); m != nil {
			amount, err := currencyutils.ParseAmount(m[1])
			if err != nil {
				return nil, &parsererror.UnparseableError{Grammar: grammarName, Field: "amount", Value: m[1], Err: err}
			}
			tx.Amount = amount
			found = true
			break
		}
	}

	if (!found || tx.Amount.IsZero()) && !isExplicitZeroReceive(fragment, txType) {
		return nil, &parsererror.NoAmountError{Grammar: grammarName}
	}

	for _, pattern := range balancePatterns {
		if m := pattern.FindStringSubmatch(fragment); m != nil {
			if bal, err := currencyutils.ParseAmount(m[1]); err == nil {
				tx.Balance = bal
			}
			break
		}
	}

	for _, pattern := range referencePatterns {
		if m := pattern.FindStringSubmatch(fragment); m != nil {
			tx.Reference = m[1]
			break
		}
	}

	if m := feePattern.FindStringSubmatch(fragment); m != nil {
		if fee, err := currencyutils.ParseAmount(m[1]); err == nil {
			tx.Fee = fee
		}
	}
	if m := taxPattern.FindStringSubmatch(fragment); m != nil {
		if tax, err := currencyutils.ParseAmount(m[1]); err == nil {
			tx.Tax = tax
		}
	}

	if t, ok := dateutils.ExtractMTNDate(fragment); ok {
		tx.Timestamp = t
		tx.ExplicitDate = true
	}

	switch txType {
	case models.TypeReceive:
		if m := receiveNamePhonePattern.FindStringSubmatch(fragment); m != nil {
			tx.Sender = cleanName(m[1])
			tx.PhoneNumber = m[2]
		} else if m := receiveNamePattern.FindStringSubmatch(fragment); m != nil {
			tx.Sender = cleanName(m[1])
		}
	case models.TypeDeposit:
		if m := depositSenderPattern.FindStringSubmatch(fragment); m != nil {
			tx.Sender = cleanName(m[1])
		}
	case models.TypePayment:
		if m := payRecipientPattern.FindStringSubmatch(fragment); m != nil {
			tx.Recipient = cleanName(m[1])
		}
	case models.TypeSend:
		if m := sendPhonePattern.FindStringSubmatch(fragment); m != nil {
			tx.PhoneNumber = m[1]
		}
	}

	return tx, nil
}

// detectType follows the same convention as the legacy grammar: substring
// tests in fixed precedence, defaulting to send.
func detectType(fragment string) models.Type {
	lower := strings.ToLower(fragment)
	switch {
	case strings.Contains(lower, "you have withdrawn"), strings.Contains(lower, "withdrawn ugx"):
		return models.TypeWithdrawal
	case strings.Contains(lower, "you have deposited"), strings.Contains(lower, "deposited ugx"):
		return models.TypeDeposit
	case strings.Contains(lower, "you have paid"), strings.Contains(lower, "paid ugx"):
		return models.TypePayment
	case strings.Contains(lower, "you have received"), strings.Contains(lower, "received ugx"):
		return models.TypeReceive
	case strings.Contains(lower, "you have sent"), strings.Contains(lower, "sent ugx"):
		return models.TypeSend
	default:
		return models.TypeSend
	}
}

func isExplicitZeroReceive(fragment string, txType models.Type) bool {
	return txType == models.TypeReceive && zeroReceivePattern.MatchString(fragment)
}

func cleanName(name string) string {
	return strings.Trim(strings.TrimSpace(name), ".,")
}
