// Package legacyparser extracts transactions from the older TID-based
// notification format (Airtel-style in the sample corpus).
//
// The grammar is asymmetric with the MTN one: here the TID reference is a
// hard requirement and a fragment without it is rejected outright.
package legacyparser

import (
	"regexp"
	"strings"

	"kibuuka/momo-csv/internal/currencyutils"
	"kibuuka/momo-csv/internal/dateutils"
	"kibuuka/momo-csv/internal/models"
	"kibuuka/momo-csv/internal/parsererror"
)

const grammarName = "legacy"

var (
	tidPattern    = regexp.MustCompile(`(?i)TID\s+(\d+)`)
	amountPattern = regexp.MustCompile(`(?i)(?:UGX|Shs|KES|TZS)\s*([\d,]+(?:\.\d+)?)`)

	balancePattern = regexp.MustCompile(`(?i)Bal\.?\s+(?:UGX|Shs|KES|TZS)\s*([\d,]+(?:\.\d+)?)`)
	feePattern     = regexp.MustCompile(`(?i)Fee\s+(?:UGX|Shs)\s*([\d,]+(?:\.\d+)?)`)
	taxPattern     = regexp.MustCompile(`(?i)Tax\s+(?:UGX|Shs)\s*([\d,]+(?:\.\d+)?)`)
	chargePattern  = regexp.MustCompile(`(?i)Charge\s+(?:UGX|Shs)\s*([\d,]+(?:\.\d+)?)`)
	agentPattern   = regexp.MustCompile(`(?i)Agent ID:\s*(\d+)`)

	receivePhonePattern  = regexp.MustCompile(`(?i)\bfrom\s+(\d{9})`)
	receiveSenderPattern = regexp.MustCompile(`(?i)\bfrom\s+\d{9},\s*([^.]+)`)
	sendRecipientPattern = regexp.MustCompile(`(?i)\bto\s+([^\d]+?)\s*(\d{9,10})`)
	payRecipientPattern  = regexp.MustCompile(`(?i)\bto\s+([^.\d]+)`)
)

// TryParse attempts to extract a transaction from one fragment using the
// legacy grammar. It returns a typed parsererror when the fragment lacks
// a required field; the pipeline treats that as "drop and move on", not
// as a failure.
func TryParse(fragment string) (*models.Transaction, error) {
	tid := tidPattern.FindStringSubmatch(fragment)
	if tid == nil {
		return nil, &parsererror.MissingFieldError{Grammar: grammarName, Field: "reference"}
	}

	amountMatch := amountPattern.FindStringSubmatch(fragment)
	if amountMatch == nil {
		return nil, &parsererror.MissingFieldError{Grammar: grammarName, Field: "amount"}
	}
	amount, err := currencyutils.ParseAmount(amountMatch[1])
	if err != nil {
		return nil, &parsererror.UnparseableError{Grammar: grammarName, Field: "amount", Value: amountMatch[1], Err: err}
	}

	tx := &models.Transaction{
		Type:      detectType(fragment),
		Amount:    amount,
		Currency:  currencyutils.InferCurrency(fragment),
		Reference: tid[1],
	}

	if m := balancePattern.FindStringSubmatch(fragment); m != nil {
		if bal, err := currencyutils.ParseAmount(m[1]); err == nil {
			tx.Balance = bal
		}
	}

	switch tx.Type {
	case models.TypeReceive:
		if m := receivePhonePattern.FindStringSubmatch(fragment); m != nil {
			tx.PhoneNumber = m[1]
		}
		if m := receiveSenderPattern.FindStringSubmatch(fragment); m != nil {
			tx.Sender = cleanName(m[1])
		}

	case models.TypeSend:
		if m := sendRecipientPattern.FindStringSubmatch(fragment); m != nil {
			tx.Recipient = cleanName(m[1])
			tx.PhoneNumber = m[2]
		}
		extractFee(fragment, feePattern, tx)
		extractDate(fragment, tx)

	case models.TypeWithdrawal:
		if m := agentPattern.FindStringSubmatch(fragment); m != nil {
			tx.AgentID = m[1]
		}
		extractFee(fragment, feePattern, tx)
		if m := taxPattern.FindStringSubmatch(fragment); m != nil {
			if tax, err := currencyutils.ParseAmount(m[1]); err == nil {
				tx.Tax = tax
			}
		}
		extractDate(fragment, tx)

	case models.TypePayment:
		if m := payRecipientPattern.FindStringSubmatch(fragment); m != nil {
			tx.Recipient = cleanName(m[1])
		}
		extractFee(fragment, chargePattern, tx)
		extractDate(fragment, tx)

	case models.TypeDeposit:
		// Deposits in this format carry no fee or tax fields.
		if m := agentPattern.FindStringSubmatch(fragment); m != nil {
			tx.AgentID = m[1]
		}
		extractDate(fragment, tx)
	}

	return tx, nil
}

// detectType maps marker vocabulary to a transaction type. The precedence
// order matters: "received" must win before the bare "sent" fallback.
// A fragment matching none of the markers defaults to send.
func detectType(fragment string) models.Type {
	lower := strings.ToLower(fragment)
	switch {
	case strings.Contains(lower, "received"):
		return models.TypeReceive
	case strings.Contains(lower, "sent"):
		return models.TypeSend
	case strings.Contains(lower, "paid"):
		return models.TypePayment
	case strings.Contains(lower, "withdrawn"):
		return models.TypeWithdrawal
	case strings.Contains(lower, "cash deposit"),
		strings.Contains(lower, "deposited"),
		strings.Contains(lower, "deposit"):
		return models.TypeDeposit
	default:
		return models.TypeSend
	}
}

func extractFee(fragment string, pattern *regexp.Regexp, tx *models.Transaction) {
	if m := pattern.FindStringSubmatch(fragment); m != nil {
		if fee, err := currencyutils.ParseAmount(m[1]); err == nil {
			tx.Fee = fee
		}
	}
}

// extractDate fills the timestamp from a "D-Month-YYYY H:MM" phrase. An
// absent or malformed date leaves the zero time for the normalizer to
// default, a silent fallback the consumers must tolerate.
func extractDate(fragment string, tx *models.Transaction) {
	if t, ok := dateutils.ExtractLegacyDate(fragment); ok {
		tx.Timestamp = t
		tx.ExplicitDate = true
	}
}

func cleanName(name string) string {
	return strings.Trim(strings.TrimSpace(name), ".,")
}
