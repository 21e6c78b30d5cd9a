// Package models provides the data structures shared across the parsing
// pipeline and its consumers.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type is the closed set of transaction kinds the extractors can produce.
// There is deliberately no "unknown" variant: a fragment that cannot be
// typed and field-extracted is dropped, never tagged.
type Type string

const (
	TypeReceive    Type = "receive"
	TypeSend       Type = "send"
	TypePayment    Type = "payment"
	TypeWithdrawal Type = "withdrawal"
	TypeDeposit    Type = "deposit"
)

// Valid reports whether t is one of the five known transaction types.
func (t Type) Valid() bool {
	switch t {
	case TypeReceive, TypeSend, TypePayment, TypeWithdrawal, TypeDeposit:
		return true
	}
	return false
}

// DefaultCurrency is assumed when a fragment carries no explicit
// currency indicator.
const DefaultCurrency = "UGX"

// Transaction is the normalized record extracted from one SMS fragment.
// It is constructed once at parse time and never mutated afterwards;
// UI-side categorization lives in a separate table keyed by ID (see the
// tags package), not on this struct.
type Transaction struct {
	// ID is unique within a single parse batch only. It is a fresh UUID
	// per call and NOT stable across re-parses of the same text.
	ID       string          `json:"id"`
	Type     Type            `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`

	// Sender is set on receive (and MTN deposit), Recipient on send and
	// payment. This is a parsing convention, not an enforced invariant.
	Sender    string `json:"sender,omitempty"`
	Recipient string `json:"recipient,omitempty"`

	Fee     decimal.Decimal `json:"fee"`
	Tax     decimal.Decimal `json:"tax"`
	Balance decimal.Decimal `json:"balance"`

	// Reference is the provider-assigned transaction id ("TID nnn" in the
	// legacy format, "Transaction Id: x" in the MTN format). Empty means
	// the source text carried none.
	Reference string `json:"reference,omitempty"`

	// Timestamp is taken from an explicit date substring when one was
	// found, otherwise it is the parse time. ExplicitDate distinguishes
	// the two so consumers can treat defaulted timestamps as suspect.
	Timestamp    time.Time `json:"timestamp"`
	ExplicitDate bool      `json:"explicitDate"`

	// AgentID is captured on withdrawal/deposit, PhoneNumber on send and
	// receive, when the text carries them.
	AgentID     string `json:"agentId,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// Counterparty returns the relevant party name for the transaction type.
func (t *Transaction) Counterparty() string {
	if t.Sender != "" {
		return t.Sender
	}
	return t.Recipient
}

// FormattedTime returns the timestamp as an ISO-8601 string, the form
// downstream consumers and exports use.
func (t *Transaction) FormattedTime() string {
	return t.Timestamp.Format(time.RFC3339)
}

// DateKey returns the calendar date portion of the timestamp, used as the
// bucket key for per-date histograms.
func (t *Transaction) DateKey() string {
	return t.Timestamp.Format("2006-01-02")
}
