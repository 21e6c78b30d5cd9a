package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTypeValid(t *testing.T) {
	for _, txType := range []Type{TypeReceive, TypeSend, TypePayment, TypeWithdrawal, TypeDeposit} {
		assert.True(t, txType.Valid())
	}
	assert.False(t, Type("unknown").Valid())
	assert.False(t, Type("").Valid())
}

func TestCounterparty(t *testing.T) {
	receive := Transaction{Type: TypeReceive, Sender: "JANE DOE"}
	assert.Equal(t, "JANE DOE", receive.Counterparty())

	send := Transaction{Type: TypeSend, Recipient: "KASUBO"}
	assert.Equal(t, "KASUBO", send.Counterparty())

	neither := Transaction{Type: TypeSend}
	assert.Empty(t, neither.Counterparty())
}

func TestFormattedTime(t *testing.T) {
	tx := Transaction{Timestamp: time.Date(2025, time.April, 13, 12, 14, 0, 0, time.UTC)}
	assert.Equal(t, "2025-04-13T12:14:00Z", tx.FormattedTime())
	assert.Equal(t, "2025-04-13", tx.DateKey())
}

func TestTransactionZeroAmounts(t *testing.T) {
	var tx Transaction
	assert.True(t, tx.Amount.IsZero())
	assert.True(t, tx.Fee.IsZero())
	assert.True(t, tx.Balance.Equal(decimal.Zero))
}
