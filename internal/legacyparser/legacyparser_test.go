package legacyparser

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kibuuka/momo-csv/internal/models"
	"kibuuka/momo-csv/internal/parsererror"
)

func TestTryParseReceive(t *testing.T) {
	fragment := "RECEIVED. TID 121327207176. UGX 103,000 from 755352144, GODFREY MUYIMBWA. Bal UGX 105,342."

	tx, err := TryParse(fragment)
	require.NoError(t, err)

	assert.Equal(t, models.TypeReceive, tx.Type)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(103000)))
	assert.Equal(t, "UGX", tx.Currency)
	assert.Equal(t, "121327207176", tx.Reference)
	assert.Equal(t, "755352144", tx.PhoneNumber)
	assert.Equal(t, "GODFREY MUYIMBWA", tx.Sender)
	assert.True(t, tx.Balance.Equal(decimal.NewFromInt(105342)))
	assert.False(t, tx.ExplicitDate)
}

func TestTryParseSendWithFeeAndDate(t *testing.T) {
	fragment := "SENT.TID 121276773406. UGX 4,000 to KASUBO PRISCILLADEBORAH 0755897066. Fee UGX 100. Bal UGX 31,522. Date 13-April-2025 12:14."

	tx, err := TryParse(fragment)
	require.NoError(t, err)

	assert.Equal(t, models.TypeSend, tx.Type)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(4000)))
	assert.True(t, tx.Fee.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "KASUBO PRISCILLADEBORAH", tx.Recipient)
	assert.Equal(t, "0755897066", tx.PhoneNumber)

	require.True(t, tx.ExplicitDate)
	want := time.Date(2025, time.April, 13, 12, 14, 0, 0, time.UTC)
	assert.True(t, tx.Timestamp.Equal(want), "got %s", tx.Timestamp)
}

func TestTryParseMissingTIDRejected(t *testing.T) {
	fragment := "WITHDRAWN. UGX20,000 with Agent ID: 256593.Fee UGX 880."

	tx, err := TryParse(fragment)
	assert.Nil(t, tx)

	var missing *parsererror.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "reference", missing.Field)
}

func TestTryParseMissingAmountRejected(t *testing.T) {
	tx, err := TryParse("SENT. TID 445566. to PETER OKELLO 0700123456.")
	assert.Nil(t, tx)

	var missing *parsererror.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "amount", missing.Field)
}

func TestTryParseWithdrawal(t *testing.T) {
	fragment := "WITHDRAWN. TID 9981. UGX 50,000 with Agent ID: 256593. Fee UGX 880. Tax Shs 500. Date 2-May-2025 9:05."

	tx, err := TryParse(fragment)
	require.NoError(t, err)

	assert.Equal(t, models.TypeWithdrawal, tx.Type)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, "256593", tx.AgentID)
	assert.True(t, tx.Fee.Equal(decimal.NewFromInt(880)))
	assert.True(t, tx.Tax.Equal(decimal.NewFromInt(500)))
	assert.True(t, tx.ExplicitDate)
}

func TestTryParsePayment(t *testing.T) {
	fragment := "PAID. TID 778899. UGX 12,500 to SHELL KIREKA. Charge UGX 300. Date 1-June-2025 18:45."

	tx, err := TryParse(fragment)
	require.NoError(t, err)

	assert.Equal(t, models.TypePayment, tx.Type)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(12500)))
	assert.Equal(t, "SHELL KIREKA", tx.Recipient)
	assert.True(t, tx.Fee.Equal(decimal.NewFromInt(300)))
}

func TestTryParseDepositNoFeeTax(t *testing.T) {
	fragment := "DEPOSITED. TID 33445. UGX 200,000 cash deposit with Agent ID: 778812. Date 7-March-2025 10:00."

	tx, err := TryParse(fragment)
	require.NoError(t, err)

	assert.Equal(t, models.TypeDeposit, tx.Type)
	assert.Equal(t, "778812", tx.AgentID)
	assert.True(t, tx.Fee.IsZero())
	assert.True(t, tx.Tax.IsZero())
}

func TestTryParseCurrencyInference(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{
			name:     "kes marker",
			fragment: "RECEIVED. TID 1001. KES 5,000 from 712345678, WANJIKU N.",
			want:     "KES",
		},
		{
			name:     "tzs marker",
			fragment: "RECEIVED. TID 1002. TZS 80,000 from 755111222, NEEMA J.",
			want:     "TZS",
		},
		{
			// "Shs" names no country; the currency stays empty here and
			// the pipeline normalizer fills the configured default.
			name:     "shs marker left for normalizer",
			fragment: "RECEIVED. TID 1003. Shs 9,000 from 700123456, ODONG P.",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := TryParse(tt.fragment)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tx.Currency)
		})
	}
}

func TestTryParseMalformedDateKeepsZeroTime(t *testing.T) {
	// An unparseable date phrase falls back silently: zero time, not an
	// error, and the normalizer later substitutes "now".
	fragment := "SENT. TID 5555. UGX 7,000 to AMONG BETTY 0788112233. Date 99-Nowhere-20."

	tx, err := TryParse(fragment)
	require.NoError(t, err)
	assert.False(t, tx.ExplicitDate)
	assert.True(t, tx.Timestamp.IsZero())
}

func TestDetectTypeDefaultsToSend(t *testing.T) {
	assert.Equal(t, models.TypeSend, detectType("TID 1. UGX 100 mystery message"))
}

func TestDetectTypePrecedence(t *testing.T) {
	// "received" wins even when "sent" also appears later in the text.
	assert.Equal(t, models.TypeReceive, detectType("RECEIVED money you sent earlier"))
	assert.Equal(t, models.TypeDeposit, detectType("cash deposit completed"))
}
