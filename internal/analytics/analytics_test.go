package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kibuuka/momo-csv/internal/models"
)

func tx(txType models.Type, amount, fee int64, counterparty string, dated bool) models.Transaction {
	t := models.Transaction{
		ID:       counterparty + "-" + string(txType),
		Type:     txType,
		Amount:   decimal.NewFromInt(amount),
		Fee:      decimal.NewFromInt(fee),
		Currency: "UGX",
		Timestamp: time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC).
			Add(time.Duration(amount) * time.Millisecond),
		ExplicitDate: dated,
	}
	if txType == models.TypeReceive || txType == models.TypeDeposit {
		t.Sender = counterparty
	} else {
		t.Recipient = counterparty
	}
	return t
}

func sampleBatch() []models.Transaction {
	return []models.Transaction{
		tx(models.TypeReceive, 103000, 0, "GODFREY", true),
		tx(models.TypeReceive, 50000, 0, "JANE", true),
		tx(models.TypeSend, 4000, 100, "KASUBO", true),
		tx(models.TypeSend, 6000, 200, "KASUBO", false),
		tx(models.TypePayment, 12500, 300, "SHELL", false),
		tx(models.TypeDeposit, 200000, 0, "AGENT", true),
	}
}

func TestTotalsByType(t *testing.T) {
	totals := TotalsByType(sampleBatch())

	assert.True(t, totals[models.TypeReceive].Equal(decimal.NewFromInt(153000)))
	assert.True(t, totals[models.TypeSend].Equal(decimal.NewFromInt(10000)))
	assert.True(t, totals[models.TypePayment].Equal(decimal.NewFromInt(12500)))
	assert.True(t, totals[models.TypeDeposit].Equal(decimal.NewFromInt(200000)))
	_, hasWithdrawal := totals[models.TypeWithdrawal]
	assert.False(t, hasWithdrawal)
}

func TestTotalFeesAndTaxes(t *testing.T) {
	batch := sampleBatch()
	assert.True(t, TotalFees(batch).Equal(decimal.NewFromInt(600)))
	assert.True(t, TotalTaxes(batch).IsZero())
}

func TestTotalIncome(t *testing.T) {
	// Receives plus deposits.
	assert.True(t, TotalIncome(sampleBatch()).Equal(decimal.NewFromInt(353000)))
}

func TestFeesByDate(t *testing.T) {
	fees := FeesByDate(sampleBatch())
	require.Len(t, fees, 1)
	assert.True(t, fees["2025-03-10"].Equal(decimal.NewFromInt(600)))
}

func TestFrequentContacts(t *testing.T) {
	contacts := FrequentContacts(sampleBatch(), 2)
	require.Len(t, contacts, 2)
	assert.Equal(t, ContactCount{Name: "KASUBO", Count: 2}, contacts[0])
	// Ties break alphabetically for stable output.
	assert.Equal(t, ContactCount{Name: "AGENT", Count: 1}, contacts[1])
}

func TestFrequentContactsUnlimited(t *testing.T) {
	contacts := FrequentContacts(sampleBatch(), 0)
	assert.Len(t, contacts, 5)
}

func TestAveragesByType(t *testing.T) {
	averages := AveragesByType(sampleBatch())
	assert.True(t, averages[models.TypeSend].Equal(decimal.NewFromInt(5000)))
	assert.True(t, averages[models.TypeReceive].Equal(decimal.NewFromInt(76500)))
}

func TestSplitDated(t *testing.T) {
	dated, undated := SplitDated(sampleBatch())
	assert.Len(t, dated, 4)
	assert.Len(t, undated, 2)
}

func TestReducersOnEmptyInput(t *testing.T) {
	assert.Empty(t, TotalsByType(nil))
	assert.True(t, TotalFees(nil).IsZero())
	assert.True(t, TotalIncome(nil).IsZero())
	assert.Empty(t, FrequentContacts(nil, 5))
	assert.Empty(t, AveragesByType(nil))
}
