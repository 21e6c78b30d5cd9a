package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kibuuka/momo-csv/internal/models"
)

func TestWriteTransactionsToCSV(t *testing.T) {
	txs := []models.Transaction{
		{
			ID:           "tx-1",
			Type:         models.TypeReceive,
			Amount:       decimal.NewFromInt(103000),
			Currency:     "UGX",
			Sender:       "GODFREY MUYIMBWA",
			Reference:    "121327207176",
			PhoneNumber:  "755352144",
			Timestamp:    time.Date(2025, time.April, 13, 12, 14, 0, 0, time.UTC),
			ExplicitDate: true,
		},
	}

	out := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteTransactionsToCSV(txs, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	content := string(data)

	lines := strings.Split(strings.TrimSpace(content), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Id")
	assert.Contains(t, lines[0], "Amount")
	assert.Contains(t, lines[1], "receive")
	assert.Contains(t, lines[1], "103000")
	assert.Contains(t, lines[1], "GODFREY MUYIMBWA")
	assert.Contains(t, lines[1], "2025-04-13T12:14:00Z")
}

func TestWriteTransactionsToCSVEmptyBatch(t *testing.T) {
	out := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, WriteTransactionsToCSV([]models.Transaction{}, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Id")
}

func TestWriteTransactionsToCSVNil(t *testing.T) {
	assert.Error(t, WriteTransactionsToCSV(nil, filepath.Join(t.TempDir(), "x.csv")))
}

func TestSetDelimiter(t *testing.T) {
	SetDelimiter(';')
	t.Cleanup(func() { SetDelimiter(',') })

	txs := []models.Transaction{{ID: "tx-1", Type: models.TypeSend, Amount: decimal.NewFromInt(4000), Currency: "UGX"}}
	out := filepath.Join(t.TempDir(), "semi.csv")
	require.NoError(t, WriteTransactionsToCSV(txs, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tx-1;send;4000")
}

func TestWriteTransactionsToCSVCreatesDirectory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "dir", "out.csv")
	require.NoError(t, WriteTransactionsToCSV([]models.Transaction{}, out))

	_, err := os.Stat(out)
	assert.NoError(t, err)
}
