// Package common provides shared output helpers used by the CLI commands.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"kibuuka/momo-csv/internal/logging"
	"kibuuka/momo-csv/internal/models"
)

// SetDelimiter changes the field separator used for all subsequent CSV
// writes. The default is a comma.
func SetDelimiter(delimiter rune) {
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		w := csv.NewWriter(out)
		w.Comma = delimiter
		return gocsv.NewSafeCSVWriter(w)
	})
}

// csvRow is the export shape of a transaction. Monetary fields are
// rendered as fixed-point strings and the timestamp as ISO-8601.
type csvRow struct {
	ID           string `csv:"Id"`
	Type         string `csv:"Type"`
	Amount       string `csv:"Amount"`
	Currency     string `csv:"Currency"`
	Sender       string `csv:"Sender"`
	Recipient    string `csv:"Recipient"`
	Fee          string `csv:"Fee"`
	Tax          string `csv:"Tax"`
	Balance      string `csv:"Balance"`
	Reference    string `csv:"Reference"`
	Timestamp    string `csv:"Timestamp"`
	ExplicitDate bool   `csv:"ExplicitDate"`
	AgentID      string `csv:"AgentId"`
	PhoneNumber  string `csv:"PhoneNumber"`
}

// WriteTransactionsToCSV writes a parse batch to a CSV file. All commands
// use this writer so export columns stay consistent.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log := logging.GetLogger()
	log.Info("writing transactions to CSV file",
		logging.F("file", csvFile),
		logging.F("count", len(transactions)))

	if dir := filepath.Dir(csvFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating output directory %s: %w", dir, err)
		}
	}

	rows := make([]csvRow, 0, len(transactions))
	for i := range transactions {
		rows = append(rows, toRow(&transactions[i]))
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file %s: %w", csvFile, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("failed to close CSV file")
		}
	}()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV file %s: %w", csvFile, err)
	}
	return nil
}

func toRow(tx *models.Transaction) csvRow {
	return csvRow{
		ID:           tx.ID,
		Type:         string(tx.Type),
		Amount:       tx.Amount.String(),
		Currency:     tx.Currency,
		Sender:       tx.Sender,
		Recipient:    tx.Recipient,
		Fee:          tx.Fee.String(),
		Tax:          tx.Tax.String(),
		Balance:      tx.Balance.String(),
		Reference:    tx.Reference,
		Timestamp:    tx.FormattedTime(),
		ExplicitDate: tx.ExplicitDate,
		AgentID:      tx.AgentID,
		PhoneNumber:  tx.PhoneNumber,
	}
}
