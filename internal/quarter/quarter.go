// Package quarter buckets transactions into a July-June fiscal calendar.
// It is a read-only consumer of parsed transactions; all it needs from a
// record is a parseable timestamp.
package quarter

import (
	"fmt"
	"time"

	"kibuuka/momo-csv/internal/models"
)

// Quarter identifies one three-month period of a July-June fiscal year.
// FiscalYear is the calendar year the fiscal year starts in: Q1 of fiscal
// year 2025 is July-September 2025, Q4 is April-June 2026.
type Quarter struct {
	FiscalYear int
	Number     int // 1-4
}

// String renders a label like "FY2025 Q3".
func (q Quarter) String() string {
	return fmt.Sprintf("FY%d Q%d", q.FiscalYear, q.Number)
}

// Of returns the fiscal quarter containing t.
func Of(t time.Time) Quarter {
	year := t.Year()
	month := int(t.Month())

	if month >= 7 {
		return Quarter{FiscalYear: year, Number: (month-7)/3 + 1}
	}
	return Quarter{FiscalYear: year - 1, Number: (month+5)/3 + 1}
}

// Bucket groups transactions by fiscal quarter.
func Bucket(transactions []models.Transaction) map[Quarter][]models.Transaction {
	buckets := make(map[Quarter][]models.Transaction)
	for _, tx := range transactions {
		q := Of(tx.Timestamp)
		buckets[q] = append(buckets[q], tx)
	}
	return buckets
}
