// Package analytics provides pure reducers over parsed transaction lists.
// Every function takes the slice produced by the parser and computes an
// aggregate; none of them mutate their input or keep state.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"kibuuka/momo-csv/internal/models"
)

// TotalsByType sums transaction amounts grouped by type.
func TotalsByType(transactions []models.Transaction) map[models.Type]decimal.Decimal {
	totals := make(map[models.Type]decimal.Decimal)
	for _, tx := range transactions {
		totals[tx.Type] = totals[tx.Type].Add(tx.Amount)
	}
	return totals
}

// TotalFees sums all transaction fees.
func TotalFees(transactions []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		total = total.Add(tx.Fee)
	}
	return total
}

// TotalTaxes sums all transaction taxes.
func TotalTaxes(transactions []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		total = total.Add(tx.Tax)
	}
	return total
}

// TotalIncome sums the amounts of incoming transactions (receives and
// deposits).
func TotalIncome(transactions []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.Type == models.TypeReceive || tx.Type == models.TypeDeposit {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// FeesByDate builds a per-calendar-date fee histogram keyed by the
// transaction's ISO date.
func FeesByDate(transactions []models.Transaction) map[string]decimal.Decimal {
	fees := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if tx.Fee.IsZero() {
			continue
		}
		key := tx.DateKey()
		fees[key] = fees[key].Add(tx.Fee)
	}
	return fees
}

// ContactCount is one entry in the frequent-counterparty histogram.
type ContactCount struct {
	Name  string
	Count int
}

// FrequentContacts returns the top n counterparties by transaction count,
// most frequent first. Ties break alphabetically so the output is stable.
func FrequentContacts(transactions []models.Transaction, n int) []ContactCount {
	counts := make(map[string]int)
	for _, tx := range transactions {
		if name := tx.Counterparty(); name != "" {
			counts[name]++
		}
	}

	contacts := make([]ContactCount, 0, len(counts))
	for name, count := range counts {
		contacts = append(contacts, ContactCount{Name: name, Count: count})
	}
	sort.Slice(contacts, func(i, j int) bool {
		if contacts[i].Count != contacts[j].Count {
			return contacts[i].Count > contacts[j].Count
		}
		return contacts[i].Name < contacts[j].Name
	})

	if n > 0 && len(contacts) > n {
		contacts = contacts[:n]
	}
	return contacts
}

// AveragesByType computes the mean transaction amount per type.
func AveragesByType(transactions []models.Transaction) map[models.Type]decimal.Decimal {
	totals := make(map[models.Type]decimal.Decimal)
	counts := make(map[models.Type]int64)
	for _, tx := range transactions {
		totals[tx.Type] = totals[tx.Type].Add(tx.Amount)
		counts[tx.Type]++
	}

	averages := make(map[models.Type]decimal.Decimal, len(totals))
	for txType, total := range totals {
		averages[txType] = total.Div(decimal.NewFromInt(counts[txType]))
	}
	return averages
}

// SplitDated partitions transactions into those whose timestamp came from
// an explicit date in the message text and those defaulted to parse time.
// Consumers treat the latter as suspect data quality.
func SplitDated(transactions []models.Transaction) (dated, undated []models.Transaction) {
	for _, tx := range transactions {
		if tx.ExplicitDate {
			dated = append(dated, tx)
		} else {
			undated = append(undated, tx)
		}
	}
	return dated, undated
}
