// Package tags keeps the business income/expense categorization of
// transactions as a side table keyed by transaction id. Tags never live
// on the Transaction itself: records stay immutable after parsing and the
// overlay can be rebuilt from a re-parse without touching the core.
package tags

import "kibuuka/momo-csv/internal/models"

// Tag classifies a transaction for bookkeeping purposes.
type Tag string

const (
	TagBusinessIncome  Tag = "business-income"
	TagBusinessExpense Tag = "business-expense"
	TagPersonal        Tag = "personal"
)

// Table is the id-keyed overlay. The zero value is not usable; construct
// with NewTable.
type Table struct {
	byID map[string]Tag
}

// NewTable returns an empty tag table.
func NewTable() *Table {
	return &Table{byID: make(map[string]Tag)}
}

// Set records the tag for a transaction id, replacing any previous tag.
func (t *Table) Set(id string, tag Tag) {
	t.byID[id] = tag
}

// Get returns the tag for a transaction id, if one is set.
func (t *Table) Get(id string) (Tag, bool) {
	tag, ok := t.byID[id]
	return tag, ok
}

// Delete removes the tag for a transaction id.
func (t *Table) Delete(id string) {
	delete(t.byID, id)
}

// Len returns the number of tagged transactions.
func (t *Table) Len() int {
	return len(t.byID)
}

// Tagged returns the transactions from the list that carry the given tag,
// preserving input order.
func (t *Table) Tagged(transactions []models.Transaction, tag Tag) []models.Transaction {
	var out []models.Transaction
	for _, tx := range transactions {
		if got, ok := t.byID[tx.ID]; ok && got == tag {
			out = append(out, tx)
		}
	}
	return out
}
