// Package smsparser is the extraction pipeline entry point: it segments
// pasted text into fragments, routes each fragment through the provider
// classifier to an extraction grammar, falls back to the other grammar
// when the first one rejects, and normalizes the result into Transaction
// records.
//
// The pipeline is a pure function of its input text. It never fails:
// fragments no grammar can parse are logged and dropped, and empty or
// marker-free input yields an empty list. Output order follows the
// left-to-right order of fragments in the input.
package smsparser

import (
	"time"

	"github.com/google/uuid"

	"kibuuka/momo-csv/internal/classifier"
	"kibuuka/momo-csv/internal/legacyparser"
	"kibuuka/momo-csv/internal/logging"
	"kibuuka/momo-csv/internal/models"
	"kibuuka/momo-csv/internal/mtnparser"
	"kibuuka/momo-csv/internal/segmenter"
)

// skipSnippetLen caps the fragment text carried in skip diagnostics.
const skipSnippetLen = 100

// Grammar is the shape both field extractors share: a transaction or a
// typed reason the fragment was rejected.
type Grammar func(fragment string) (*models.Transaction, error)

// Parser runs the extraction pipeline. The zero value is not usable;
// construct with New.
type Parser struct {
	segmenter *segmenter.Segmenter
	logger    logging.Logger
	now       func() time.Time
	currency  string
}

// Option configures a Parser.
type Option func(*Parser)

// WithMinFragmentLength overrides the segmenter's minimum fragment length.
func WithMinFragmentLength(n int) Option {
	return func(p *Parser) { p.segmenter = segmenter.New(n) }
}

// WithClock overrides the timestamp-defaulting clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) { p.now = now }
}

// WithDefaultCurrency overrides the currency assumed for fragments that
// carry no currency marker. An empty code is ignored.
func WithDefaultCurrency(code string) Option {
	return func(p *Parser) {
		if code != "" {
			p.currency = code
		}
	}
}

// New constructs a Parser. A nil logger falls back to the process default.
func New(logger logging.Logger, opts ...Option) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	p := &Parser{
		segmenter: segmenter.New(0),
		logger:    logger,
		now:       time.Now,
		currency:  models.DefaultCurrency,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseText extracts all transactions from a block of pasted SMS text.
// It is deterministic apart from generated ids and defaulted timestamps,
// and safe to call concurrently: no state is shared between invocations.
func (p *Parser) ParseText(text string) []models.Transaction {
	fragments := p.segmenter.Split(text)

	transactions := make([]models.Transaction, 0, len(fragments))
	for _, fragment := range fragments {
		tx, err := p.parseFragment(fragment)
		if err != nil {
			p.logger.WithError(err).Debug("skipping unparseable fragment",
				logging.F("fragment", snippet(fragment)))
			continue
		}
		transactions = append(transactions, *tx)
	}

	p.logger.Info("parsed transactions from text",
		logging.F("fragments", len(fragments)),
		logging.F("transactions", len(transactions)))
	return transactions
}

// parseFragment routes a fragment to the grammar the classifier favors
// and falls back to the other on rejection. The first grammar's error is
// kept as the skip reason when both reject.
func (p *Parser) parseFragment(fragment string) (*models.Transaction, error) {
	first, second := Grammar(legacyparser.TryParse), Grammar(mtnparser.TryParse)
	if classifier.IsMTN(fragment) {
		first, second = second, first
	}

	tx, err := first(fragment)
	if err != nil {
		var fallbackErr error
		if tx, fallbackErr = second(fragment); fallbackErr != nil {
			return nil, err
		}
	}
	return p.normalize(tx), nil
}

// normalize assigns the batch-scoped id and fills defaults. Ids are
// UUIDs, unique within the returned list but not stable across re-parses
// of the same text.
func (p *Parser) normalize(tx *models.Transaction) *models.Transaction {
	tx.ID = uuid.NewString()
	if tx.Currency == "" {
		tx.Currency = p.currency
	}
	if tx.Timestamp.IsZero() {
		tx.Timestamp = p.now()
		tx.ExplicitDate = false
	}
	return tx
}

// ParseText is the package-level entry point using the default logger.
func ParseText(text string) []models.Transaction {
	return New(nil).ParseText(text)
}

func snippet(fragment string) string {
	if len(fragment) <= skipSnippetLen {
		return fragment
	}
	return fragment[:skipSnippetLen]
}
