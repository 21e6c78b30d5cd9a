// Package store persists parse batches as opaque JSON blobs keyed by user
// identity. The parser itself has no awareness of persistence; this is a
// collaborator callers use to keep batches between sessions.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"kibuuka/momo-csv/internal/logging"
	"kibuuka/momo-csv/internal/models"
)

// Batch is the stored unit: one parse result plus when it was saved.
type Batch struct {
	UserID       string               `json:"userId"`
	SavedAt      time.Time            `json:"savedAt"`
	Transactions []models.Transaction `json:"transactions"`
}

// Store writes and reads batches under a data directory, one JSON file
// per user.
type Store struct {
	dir    string
	logger logging.Logger
}

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string, logger logging.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating data directory %s: %w", dir, err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Save persists the transactions for userID, replacing any previous batch.
func (s *Store) Save(userID string, transactions []models.Transaction) error {
	batch := Batch{
		UserID:       userID,
		SavedAt:      time.Now().UTC(),
		Transactions: transactions,
	}

	data, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding batch for %s: %w", userID, err)
	}

	path := s.path(userID)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing batch file %s: %w", path, err)
	}

	s.logger.Info("saved transaction batch",
		logging.F("user", userID),
		logging.F("count", len(transactions)))
	return nil
}

// Load returns the stored batch for userID. A user with no stored batch
// gets an empty slice, not an error.
func (s *Store) Load(userID string) ([]models.Transaction, error) {
	data, err := os.ReadFile(s.path(userID))
	if os.IsNotExist(err) {
		return []models.Transaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading batch for %s: %w", userID, err)
	}

	var batch Batch
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("error decoding batch for %s: %w", userID, err)
	}
	return batch.Transactions, nil
}

// path maps a user id to its blob file, sanitizing characters that are
// unsafe in filenames.
func (s *Store) path(userID string) string {
	safe := unsafeKeyChars.ReplaceAllString(userID, "_")
	return filepath.Join(s.dir, safe+".json")
}
