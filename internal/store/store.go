// Package store persists the account-name map collected from processed
// reports as YAML.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/realisasi/internal/logging"

	"gopkg.in/yaml.v3"
)

// DefaultAccountsFile is used when no file is configured.
const DefaultAccountsFile = "accounts.yaml"

// AccountStore loads and saves account names keyed by code segment.
type AccountStore struct {
	File   string
	logger logging.Logger
}

// NewAccountStore creates a store backed by file. An empty file name falls
// back to DefaultAccountsFile.
func NewAccountStore(file string, logger logging.Logger) *AccountStore {
	if file == "" {
		file = DefaultAccountsFile
	}
	return &AccountStore{File: file, logger: logging.OrDefault(logger)}
}

// Load reads the stored names. A missing file yields an empty map.
func (s *AccountStore) Load() (map[string]string, error) {
	data, err := os.ReadFile(s.File)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("Accounts file not found, starting empty",
				logging.F(logging.FieldFile, s.File))
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("error reading accounts file: %w", err)
	}

	names := map[string]string{}
	if err := yaml.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("error parsing accounts file %s: %w", s.File, err)
	}
	if names == nil {
		names = map[string]string{}
	}

	s.logger.Debug("Loaded account names",
		logging.F(logging.FieldFile, s.File),
		logging.F(logging.FieldCount, len(names)))
	return names, nil
}

// Save writes names to the store file, creating its directory if needed.
func (s *AccountStore) Save(names map[string]string) error {
	if dir := filepath.Dir(s.File); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	data, err := yaml.Marshal(names)
	if err != nil {
		return fmt.Errorf("error marshaling account names: %w", err)
	}
	if err := os.WriteFile(s.File, data, 0o600); err != nil {
		return fmt.Errorf("error writing accounts file: %w", err)
	}

	s.logger.Debug("Saved account names",
		logging.F(logging.FieldFile, s.File),
		logging.F(logging.FieldCount, len(names)))
	return nil
}

// Merge adds the entries of names that the store does not know yet and saves
// the result. Stored names are never overwritten. It returns the number of
// entries added.
func (s *AccountStore) Merge(names map[string]string) (int, error) {
	stored, err := s.Load()
	if err != nil {
		return 0, err
	}

	added := 0
	for code, name := range names {
		if _, ok := stored[code]; ok {
			continue
		}
		stored[code] = name
		added++
	}
	if added == 0 {
		return 0, nil
	}

	if err := s.Save(stored); err != nil {
		return 0, err
	}
	s.logger.Info("Merged account names",
		logging.F(logging.FieldFile, s.File),
		logging.F(logging.FieldCount, added))
	return added, nil
}
