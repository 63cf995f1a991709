// Package state persists the active-skill record used to gate tool permissions.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/skillmart/skillmart/internal/logging"
	"github.com/skillmart/skillmart/internal/model"
)

// Store reads and writes the single active-skill JSON record.
// The file location is injected by the caller; there is no locking,
// the last writer wins.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Active returns the currently active skill, if any. A missing, unreadable,
// or corrupt state file all read as "no active skill".
func (s *Store) Active() (model.ActiveSkill, bool) {
	// #nosec G304 - path is injected by the owning configuration
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Debug("state file unreadable", logging.Path(s.path), logging.Err(err))
		}
		return model.ActiveSkill{}, false
	}

	var active model.ActiveSkill
	if err := json.Unmarshal(data, &active); err != nil {
		logging.Debug("state file corrupt", logging.Path(s.path), logging.Err(err))
		return model.ActiveSkill{}, false
	}

	return active, true
}

// SetActive overwrites the state file with the given record.
func (s *Store) SetActive(name, allowedTools string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.Marshal(model.ActiveSkill{Name: name, AllowedTools: allowedTools})
	if err != nil {
		return fmt.Errorf("failed to encode active skill: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	logging.Debug("active skill set", logging.Skill(name), logging.Path(s.path))
	return nil
}

// ClearActive deletes the state file. Clearing when nothing is active is a no-op.
func (s *Store) ClearActive() error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to remove state file: %w", err)
	}

	logging.Debug("active skill cleared", logging.Path(s.path))
	return nil
}
