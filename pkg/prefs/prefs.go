// Package prefs persists the one cross-session user preference, the
// interface language. It is deliberately separate from the draft store:
// clearing a draft must not forget the language choice.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goliatone/go-briefwizard/pkg/i18n"
)

type preferences struct {
	Language string `json:"language"`
}

// Store reads and writes the preference file.
type Store struct {
	path string
}

// NewStore creates a store at path.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("prefs: path is required")
	}
	return &Store{path: path}, nil
}

// DefaultPath returns the per-user preference location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("prefs: resolve config dir: %w", err)
	}
	return filepath.Join(dir, "briefwizard", "prefs.json"), nil
}

// Language returns the stored locale. An absent or unreadable preference
// file falls back to the default locale rather than erroring.
func (s *Store) Language() i18n.Locale {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		return i18n.DefaultLocale
	}
	var p preferences
	if err := json.Unmarshal(payload, &p); err != nil {
		return i18n.DefaultLocale
	}
	locale, err := i18n.ParseLocale(p.Language)
	if err != nil {
		return i18n.DefaultLocale
	}
	return locale
}

// SetLanguage persists the locale choice.
func (s *Store) SetLanguage(locale i18n.Locale) error {
	payload, err := json.Marshal(preferences{Language: string(locale)})
	if err != nil {
		return fmt.Errorf("prefs: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("prefs: create dir: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("prefs: write: %w", err)
	}
	return nil
}

// Exists reports whether a preference has been saved.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Clear removes the preference file. Clearing an absent file succeeds.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("prefs: remove: %w", err)
	}
	return nil
}
