package draft

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-briefwizard/pkg/brief"
)

// FileStore keeps the draft envelope as a single JSON file, written
// atomically via a temp file and rename. The slot is single-owner: one
// editing session at a time.
type FileStore struct {
	path   string
	logger *slog.Logger
	now    func() time.Time
}

// FileOption configures a FileStore.
type FileOption func(*FileStore)

// WithLogger routes validation and I/O detail through the given logger.
func WithLogger(logger *slog.Logger) FileOption {
	return func(s *FileStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the save timestamp source. Tests use this.
func WithClock(now func() time.Time) FileOption {
	return func(s *FileStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewFileStore creates a store rooted at path. The parent directory is
// created on the first save, not here.
func NewFileStore(path string, options ...FileOption) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("draft: file store path is required")
	}
	s := &FileStore{
		path:   path,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// DefaultPath returns the per-user draft location, or an error in
// environments without a user config directory (callers then fall back to
// the no-op store).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("draft: resolve config dir: %w", err)
	}
	return filepath.Join(dir, "briefwizard", "draft.json"), nil
}

// Save stamps the record and writes the envelope atomically. The returned
// copy carries the assigned ID and refreshed timestamp.
func (s *FileStore) Save(record brief.Brief) (brief.Brief, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	record.Timestamp = s.now()

	envelope := Envelope{
		Record:    record,
		LastSaved: s.now(),
		Version:   brief.StorageVersion,
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		return record, fmt.Errorf("draft: encode envelope: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return record, fmt.Errorf("draft: create storage dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".draft-*")
	if err != nil {
		return record, fmt.Errorf("draft: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return record, fmt.Errorf("draft: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return record, fmt.Errorf("draft: close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return record, fmt.Errorf("draft: replace draft file: %w", err)
	}
	return record, nil
}

// Load reads and shape-validates the stored record. An absent slot, a
// corrupt envelope, or a record failing validation all yield (nil, nil);
// the rejection detail is logged, never surfaced as partial data.
func (s *FileStore) Load() (*brief.Brief, error) {
	payload, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("draft: read draft file: %w", err)
	}

	var envelope Envelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		s.logger.Warn("discarding undecodable draft", "path", s.path, "error", err)
		return nil, nil
	}
	if envelope.Version != brief.StorageVersion {
		s.logger.Debug("reading draft with unexpected storage version", "version", envelope.Version)
	}
	if result := envelope.Record.ValidateShape(); !result.Valid {
		s.logger.Warn("discarding draft failing validation", "path", s.path, "issues", result.Issues)
		return nil, nil
	}
	record := envelope.Record
	return &record, nil
}

// Clear removes the durable slot. Clearing an already-empty slot succeeds.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("draft: remove draft file: %w", err)
	}
	return nil
}

// Exists reports whether the slot holds data, without deserializing it.
func (s *FileStore) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && !info.IsDir()
}

// LastSaved reports when the slot was last written.
func (s *FileStore) LastSaved() (time.Time, bool) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		return time.Time{}, false
	}
	var envelope Envelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return time.Time{}, false
	}
	if envelope.LastSaved.IsZero() {
		return time.Time{}, false
	}
	return envelope.LastSaved, true
}
