// Package export writes user-requested artifacts of a brief to disk: the
// pretty-printed JSON record, the rendered document and the scope draft.
// Exports never change the record's state.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-briefwizard/pkg/brief"
	"github.com/goliatone/go-briefwizard/pkg/projection"
)

// Error names a failed export so callers can report it per action.
type Error struct {
	Artifact string // "json", "document" or "scope-draft"
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("export: %s: %v", e.Artifact, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ErrNoRenderTarget signals that a document export was requested without a
// rendered document to write.
var ErrNoRenderTarget = fmt.Errorf("no rendered document to export")

// WriteJSON writes the full record, pretty-printed, to path.
func WriteJSON(path string, b brief.Brief) error {
	payload, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return &Error{Artifact: "json", Err: err}
	}
	if err := writeFile(path, append(payload, '\n')); err != nil {
		return &Error{Artifact: "json", Err: err}
	}
	return nil
}

// WriteDocument writes the HTML rendering of the document to path. An empty
// rendering is a missing target, reported as a named error rather than an
// empty file.
func WriteDocument(path string, doc projection.Document) error {
	if doc.HTML == "" {
		return &Error{Artifact: "document", Err: ErrNoRenderTarget}
	}
	if err := writeFile(path, []byte(doc.HTML)); err != nil {
		return &Error{Artifact: "document", Err: err}
	}
	return nil
}

// WriteScopeDraft writes the scope draft text to path.
func WriteScopeDraft(path, text string) error {
	if text == "" {
		return &Error{Artifact: "scope-draft", Err: ErrNoRenderTarget}
	}
	if err := writeFile(path, []byte(text)); err != nil {
		return &Error{Artifact: "scope-draft", Err: err}
	}
	return nil
}

// JSONFilename derives the default JSON export name from the record
// identity.
func JSONFilename(b brief.Brief, at time.Time) string {
	id := b.ID
	if id == "" {
		id = fmt.Sprintf("%d", at.Unix())
	}
	return fmt.Sprintf("saint-brand-brief-%s.json", id)
}

// ScopeDraftFilename derives the default scope draft name from the
// professional's name.
func ScopeDraftFilename(b brief.Brief, at time.Time) string {
	name := strings.TrimSpace(b.Step1.FullName)
	if name == "" {
		name = "brief"
	}
	name = strings.Join(strings.Fields(name), "-")
	return fmt.Sprintf("scope-draft-%s-%d.txt", name, at.Unix())
}

// DocumentFilename derives the default document export name.
func DocumentFilename(b brief.Brief, at time.Time) string {
	id := b.ID
	if id == "" {
		id = fmt.Sprintf("%d", at.Unix())
	}
	return fmt.Sprintf("saint-brand-brief-%s.html", id)
}

func writeFile(path string, payload []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, payload, 0o644)
}
