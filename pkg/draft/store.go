// Package draft persists the in-progress brief to a durable, client-local
// slot. The store is a capability: environments without durable storage get
// the no-op implementation instead of ad-hoc guards at every call site.
package draft

import (
	"errors"
	"time"

	"github.com/goliatone/go-briefwizard/pkg/brief"
)

// ErrUnavailable signals that no durable slot exists in this environment.
// Callers treat it as "save skipped", not as a hard failure.
var ErrUnavailable = errors.New("draft: durable storage unavailable")

// Envelope is the serialized shape of the durable slot. Version tags the
// storage format; readers still attempt validation on unknown versions and
// reject on validation failure, not on the tag itself.
type Envelope struct {
	Record    brief.Brief `json:"record"`
	LastSaved time.Time   `json:"lastSaved"`
	Version   string      `json:"version"`
}

// Store is the durable draft slot. Save assigns the record an ID when absent
// and stamps its timestamp before writing; the returned copy reflects both.
// Load yields (nil, nil) when the slot is empty or its content fails shape
// validation; partially valid data is never returned.
type Store interface {
	Save(record brief.Brief) (brief.Brief, error)
	Load() (*brief.Brief, error)
	Clear() error
	Exists() bool
	LastSaved() (time.Time, bool)
}

// Noop is the degraded store for non-interactive environments. Every
// operation quietly reports the slot as unavailable or empty.
type Noop struct{}

// NewNoop returns the degraded store.
func NewNoop() Noop { return Noop{} }

func (Noop) Save(record brief.Brief) (brief.Brief, error) {
	return record, ErrUnavailable
}

func (Noop) Load() (*brief.Brief, error) { return nil, nil }

func (Noop) Clear() error { return ErrUnavailable }

func (Noop) Exists() bool { return false }

func (Noop) LastSaved() (time.Time, bool) { return time.Time{}, false }
