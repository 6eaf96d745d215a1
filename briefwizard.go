package briefwizard

import (
	"time"

	"github.com/goliatone/go-briefwizard/pkg/brief"
	"github.com/goliatone/go-briefwizard/pkg/draft"
	"github.com/goliatone/go-briefwizard/pkg/i18n"
	"github.com/goliatone/go-briefwizard/pkg/projection"
	"github.com/goliatone/go-briefwizard/pkg/wizard"
)

// Brief is the full brand brief record; alias exported via the root package
// for convenience.
type Brief = brief.Brief

// Result reports a validation outcome with its field-level issues.
type Result = brief.Result

// Store is the durable single-slot draft store contract.
type Store = draft.Store

// Controller owns an editing session over the eight steps.
type Controller = wizard.Controller

// Deliverer receives the finalized brief.
type Deliverer = wizard.Deliverer

// Locale selects the display language.
type Locale = i18n.Locale

// New returns an empty draft brief with defaults applied.
func New() Brief {
	return brief.New()
}

// Template returns the fully populated example brief.
func Template() Brief {
	return brief.Template()
}

// NewController starts an editing session backed by store, delivering final
// submissions through deliverer.
func NewController(store draft.Store, deliverer wizard.Deliverer, options ...wizard.Option) (*wizard.Controller, error) {
	return wizard.New(store, deliverer, options...)
}

// NewFileStore opens the durable draft slot at path.
func NewFileStore(path string, options ...draft.FileOption) (*draft.FileStore, error) {
	return draft.NewFileStore(path, options...)
}

// ShareLink encodes the brief into a shareable view URL under origin.
func ShareLink(origin string, b Brief) (string, error) {
	return projection.ShareLink(origin, b)
}

// ScopeDraft renders the plain text scope starting point.
func ScopeDraft(b Brief, locale Locale, at time.Time) string {
	return projection.ScopeDraft(b, locale, at)
}
