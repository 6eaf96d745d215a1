// Package wizard drives the eight-step editing session: the cursor state
// machine, per-step submission and merge, debounced draft autosave, and the
// final delivery handoff.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/goliatone/go-briefwizard/pkg/brief"
	"github.com/goliatone/go-briefwizard/pkg/draft"
)

// DefaultSaveDelay is the autosave quiet period: rapid successive step
// submissions coalesce into a single draft write.
const DefaultSaveDelay = 1500 * time.Millisecond

// Deliverer is the delivery gateway boundary Finalize hands the completed
// record to.
type Deliverer interface {
	Deliver(ctx context.Context, b brief.Brief) error
}

// ValidationError carries field-level issues out of Finalize. SubmitStep
// returns issues as a Result instead; only the terminal operation promotes
// them to an error.
type ValidationError struct {
	Issues []brief.Issue
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("wizard: validation failed with %d issue(s)", len(e.Issues))
}

// ErrAlreadySubmitted guards Finalize against double submission.
var ErrAlreadySubmitted = errors.New("wizard: brief already submitted")

// Controller owns the in-memory brief during an editing session. The durable
// copy in the draft store only changes through the controller's autosave and
// explicit persistence points; the in-memory record is the source of truth.
type Controller struct {
	mu        sync.Mutex
	record    brief.Brief
	cursor    int
	submitted bool

	store     draft.Store
	deliverer Deliverer
	logger    *slog.Logger
	saveDelay time.Duration

	pending *time.Timer
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger routes session events through the given logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSaveDelay overrides the autosave quiet period.
func WithSaveDelay(delay time.Duration) Option {
	return func(c *Controller) {
		if delay > 0 {
			c.saveDelay = delay
		}
	}
}

// New starts an editing session. A schema-valid draft in the store seeds the
// in-memory record and positions the cursor on the first step; otherwise the
// session starts from defaults.
func New(store draft.Store, deliverer Deliverer, options ...Option) (*Controller, error) {
	if store == nil {
		return nil, errors.New("wizard: draft store is required")
	}
	if deliverer == nil {
		return nil, errors.New("wizard: deliverer is required")
	}
	c := &Controller{
		cursor:    brief.FirstStep,
		store:     store,
		deliverer: deliverer,
		logger:    slog.Default(),
		saveDelay: DefaultSaveDelay,
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}

	if restored, err := store.Load(); err != nil {
		c.logger.Warn("draft restore failed, starting fresh", "error", err)
		c.record = brief.New()
	} else if restored != nil {
		c.record = *restored
		c.logger.Info("draft restored", "brief_id", restored.ID)
	} else {
		c.record = brief.New()
	}
	return c, nil
}

// Cursor returns the current step, in [1, 8].
func (c *Controller) Cursor() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor
}

// Submitted reports whether the session has completed final submission.
func (c *Controller) Submitted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitted
}

// Record returns a copy of the in-memory brief.
func (c *Controller) Record() brief.Brief {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.record
}

// SubmitStep validates data against step n's schema. On success the step
// record is replaced wholesale, the cursor advances, and an autosave is
// scheduled when the session is past the first step. On failure the record
// and cursor are untouched and the issues come back in the Result.
func (c *Controller) SubmitStep(n int, data brief.StepRecord) brief.Result {
	result := brief.ValidateStep(n, data)
	if !result.Valid {
		return result
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	merged, err := brief.MergeStep(c.record, n, data)
	if err != nil {
		return brief.Result{Valid: false, Issues: []brief.Issue{
			{Field: fmt.Sprintf("step%d", n), Message: err.Error()},
		}}
	}
	c.record = merged
	c.advanceLocked()
	if c.cursor > brief.FirstStep {
		c.scheduleAutosaveLocked()
	}
	return result
}

// Advance moves the cursor forward, clamped to the last step.
func (c *Controller) Advance() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.advanceLocked()
	return c.cursor
}

// Retreat moves the cursor back, clamped to the first step.
func (c *Controller) Retreat() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cursor > brief.FirstStep {
		c.cursor--
	}
	return c.cursor
}

// Reset abandons the session: the durable draft is cleared and the in-memory
// record reinitializes to defaults with a fresh identity.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelAutosaveLocked()
	c.record = brief.New()
	c.cursor = brief.FirstStep
	c.submitted = false

	if err := c.store.Clear(); err != nil && !errors.Is(err, draft.ErrUnavailable) {
		return fmt.Errorf("wizard: clear draft: %w", err)
	}
	return nil
}

// LoadTemplate overlays the fixed example record onto the current one,
// keeping identity fields and the cursor where they are.
func (c *Controller) LoadTemplate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record = brief.Overlay(c.record, brief.Template())
	if c.cursor > brief.FirstStep {
		c.scheduleAutosaveLocked()
	}
}

// Save persists the current record immediately, cancelling any pending
// autosave. Environments without durable storage degrade quietly.
func (c *Controller) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelAutosaveLocked()
	return c.saveLocked()
}

// Finalize validates and merges the step 8 data, then hands the record to
// the delivery gateway. The tabular sink decides the outcome: on its failure
// the error surfaces, status stays draft and submitted stays false. On
// success the record becomes completed, the session is marked submitted and
// the final state persists to the draft store.
func (c *Controller) Finalize(ctx context.Context, data brief.AdHistory) error {
	if result := brief.ValidateStep(brief.LastStep, data); !result.Valid {
		return &ValidationError{Issues: result.Issues}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.submitted {
		return ErrAlreadySubmitted
	}

	merged, err := brief.MergeStep(c.record, brief.LastStep, data)
	if err != nil {
		return err
	}
	c.record = merged
	c.cancelAutosaveLocked()

	if err := c.deliverer.Deliver(ctx, c.record); err != nil {
		return err
	}

	c.record.Status = brief.StatusCompleted
	c.submitted = true
	if err := c.saveLocked(); err != nil {
		c.logger.Warn("final state not persisted", "brief_id", c.record.ID, "error", err)
	}
	c.logger.Info("brief submitted", "brief_id", c.record.ID)
	return nil
}

func (c *Controller) advanceLocked() {
	if c.cursor < brief.LastStep {
		c.cursor++
	}
}

// scheduleAutosaveLocked replaces any pending save with a fresh one, so only
// the last edit in a burst reaches the store.
func (c *Controller) scheduleAutosaveLocked() {
	c.cancelAutosaveLocked()
	c.pending = time.AfterFunc(c.saveDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if err := c.saveLocked(); err != nil {
			c.logger.Warn("autosave failed", "error", err)
		}
	})
}

func (c *Controller) cancelAutosaveLocked() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

func (c *Controller) saveLocked() error {
	stamped, err := c.store.Save(c.record)
	if err != nil {
		if errors.Is(err, draft.ErrUnavailable) {
			return nil
		}
		return err
	}
	c.record = stamped
	return nil
}
