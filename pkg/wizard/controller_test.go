package wizard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/goliatone/go-briefwizard/pkg/brief"
	"github.com/goliatone/go-briefwizard/pkg/draft"
)

type memStore struct {
	mu        sync.Mutex
	saves     int
	clears    int
	record    *brief.Brief
	lastSaved time.Time
}

func (s *memStore) Save(record brief.Brief) (brief.Brief, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	record.Timestamp = time.Now()
	s.saves++
	s.lastSaved = record.Timestamp
	copied := record
	s.record = &copied
	return record, nil
}

func (s *memStore) Load() (*brief.Brief, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record == nil {
		return nil, nil
	}
	copied := *s.record
	return &copied, nil
}

func (s *memStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clears++
	s.record = nil
	return nil
}

func (s *memStore) Exists() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record != nil
}

func (s *memStore) LastSaved() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaved, s.record != nil
}

func (s *memStore) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

type fakeDeliverer struct {
	mu        sync.Mutex
	fail      error
	delivered []brief.Brief
}

func (d *fakeDeliverer) Deliver(_ context.Context, b brief.Brief) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fail != nil {
		return d.fail
	}
	d.delivered = append(d.delivered, b)
	return nil
}

func newTestController(t *testing.T, options ...Option) (*Controller, *memStore, *fakeDeliverer) {
	t.Helper()
	store := &memStore{}
	deliverer := &fakeDeliverer{}
	options = append([]Option{WithSaveDelay(10 * time.Millisecond)}, options...)
	c, err := New(store, deliverer, options...)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return c, store, deliverer
}

func validStep1() brief.BasicInfo {
	return brief.BasicInfo{
		FullName:        "Dr. X",
		PreferredName:   "Dr. X",
		Specialty:       "Cardiology",
		Cities:          []string{"CDMX"},
		YearsExperience: 5,
	}
}

func TestSubmitStep_AdvancesAndMerges(t *testing.T) {
	c, _, _ := newTestController(t)

	result := c.SubmitStep(1, validStep1())
	if !result.Valid {
		t.Fatalf("expected valid submission, got issues %+v", result.Issues)
	}
	if c.Cursor() != 2 {
		t.Fatalf("cursor must advance to 2, got %d", c.Cursor())
	}
	if diff := cmp.Diff(validStep1(), c.Record().Step1); diff != "" {
		t.Fatalf("step 1 mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmitStep_InvalidLeavesStateUntouched(t *testing.T) {
	c, _, _ := newTestController(t)
	c.SubmitStep(1, validStep1())

	before := c.Record()
	result := c.SubmitStep(2, brief.IdentityStyle{
		Perception: []brief.Perception{brief.PerceptionCercanoHumano, brief.PerceptionCasualDirecto},
		WhatNotAre: "x",
		Philosophy: "y",
	})
	if result.Valid {
		t.Fatalf("two perception values must fail validation")
	}
	found := false
	for _, issue := range result.Issues {
		if issue.Field == "perception" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a perception issue, got %+v", result.Issues)
	}
	if c.Cursor() != 2 {
		t.Fatalf("cursor must stay on 2, got %d", c.Cursor())
	}
	if diff := cmp.Diff(before, c.Record()); diff != "" {
		t.Fatalf("record must be unchanged on failed submission:\n%s", diff)
	}
}

func TestAdvanceRetreat_Clamp(t *testing.T) {
	c, _, _ := newTestController(t)

	if got := c.Retreat(); got != brief.FirstStep {
		t.Fatalf("retreat below the first step must clamp, got %d", got)
	}
	for i := 0; i < 20; i++ {
		c.Advance()
	}
	if got := c.Cursor(); got != brief.LastStep {
		t.Fatalf("advance past the last step must clamp, got %d", got)
	}
}

func TestAutosave_CoalescesRapidSubmissions(t *testing.T) {
	c, store, _ := newTestController(t)

	c.SubmitStep(1, validStep1())
	c.SubmitStep(2, brief.Template().Step2)
	c.SubmitStep(3, brief.Template().Step3)

	time.Sleep(100 * time.Millisecond)
	if got := store.saveCount(); got != 1 {
		t.Fatalf("rapid submissions must coalesce into one save, got %d", got)
	}
}

func TestReset_ClearsDraftAndReinitializes(t *testing.T) {
	c, store, _ := newTestController(t)
	c.SubmitStep(1, validStep1())
	if err := c.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	oldID := c.Record().ID

	if err := c.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if store.Exists() {
		t.Fatalf("reset must clear the durable draft")
	}
	record := c.Record()
	if record.ID == oldID {
		t.Fatalf("reset must assign a fresh id")
	}
	if result := record.ValidateShape(); !result.Valid {
		t.Fatalf("reset record must pass shape validation, got %+v", result.Issues)
	}
	if c.Cursor() != brief.FirstStep || c.Submitted() {
		t.Fatalf("reset must rewind the session")
	}
}

func TestLoadTemplate_KeepsCursorAndIdentity(t *testing.T) {
	c, _, _ := newTestController(t)
	c.SubmitStep(1, validStep1())
	id := c.Record().ID

	c.LoadTemplate()
	if c.Cursor() != 2 {
		t.Fatalf("template load must not move the cursor, got %d", c.Cursor())
	}
	record := c.Record()
	if record.ID != id {
		t.Fatalf("template load must keep the record id")
	}
	if record.Step5.WhatMakesDifferent == "" {
		t.Fatalf("template data must overlay the record")
	}
}

func TestFinalize_TabularFailureKeepsDraft(t *testing.T) {
	c, _, deliverer := newTestController(t)
	deliverer.fail = errors.New("tabular store down")

	err := c.Finalize(context.Background(), brief.Template().Step8)
	if err == nil {
		t.Fatalf("expected finalize to fail")
	}
	if c.Submitted() {
		t.Fatalf("failed finalize must not mark the session submitted")
	}
	if c.Record().Status != brief.StatusDraft {
		t.Fatalf("status must stay draft, got %q", c.Record().Status)
	}
}

func TestFinalize_SuccessCompletes(t *testing.T) {
	c, store, deliverer := newTestController(t)

	if err := c.Finalize(context.Background(), brief.Template().Step8); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if !c.Submitted() {
		t.Fatalf("session must be submitted")
	}
	if c.Record().Status != brief.StatusCompleted {
		t.Fatalf("status must be completed, got %q", c.Record().Status)
	}
	if len(deliverer.delivered) != 1 {
		t.Fatalf("expected one delivery, got %d", len(deliverer.delivered))
	}
	if !store.Exists() {
		t.Fatalf("final state must persist to the draft store")
	}
}

func TestFinalize_RejectsDoubleSubmission(t *testing.T) {
	c, _, _ := newTestController(t)
	if err := c.Finalize(context.Background(), brief.AdHistory{}); err != nil {
		t.Fatalf("first finalize: %v", err)
	}
	if err := c.Finalize(context.Background(), brief.AdHistory{}); !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
	}
}

func TestNew_RestoresDraft(t *testing.T) {
	store := &memStore{}
	seeded := brief.Template()
	if _, err := store.Save(seeded); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	c, err := New(store, &fakeDeliverer{})
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	if c.Record().Step1.FullName != seeded.Step1.FullName {
		t.Fatalf("controller must seed from the stored draft")
	}
}

func TestNew_NoopStoreStartsFresh(t *testing.T) {
	c, err := New(draft.NewNoop(), &fakeDeliverer{})
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	if c.Record().ID == "" {
		t.Fatalf("fresh session must carry an id")
	}
	if err := c.Save(); err != nil {
		t.Fatalf("save on the noop store must degrade quietly, got %v", err)
	}
	if err := c.Reset(); err != nil {
		t.Fatalf("reset on the noop store must degrade quietly, got %v", err)
	}
}
