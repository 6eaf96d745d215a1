package brief

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMergeStep_ReplacesWholeRecord(t *testing.T) {
	b := New()
	b.Step1 = BasicInfo{FullName: "previous", Cities: []string{"CDMX", "Monterrey"}}

	merged, err := MergeStep(b, 1, BasicInfo{
		FullName:        "Dr. X",
		PreferredName:   "Dr. X",
		Specialty:       "Cardiology",
		Cities:          []string{"CDMX"},
		YearsExperience: 5,
	})
	if err != nil {
		t.Fatalf("merge step 1: %v", err)
	}

	want := BasicInfo{
		FullName:        "Dr. X",
		PreferredName:   "Dr. X",
		Specialty:       "Cardiology",
		Cities:          []string{"CDMX"},
		YearsExperience: 5,
	}
	if diff := cmp.Diff(want, merged.Step1); diff != "" {
		t.Fatalf("step 1 mismatch (-want +got):\n%s", diff)
	}
	if b.Step1.FullName != "previous" {
		t.Fatalf("merge must not mutate the input brief")
	}
}

func TestMergeStep_RejectsMismatchedPayload(t *testing.T) {
	b := New()
	if _, err := MergeStep(b, 3, IdentityStyle{}); err == nil {
		t.Fatalf("expected type mismatch error for step 3")
	}
}

func TestMergeStep_RejectsOutOfRange(t *testing.T) {
	b := New()
	if _, err := MergeStep(b, 0, AdHistory{}); err == nil {
		t.Fatalf("expected out of range error for step 0")
	}
	if _, err := MergeStep(b, 9, AdHistory{}); err == nil {
		t.Fatalf("expected out of range error for step 9")
	}
}

func TestOverlay_KeepsIdentity(t *testing.T) {
	b := New()
	id, ts := b.ID, b.Timestamp

	out := Overlay(b, Template())
	if out.ID != id || !out.Timestamp.Equal(ts) || out.Status != StatusDraft {
		t.Fatalf("overlay must keep id, timestamp and status of the target")
	}
	if diff := cmp.Diff(Template().Step5, out.Step5); diff != "" {
		t.Fatalf("step 5 not overlaid (-want +got):\n%s", diff)
	}
}
