package tui

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-briefwizard/pkg/brief"
	"github.com/goliatone/go-briefwizard/pkg/i18n"
)

func TestPromptIdentityStyle_DoesNotMutateSeedRecord(t *testing.T) {
	record := brief.Template()
	want := append([]brief.Perception(nil), record.Step2.Perception...)

	driver := &scriptedDriver{
		textAreas:    []string{"nuevo texto", "nueva filosofía"},
		multiSelects: [][]int{{1, 4}},
	}
	data, err := promptIdentityStyle(context.Background(), driver, i18n.DefaultLocale, record)
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}

	step2, ok := data.(brief.IdentityStyle)
	if !ok {
		t.Fatalf("unexpected payload %T", data)
	}
	wantNew := []brief.Perception{brief.PerceptionEleganteAspiracional, brief.PerceptionCasualDirecto}
	if diff := cmp.Diff(wantNew, step2.Perception); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}
	// Re-editing the step must leave the seed record alone until the new
	// submission is accepted.
	if diff := cmp.Diff(want, record.Step2.Perception); diff != "" {
		t.Fatalf("seed record mutated (-want +got):\n%s", diff)
	}
}

func TestPromptMarketingGoals_DoesNotMutateSeedRecord(t *testing.T) {
	record := brief.Template()
	want := append([]brief.Objective(nil), record.Step6.MainObjective...)

	driver := &scriptedDriver{
		inputs:       []string{"30", "@otra_cuenta"},
		multiSelects: [][]int{{4}},
	}
	data, err := promptMarketingGoals(context.Background(), driver, i18n.DefaultLocale, record)
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}

	step6, ok := data.(brief.MarketingGoals)
	if !ok {
		t.Fatalf("unexpected payload %T", data)
	}
	wantNew := []brief.Objective{brief.ObjectiveLiderazgoOpinion}
	if diff := cmp.Diff(wantNew, step6.MainObjective); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, record.Step6.MainObjective); diff != "" {
		t.Fatalf("seed record mutated (-want +got):\n%s", diff)
	}
}
