package projection

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"

	"github.com/goliatone/go-briefwizard/pkg/brief"
)

var fixedAt = time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)

func TestRow_MatchesHeaderCount(t *testing.T) {
	headers := Headers()
	row := Row(brief.Template(), fixedAt)
	if len(row) != len(headers) {
		t.Fatalf("row has %d values for %d headers", len(row), len(headers))
	}

	empty := Row(brief.New(), fixedAt)
	if len(empty) != len(headers) {
		t.Fatalf("empty brief row has %d values for %d headers", len(empty), len(headers))
	}
}

func TestRow_Formatting(t *testing.T) {
	row := Row(brief.Template(), fixedAt)

	if row[0] != "15/1/2026, 10:30:00" {
		t.Fatalf("timestamp column: got %q", row[0])
	}
	if row[4] != "Ciudad de México, Guadalajara" {
		t.Fatalf("cities column must join with a comma and space, got %q", row[4])
	}
	if row[6] != "cercano_humano, profesional_tecnico, innovador_tecnologico" {
		t.Fatalf("perception column must keep raw tokens, got %q", row[6])
	}
	if row[27] != "Sí" {
		t.Fatalf("ads column: got %q", row[27])
	}
}

func TestRow_EmptyFieldsStayEmpty(t *testing.T) {
	row := Row(brief.New(), fixedAt)
	if row[1] != "" || row[5] != "" || row[18] != "" {
		t.Fatalf("unset fields must project as empty strings, got name=%q years=%q consultations=%q", row[1], row[5], row[18])
	}
	if row[27] != "No" {
		t.Fatalf("default ads flag must project as No, got %q", row[27])
	}
}

func TestRow_Golden(t *testing.T) {
	headers := Headers()
	row := Row(brief.Template(), fixedAt)

	var sb strings.Builder
	for i, header := range headers {
		fmt.Fprintf(&sb, "%s: %s\n", header, row[i])
	}

	g := goldie.New(t)
	g.Assert(t, "template_row", []byte(sb.String()))
}
