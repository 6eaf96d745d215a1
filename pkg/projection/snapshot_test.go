package projection

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-briefwizard/pkg/brief"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	original := brief.Template()

	token, err := EncodeSnapshot(original)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeSnapshot(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(original, decoded); diff != "" {
		t.Fatalf("round trip mismatch (-original +decoded):\n%s", diff)
	}
}

func TestDecodeSnapshot_RejectsGarbage(t *testing.T) {
	cases := []struct {
		name  string
		token string
		stage string
	}{
		{"not base64", "%%%not-base64%%%", "base64"},
		{"not json", "bm90IGpzb24=", "json"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeSnapshot(tc.token)
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("expected *DecodeError, got %v", err)
			}
			if decodeErr.Stage != tc.stage {
				t.Fatalf("expected stage %q, got %q", tc.stage, decodeErr.Stage)
			}
		})
	}
}

func TestDecodeSnapshot_RejectsIncompleteBrief(t *testing.T) {
	token, err := EncodeSnapshot(brief.New())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	_, err = DecodeSnapshot(token)
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError for an empty brief, got %v", err)
	}
	if decodeErr.Stage != "validate" {
		t.Fatalf("expected validate stage, got %q", decodeErr.Stage)
	}
}

func TestShareLink(t *testing.T) {
	link, err := ShareLink("https://example.com/", brief.Template())
	if err != nil {
		t.Fatalf("share link: %v", err)
	}
	if !strings.HasPrefix(link, "https://example.com/brief/view?data=") {
		t.Fatalf("unexpected link shape: %q", link)
	}
	if strings.Contains(link, "//brief") {
		t.Fatalf("trailing origin slash must be trimmed: %q", link)
	}
}
