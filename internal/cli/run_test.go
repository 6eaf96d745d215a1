package cli

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-briefwizard/pkg/brief"
	"github.com/goliatone/go-briefwizard/pkg/i18n"
)

func TestLocalDeliverer_WritesRecordAndDocument(t *testing.T) {
	dir := t.TempDir()
	d := &localDeliverer{dir: dir, locale: i18n.DefaultLocale, logger: slog.Default()}

	record := brief.Template()
	if err := d.Deliver(context.Background(), record); err != nil {
		t.Fatalf("deliver: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	var haveJSON, haveHTML bool
	for _, entry := range entries {
		switch filepath.Ext(entry.Name()) {
		case ".json":
			haveJSON = true
		case ".html":
			haveHTML = true
		}
	}
	if !haveJSON || !haveHTML {
		t.Fatalf("expected a json record and an html document, got %v", entries)
	}

	for _, entry := range entries {
		if filepath.Ext(entry.Name()) != ".html" {
			continue
		}
		payload, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			t.Fatalf("read document: %v", err)
		}
		if !strings.Contains(string(payload), record.Step1.FullName) {
			t.Fatalf("document must contain the brief data")
		}
	}
}
