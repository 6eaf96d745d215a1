package cli

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-briefwizard/internal/config"
	"github.com/goliatone/go-briefwizard/pkg/draft"
	"github.com/goliatone/go-briefwizard/pkg/i18n"
	"github.com/goliatone/go-briefwizard/pkg/prefs"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Storage.DraftPath = filepath.Join(dir, "draft.json")
	cfg.Storage.PrefsPath = filepath.Join(dir, "prefs.json")
	return cfg
}

func TestResolveLocale_FlagWins(t *testing.T) {
	cfg := testConfig(t)
	opts := &RootOptions{Locale: "en"}

	if got := resolveLocale(opts, cfg, slog.Default()); got != i18n.LocaleEN {
		t.Fatalf("flag locale must win, got %q", got)
	}
}

func TestResolveLocale_SavedPreferenceBeatsConfig(t *testing.T) {
	cfg := testConfig(t)
	store, err := prefs.NewStore(cfg.Storage.PrefsPath)
	if err != nil {
		t.Fatalf("new prefs store: %v", err)
	}
	if err := store.SetLanguage(i18n.LocaleEN); err != nil {
		t.Fatalf("set language: %v", err)
	}

	if got := resolveLocale(&RootOptions{}, cfg, slog.Default()); got != i18n.LocaleEN {
		t.Fatalf("saved preference must win over config, got %q", got)
	}
}

func TestResolveLocale_ConfigDefault(t *testing.T) {
	cfg := testConfig(t)

	if got := resolveLocale(&RootOptions{}, cfg, slog.Default()); got != i18n.DefaultLocale {
		t.Fatalf("expected the configured default, got %q", got)
	}
}

func TestResolveLocale_InvalidFlagFallsThrough(t *testing.T) {
	cfg := testConfig(t)
	opts := &RootOptions{Locale: "fr"}

	if got := resolveLocale(opts, cfg, slog.Default()); got != i18n.DefaultLocale {
		t.Fatalf("invalid flag must fall through, got %q", got)
	}
}

func TestOpenDraftStore_FileBacked(t *testing.T) {
	cfg := testConfig(t)

	store := openDraftStore(cfg, slog.Default())
	if _, ok := store.(*draft.FileStore); !ok {
		t.Fatalf("expected a file store, got %T", store)
	}
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	root := NewRootCommand()
	for _, name := range []string{"run", "serve", "export", "reset", "template"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("missing subcommand %q", name)
		}
	}
}
