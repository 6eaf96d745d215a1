// Package cli wires the briefwizard commands: the interactive wizard, the
// share-link server, exports, and draft management.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-briefwizard/internal/config"
	"github.com/goliatone/go-briefwizard/pkg/i18n"
	"github.com/goliatone/go-briefwizard/pkg/prefs"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	ConfigPath string
	Locale     string
	Verbose    bool
}

// NewRootCommand creates the briefwizard root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "briefwizard",
		Short: "SAINT brand brief wizard",
		Long: `Collects a medical brand brief through an eight step interview,
keeps a resumable local draft, and on final submission appends the record to a
spreadsheet and emails a formatted copy.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default: user config dir)")
	cmd.PersistentFlags().StringVar(&opts.Locale, "locale", "", "display language (es|en)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewResetCommand(opts))
	cmd.AddCommand(NewTemplateCommand(opts))

	return cmd
}

// loadConfig resolves and loads the configuration for a command run.
func loadConfig(opts *RootOptions) (*config.Config, error) {
	path, err := config.Path(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// resolveLocale picks the display language: the --locale flag wins, then the
// saved preference, then the configured default.
func resolveLocale(opts *RootOptions, cfg *config.Config, logger *slog.Logger) i18n.Locale {
	if opts.Locale != "" {
		if locale, err := i18n.ParseLocale(opts.Locale); err == nil {
			return locale
		}
		logger.Warn("ignoring invalid --locale", "value", opts.Locale)
	}
	if store := prefsStore(cfg, logger); store != nil && store.Exists() {
		return store.Language()
	}
	return cfg.ParsedLocale()
}

func prefsStore(cfg *config.Config, logger *slog.Logger) *prefs.Store {
	path := cfg.Storage.PrefsPath
	if path == "" {
		var err error
		if path, err = prefs.DefaultPath(); err != nil {
			logger.Warn("preferences unavailable", "error", err)
			return nil
		}
	}
	store, err := prefs.NewStore(path)
	if err != nil {
		logger.Warn("preferences unavailable", "error", err)
		return nil
	}
	return store
}

// newLogger builds the command logger. Verbose runs log debug detail.
func newLogger(opts *RootOptions) *slog.Logger {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
