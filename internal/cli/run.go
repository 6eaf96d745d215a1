package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-briefwizard/internal/config"
	"github.com/goliatone/go-briefwizard/internal/tui"
	"github.com/goliatone/go-briefwizard/pkg/brief"
	"github.com/goliatone/go-briefwizard/pkg/delivery"
	"github.com/goliatone/go-briefwizard/pkg/delivery/mailer"
	"github.com/goliatone/go-briefwizard/pkg/delivery/sheets"
	"github.com/goliatone/go-briefwizard/pkg/draft"
	"github.com/goliatone/go-briefwizard/pkg/export"
	"github.com/goliatone/go-briefwizard/pkg/i18n"
	"github.com/goliatone/go-briefwizard/pkg/projection"
	"github.com/goliatone/go-briefwizard/pkg/wizard"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	OutputDir string
}

// NewRunCommand creates the interactive wizard command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Walk through the brand brief interview",
		Long: `Runs the eight step interview. Progress autosaves to a local draft
after each completed step; an interrupted session resumes where it left off.

Final submission appends the brief to the configured spreadsheet and emails a
formatted copy. Without a spreadsheet configured the brief is written to local
files instead.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWizard(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.OutputDir, "output", "o", ".", "directory for local delivery files")

	return cmd
}

func runWizard(parent context.Context, opts *RunOptions) error {
	logger := newLogger(opts.RootOptions)
	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return err
	}
	locale := resolveLocale(opts.RootOptions, cfg, logger)
	rememberLocale(opts.RootOptions, cfg, locale, logger)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := openDraftStore(cfg, logger)
	deliverer, err := buildDeliverer(ctx, cfg, locale, opts.OutputDir, logger)
	if err != nil {
		return err
	}

	controller, err := wizard.New(store, deliverer, wizard.WithLogger(logger))
	if err != nil {
		return err
	}

	session, err := tui.NewSession(tui.NewSurveyDriver(), controller,
		tui.WithLocale(locale),
		tui.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if err := session.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrAborted) || errors.Is(err, context.Canceled) {
			// Draft is already autosaved; resuming later picks it up.
			fmt.Fprintln(os.Stderr, i18n.T(locale, "savedSuccessfully"))
			return nil
		}
		return err
	}
	return nil
}

// openDraftStore opens the durable draft slot, degrading to an in-memory-only
// session when local storage is unavailable.
func openDraftStore(cfg *config.Config, logger *slog.Logger) draft.Store {
	path := cfg.Storage.DraftPath
	if path == "" {
		var err error
		if path, err = draft.DefaultPath(); err != nil {
			logger.Warn("draft storage unavailable, running without autosave", "error", err)
			return draft.NewNoop()
		}
	}
	store, err := draft.NewFileStore(path, draft.WithLogger(logger))
	if err != nil {
		logger.Warn("draft storage unavailable, running without autosave", "error", err)
		return draft.NewNoop()
	}
	return store
}

// buildDeliverer assembles the submission sink. With a spreadsheet configured
// it returns the remote gateway, with email as an optional second channel;
// otherwise briefs land in local files.
func buildDeliverer(ctx context.Context, cfg *config.Config, locale i18n.Locale, outputDir string, logger *slog.Logger) (wizard.Deliverer, error) {
	if cfg.Sheets.SpreadsheetID == "" {
		logger.Info("no spreadsheet configured, delivering to local files", "dir", outputDir)
		return &localDeliverer{dir: outputDir, locale: locale, logger: logger}, nil
	}

	appender, err := sheets.NewAppender(ctx, sheets.Config{
		SpreadsheetID:   cfg.Sheets.SpreadsheetID,
		SheetName:       cfg.Sheets.SheetName,
		CredentialsFile: cfg.Sheets.CredentialsFile,
	})
	if err != nil {
		return nil, err
	}

	var notifier delivery.Notifier
	if cfg.SMTP.Host != "" {
		n, err := mailer.NewNotifier(mailer.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			To:       cfg.SMTP.To,
		})
		if err != nil {
			return nil, err
		}
		notifier = n
	}

	return delivery.NewGateway(appender, notifier,
		delivery.WithLogger(logger),
		delivery.WithLocale(locale),
	)
}

// rememberLocale persists an explicit --locale choice for future sessions.
func rememberLocale(opts *RootOptions, cfg *config.Config, locale i18n.Locale, logger *slog.Logger) {
	if opts.Locale == "" {
		return
	}
	store := prefsStore(cfg, logger)
	if store == nil {
		return
	}
	if err := store.SetLanguage(locale); err != nil {
		logger.Warn("language preference not saved", "error", err)
	}
}

// localDeliverer writes the submitted brief to disk when no remote sink is
// configured: the JSON record plus the rendered HTML document.
type localDeliverer struct {
	dir    string
	locale i18n.Locale
	logger *slog.Logger
}

func (d *localDeliverer) Deliver(_ context.Context, b brief.Brief) error {
	at := time.Now()
	jsonPath := filepath.Join(d.dir, export.JSONFilename(b, at))
	if err := export.WriteJSON(jsonPath, b); err != nil {
		return err
	}

	doc, err := projection.RenderDocument(b, d.locale, at)
	if err != nil {
		return err
	}
	docPath := filepath.Join(d.dir, export.DocumentFilename(b, at))
	if err := export.WriteDocument(docPath, doc); err != nil {
		return err
	}

	d.logger.Info("brief delivered to local files", "json", jsonPath, "document", docPath)
	return nil
}
