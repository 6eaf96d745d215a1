package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-briefwizard/pkg/brief"
	"github.com/goliatone/go-briefwizard/pkg/export"
	"github.com/goliatone/go-briefwizard/pkg/projection"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	OutputDir string
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export <json|document|scope-draft|link>",
		Short: "Export the saved draft",
		Long: `Exports the saved draft as one of:

  json        the raw record, re-importable
  document    the formatted HTML document
  scope-draft a plain text scope starting point
  link        a shareable view URL (prints to stdout)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.OutputDir, "output", "o", ".", "output directory")

	return cmd
}

func runExport(opts *ExportOptions, artifact string, out io.Writer) error {
	logger := newLogger(opts.RootOptions)
	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return err
	}
	locale := resolveLocale(opts.RootOptions, cfg, logger)

	store := openDraftStore(cfg, logger)
	record, err := store.Load()
	if err != nil {
		return err
	}
	if record == nil {
		return fmt.Errorf("no saved draft to export")
	}

	at := time.Now()
	switch artifact {
	case "json":
		path := filepath.Join(opts.OutputDir, export.JSONFilename(*record, at))
		if err := export.WriteJSON(path, *record); err != nil {
			return err
		}
		fmt.Fprintln(out, path)

	case "document":
		doc, err := projection.RenderDocument(*record, locale, at)
		if err != nil {
			return err
		}
		path := filepath.Join(opts.OutputDir, export.DocumentFilename(*record, at))
		if err := export.WriteDocument(path, doc); err != nil {
			return err
		}
		fmt.Fprintln(out, path)

	case "scope-draft":
		text := projection.ScopeDraft(*record, locale, at)
		path := filepath.Join(opts.OutputDir, export.ScopeDraftFilename(*record, at))
		if err := export.WriteScopeDraft(path, text); err != nil {
			return err
		}
		fmt.Fprintln(out, path)

	case "link":
		if result := record.Validate(); !result.Valid {
			return fmt.Errorf("draft is incomplete, the link would not render: %s", issueSummary(result.Issues))
		}
		link, err := projection.ShareLink(cfg.Origin, *record)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, link)

	default:
		return fmt.Errorf("unknown artifact %q, expected json, document, scope-draft or link", artifact)
	}
	return nil
}

func issueSummary(issues []brief.Issue) string {
	if len(issues) == 0 {
		return "invalid record"
	}
	return fmt.Sprintf("%s: %s", issues[0].Field, issues[0].Message)
}
