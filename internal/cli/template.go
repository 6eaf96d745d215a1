package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-briefwizard/pkg/brief"
)

// TemplateOptions holds flags for the template command.
type TemplateOptions struct {
	*RootOptions
	Load bool
}

// NewTemplateCommand creates the template command.
func NewTemplateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TemplateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Print the example brief",
		Long: `Prints the fully populated example brief as JSON. With --load the
example is saved as the current draft so a run starts from it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplate(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Load, "load", false, "save the example as the current draft")

	return cmd
}

func runTemplate(opts *TemplateOptions) error {
	record := brief.Template()

	if opts.Load {
		logger := newLogger(opts.RootOptions)
		cfg, err := loadConfig(opts.RootOptions)
		if err != nil {
			return err
		}
		store := openDraftStore(cfg, logger)
		if _, err := store.Save(record); err != nil {
			return err
		}
		fmt.Println("example saved as current draft")
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(record)
}
