package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// ResetOptions holds flags for the reset command.
type ResetOptions struct {
	*RootOptions
	Force bool
}

// NewResetCommand creates the draft reset command.
func NewResetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ResetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "reset",
		Short:         "Discard the saved draft",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReset(opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "skip confirmation")

	return cmd
}

func runReset(opts *ResetOptions) error {
	logger := newLogger(opts.RootOptions)
	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return err
	}

	store := openDraftStore(cfg, logger)
	if !store.Exists() {
		fmt.Println("no saved draft")
		return nil
	}

	if !opts.Force {
		fmt.Print("discard the saved draft? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y") {
			return nil
		}
	}

	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Println("draft discarded")
	return nil
}
