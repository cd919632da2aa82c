package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tOgg1/hue/internal/logging"
	"github.com/tOgg1/hue/internal/tui"
)

func newUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive browser",
		Long:  "Open the interactive color scheme browser in the terminal.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, opts)
		},
	}
}

func runUI(cmd *cobra.Command, opts *rootOptions) error {
	if opts.nonInteractive || !hasTTY() {
		return Exitf(ExitCodeUsage, "the browser requires an interactive terminal; use list, show, next or prev instead")
	}
	schemes, err := opts.loadCatalog()
	if err != nil {
		return err
	}

	// Log lines would corrupt the alternate screen unless they go to a file.
	if opts.logSink == nil {
		settings := opts.cfg.LoggingSettings()
		settings.Output = io.Discard
		logging.Init(settings)
	}

	cfg := tui.Config{
		Schemes:      schemes,
		ShowSwatches: opts.cfg.TUI.ShowSwatches,
		CompactMode:  opts.cfg.TUI.CompactMode,
		WrapWidth:    opts.cfg.TUI.WrapWidth,
	}
	if err := tui.Run(cfg); err != nil {
		return exitFor(err)
	}
	return nil
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
