package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tOgg1/hue/internal/models"
	"github.com/tOgg1/hue/internal/scheme"
	"github.com/tOgg1/hue/internal/styles"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show the palette of one color scheme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schemes, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			cs, err := scheme.Find(schemes, args[0])
			if err != nil {
				return exitFor(err)
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return WriteOutput(out, cs)
			}

			fmt.Fprintf(out, "%s (%s)\n", cs.Name, models.LightnessOf(cs))
			if cs.Meta.Author != "" {
				fmt.Fprintf(out, "author: %s\n", cs.Meta.Author)
			}
			if cs.Meta.Source != "" {
				fmt.Fprintf(out, "source: %s\n", cs.Meta.Source)
			}
			if ratio, err := styles.ContrastRatio(cs.Meta.Colors.Foreground, cs.Meta.Colors.Background); err == nil {
				fmt.Fprintf(out, "contrast: %.1f:1\n", ratio)
			}
			fmt.Fprintln(out)

			t := newTable("COLOR", "VALUE", "")
			for _, entry := range cs.Meta.Colors.Entries() {
				swatch := ""
				if !opts.noColor {
					swatch = styles.Swatch(entry.Value, "    ")
				}
				t.addRow(entry.Name, entry.Value, swatch)
			}
			return t.render(out)
		},
	}
}
