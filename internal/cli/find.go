package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tOgg1/hue/internal/catalog"
	"github.com/tOgg1/hue/internal/models"
)

func newFindCmd(opts *rootOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "find <query>",
		Short: "Fuzzy-search scheme names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schemes, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			matches := catalog.Find(schemes, strings.Join(args, " "))
			if limit > 0 && len(matches) > limit {
				matches = matches[:limit]
			}
			if len(matches) == 0 {
				return Exitf(ExitCodeUsage, "no color scheme matches %q", strings.Join(args, " "))
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				names := make([]string, len(matches))
				for i, m := range matches {
					names[i] = m.Scheme.Name
				}
				return WriteOutput(out, names)
			}
			for _, m := range matches {
				fmt.Fprintf(out, "%s\t%s\n", m.Scheme.Name, models.LightnessOf(m.Scheme))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum matches to print (0 for all)")
	return cmd
}
