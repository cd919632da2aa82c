package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tOgg1/hue/internal/models"
	"github.com/tOgg1/hue/internal/scheme"
	"github.com/tOgg1/hue/internal/styles"
)

func newVarsCmd(opts *rootOptions) *cobra.Command {
	var format, selector string
	cmd := &cobra.Command{
		Use:   "vars <name>",
		Short: "Print a scheme as CSS custom properties",
		Long: `Print a scheme's palette as CSS custom properties (--color-background, ...),
as shell assignments, or as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schemes, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			cs, err := scheme.Find(schemes, args[0])
			if err != nil {
				return exitFor(err)
			}
			if opts.jsonOutput {
				format = "json"
			}
			return writeVars(cmd.OutOrStdout(), cs, format, selector)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "css", "output format: css|env|json")
	cmd.Flags().StringVar(&selector, "selector", ":root", "CSS selector for --format css")
	return cmd
}

func writeVars(out io.Writer, cs models.ColorScheme, format, selector string) error {
	switch strings.ToLower(format) {
	case "css":
		_, err := io.WriteString(out, styles.CSS(selector, styles.Vars(cs)))
		return err
	case "env":
		_, err := io.WriteString(out, styles.Env(styles.Vars(cs)))
		return err
	case "json":
		return WriteOutput(out, styles.VarsMap(cs))
	default:
		return Exitf(ExitCodeUsage, "unknown format %q (want css, env or json)", format)
	}
}

