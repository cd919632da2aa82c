package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tOgg1/hue/internal/models"
	"github.com/tOgg1/hue/internal/scheme"
	"github.com/tOgg1/hue/internal/styles"
)

type listEntry struct {
	Name       string           `json:"name"`
	Lightness  models.Lightness `json:"lightness"`
	Background string           `json:"background"`
	Foreground string           `json:"foreground"`
	Author     string           `json:"author,omitempty"`
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var lightness string
	var preview bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List color schemes in catalog order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schemes, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			l, filtered, err := parseLightnessFlag(lightness)
			if err != nil {
				return err
			}
			if filtered {
				schemes = scheme.FilterByLightness(schemes, l.IsDark())
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				entries := make([]listEntry, 0, len(schemes))
				for _, cs := range schemes {
					entries = append(entries, listEntry{
						Name:       cs.Name,
						Lightness:  models.LightnessOf(cs),
						Background: cs.Meta.Colors.Background,
						Foreground: cs.Meta.Colors.Foreground,
						Author:     cs.Meta.Author,
					})
				}
				return WriteOutput(out, entries)
			}

			if preview {
				for _, cs := range schemes {
					fmt.Fprintln(out, styles.ForScheme(cs).Base.Render(" "+cs.Name+" "))
				}
				return nil
			}

			t := newTable("NAME", "LIGHTNESS", "BACKGROUND", "FOREGROUND", "AUTHOR")
			t.limit(4, 24)
			for _, cs := range schemes {
				t.addRow(
					cs.Name,
					string(models.LightnessOf(cs)),
					cs.Meta.Colors.Background,
					cs.Meta.Colors.Foreground,
					cs.Meta.Author,
				)
			}
			return t.render(out)
		},
	}
	cmd.Flags().StringVarP(&lightness, "lightness", "l", "", "only list light or dark schemes")
	cmd.Flags().BoolVar(&preview, "preview", false, "render each name in its own colors")
	return cmd
}
