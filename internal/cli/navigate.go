package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tOgg1/hue/internal/logging"
	"github.com/tOgg1/hue/internal/models"
	"github.com/tOgg1/hue/internal/scheme"
)

type navigateResult struct {
	Name      string           `json:"name"`
	Lightness models.Lightness `json:"lightness"`
	Position  int              `json:"position"`
	Total     int              `json:"total"`
}

func newNavigateCmd(opts *rootOptions, direction models.Direction) *cobra.Command {
	var from, lightness string
	var steps int
	short := "Print the scheme after the current one"
	aliases := []string{"forward"}
	if direction == models.DirectionPrev {
		short = "Print the scheme before the current one"
		aliases = []string{"previous", "back"}
	}

	cmd := &cobra.Command{
		Use:     string(direction),
		Aliases: aliases,
		Short:   short,
		Long: fmt.Sprintf(`Start from the initial state (first dark scheme), optionally switch lightness
and select --from, then step %s --steps times through the schemes of the
current lightness. Stepping wraps at both ends.`, direction),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			direction, err := models.ParseDirection(cmd.CalledAs())
			if err != nil {
				return Exitf(ExitCodeUsage, "%v", err)
			}
			if steps < 0 {
				return Exitf(ExitCodeUsage, "--steps must be non-negative")
			}
			schemes, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			l, hasLightness, err := parseLightnessFlag(lightness)
			if err != nil {
				return err
			}

			state, err := navigate(schemes, from, l, hasLightness, direction, steps)
			if err != nil {
				return exitFor(err)
			}
			logger := logging.FromContext(contextOf(cmd))
			logger.Debug().
				Str("direction", string(direction)).
				Int("steps", steps).
				Str("result", state.Current.Name).
				Msg("navigated")

			result := navigateResult{
				Name:      state.Current.Name,
				Lightness: state.Lightness,
				Position:  state.Position(),
				Total:     len(state.Active()),
			}
			if opts.jsonOutput {
				return WriteOutput(cmd.OutOrStdout(), result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "scheme to start from")
	cmd.Flags().StringVarP(&lightness, "lightness", "l", "", "lightness to navigate (default: the --from scheme's, else dark)")
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "number of steps")
	return cmd
}

// navigate drives the reducer the way the interactive browser does.
// Without an explicit lightness, --from's own lightness is used so stepping stays in its subset.
func navigate(schemes []models.ColorScheme, from string, lightness models.Lightness, hasLightness bool, direction models.Direction, steps int) (scheme.State, error) {
	state, err := scheme.NewState(schemes)
	if err != nil {
		return state, err
	}

	actions := make([]scheme.Action, 0, steps+2)
	if !hasLightness && from != "" {
		if cs, err := scheme.Find(schemes, from); err == nil {
			lightness, hasLightness = models.LightnessOf(cs), true
		}
	}
	if hasLightness {
		actions = append(actions, scheme.SetLightness{Lightness: lightness})
	}
	if from != "" {
		actions = append(actions, scheme.SetColorScheme{Name: from})
	}
	for i := 0; i < steps; i++ {
		actions = append(actions, scheme.SetNextPrev{Direction: direction})
	}

	for _, action := range actions {
		state, err = scheme.Reduce(state, action)
		if err != nil {
			return state, fmt.Errorf("%s: %w", scheme.ActionType(action), err)
		}
	}
	return state, nil
}
