package scheme

import (
	"fmt"

	"github.com/tOgg1/hue/internal/models"
)

// Reduce applies action to state and returns the next state.
// On error the input state is returned unchanged.
func Reduce(state State, action Action) (State, error) {
	next := state

	switch a := action.(type) {
	case SetColorScheme:
		cs, err := Find(state.Schemes, a.Name)
		if err != nil {
			return state, err
		}
		next.Current = cs

	case SetLightness:
		if a.Lightness != models.LightnessLight && a.Lightness != models.LightnessDark {
			return state, fmt.Errorf("%w: %q", ErrUnknownLightness, a.Lightness)
		}
		subset := state.Subset(a.Lightness)
		if len(subset) == 0 {
			return state, fmt.Errorf("%w: %s", ErrEmptySubset, a.Lightness)
		}
		next.Lightness = a.Lightness
		next.Current = subset[0]

	case SetNextPrev:
		cs, err := NextPrev(state.Active(), state.Current.Name, a.Direction)
		if err != nil {
			return state, err
		}
		next.Current = cs

	default:
		return state, fmt.Errorf("%w: %T", ErrUnknownAction, action)
	}

	return next, nil
}
