// Package scheme holds the color scheme selection state machine.
//
// State is a value. NewState builds the first snapshot from a catalog and Reduce maps a
// snapshot plus an Action to the next snapshot. Nothing in this package mutates a State it
// was given; the slices inside a State are shared between snapshots and must be treated as
// read-only by callers.
package scheme

import (
	"fmt"

	"github.com/tOgg1/hue/internal/models"
)

// State is one snapshot of the browser selection.
type State struct {
	Current      models.ColorScheme   `json:"currentColorScheme"`
	Lightness    models.Lightness     `json:"currentLightness"`
	LightSchemes []models.ColorScheme `json:"lightColorSchemes"`
	DarkSchemes  []models.ColorScheme `json:"darkColorSchemes"`
	Schemes      []models.ColorScheme `json:"colorSchemes"`
}

// NewState partitions catalog by lightness and selects the first dark scheme.
func NewState(catalog []models.ColorScheme) (State, error) {
	if len(catalog) == 0 {
		return State{}, ErrEmptyCatalog
	}

	state := State{
		Lightness:    models.LightnessDark,
		LightSchemes: FilterByLightness(catalog, false),
		DarkSchemes:  FilterByLightness(catalog, true),
		Schemes:      catalog,
	}
	if len(state.DarkSchemes) == 0 {
		return State{}, fmt.Errorf("%w: %s", ErrEmptySubset, models.LightnessDark)
	}
	state.Current = state.DarkSchemes[0]
	return state, nil
}

// Subset returns the schemes navigable under lightness.
func (s State) Subset(lightness models.Lightness) []models.ColorScheme {
	if lightness.IsDark() {
		return s.DarkSchemes
	}
	return s.LightSchemes
}

// Active returns the schemes navigable under the current lightness.
func (s State) Active() []models.ColorScheme {
	return s.Subset(s.Lightness)
}

// Position returns the 1-based index of Current within the active subset, or 0.
func (s State) Position() int {
	return indexOf(s.Active(), s.Current.Name) + 1
}

// Consistent reports whether Current belongs to the subset of the current lightness.
func (s State) Consistent() bool {
	return s.Position() > 0
}
