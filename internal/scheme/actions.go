package scheme

import "github.com/tOgg1/hue/internal/models"

// Action is a state transition request. The set of implementations is closed.
type Action interface {
	actionType() string
}

// SetColorScheme selects a scheme from the full catalog by name.
type SetColorScheme struct {
	Name string `json:"colorSchemeName"`
}

// SetLightness switches lightness and selects the first scheme of that lightness.
type SetLightness struct {
	Lightness models.Lightness `json:"lightness"`
}

// SetNextPrev steps through the schemes of the current lightness.
type SetNextPrev struct {
	Direction models.Direction `json:"direction"`
}

func (SetColorScheme) actionType() string { return "setColorScheme" }
func (SetLightness) actionType() string   { return "setLightness" }
func (SetNextPrev) actionType() string    { return "setNextPrevColorScheme" }

// ActionType returns the wire name of an action, as used in logs.
func ActionType(a Action) string {
	if a == nil {
		return ""
	}
	return a.actionType()
}
