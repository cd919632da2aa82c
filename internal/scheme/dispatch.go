package scheme

import "github.com/tOgg1/hue/internal/models"

// DispatchFunc receives actions. The state holder decides what to do with them.
type DispatchFunc func(Action)

// DispatchActions translates call-style requests into actions.
type DispatchActions struct {
	SetCurrentColorScheme  func(name string)
	SetCurrentLightness    func(lightness models.Lightness)
	SetNextPrevColorScheme func(direction models.Direction)
}

// NewDispatchActions binds the three requests to dispatch.
func NewDispatchActions(dispatch DispatchFunc) DispatchActions {
	return DispatchActions{
		SetCurrentColorScheme: func(name string) {
			dispatch(SetColorScheme{Name: name})
		},
		SetCurrentLightness: func(lightness models.Lightness) {
			dispatch(SetLightness{Lightness: lightness})
		},
		SetNextPrevColorScheme: func(direction models.Direction) {
			dispatch(SetNextPrev{Direction: direction})
		},
	}
}
