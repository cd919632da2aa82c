package scheme

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tOgg1/hue/internal/models"
)

func TestDispatchActions(t *testing.T) {
	var dispatched []Action
	actions := NewDispatchActions(func(a Action) {
		dispatched = append(dispatched, a)
	})

	actions.SetCurrentColorScheme("Light A")
	require.Equal(t, []Action{SetColorScheme{Name: "Light A"}}, dispatched)

	actions.SetCurrentLightness(models.LightnessLight)
	require.Len(t, dispatched, 2)
	require.Equal(t, SetLightness{Lightness: models.LightnessLight}, dispatched[1])

	actions.SetNextPrevColorScheme(models.DirectionNext)
	require.Len(t, dispatched, 3)
	require.Equal(t, SetNextPrev{Direction: models.DirectionNext}, dispatched[2])

	require.Equal(t, "setColorScheme", ActionType(dispatched[0]))
	require.Equal(t, "setLightness", ActionType(dispatched[1]))
	require.Equal(t, "setNextPrevColorScheme", ActionType(dispatched[2]))
}
