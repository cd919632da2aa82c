package scheme

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tOgg1/hue/internal/models"
)

func TestReduceSetColorScheme(t *testing.T) {
	state := darkState()

	got, err := Reduce(state, SetColorScheme{Name: testDark[1].Name})
	require.NoError(t, err)

	want := darkState()
	want.Current = testDark[1]
	require.Equal(t, want, got)

	// input snapshot is untouched
	require.Equal(t, darkState(), state)
}

func TestReduceSetColorSchemeInvalidName(t *testing.T) {
	state := darkState()
	got, err := Reduce(state, SetColorScheme{Name: "Invalid Color Scheme"})
	require.ErrorIs(t, err, ErrNameNotFound)
	require.Equal(t, state, got)
}

func TestReduceSetColorSchemeAcrossLightnessKeepsLightness(t *testing.T) {
	got, err := Reduce(darkState(), SetColorScheme{Name: "Light B"})
	require.NoError(t, err)
	require.Equal(t, "Light B", got.Current.Name)
	require.Equal(t, models.LightnessDark, got.Lightness)
	require.False(t, got.Consistent())

	_, err = Reduce(got, SetNextPrev{Direction: models.DirectionNext})
	require.ErrorIs(t, err, ErrNameNotFound)
}

func TestReduceSetLightness(t *testing.T) {
	t.Run("to light", func(t *testing.T) {
		got, err := Reduce(darkState(), SetLightness{Lightness: models.LightnessLight})
		require.NoError(t, err)

		want := darkState()
		want.Lightness = models.LightnessLight
		want.Current = testLight[0]
		require.Equal(t, want, got)
	})

	t.Run("to dark", func(t *testing.T) {
		got, err := Reduce(lightState(), SetLightness{Lightness: models.LightnessDark})
		require.NoError(t, err)

		want := lightState()
		want.Lightness = models.LightnessDark
		want.Current = testDark[0]
		require.Equal(t, want, got)
	})

	t.Run("same lightness resets to first", func(t *testing.T) {
		state := darkState()
		state.Current = testDark[1]
		got, err := Reduce(state, SetLightness{Lightness: models.LightnessDark})
		require.NoError(t, err)
		require.Equal(t, testDark[0], got.Current)
	})
}

func TestReduceSetLightnessEmptySubset(t *testing.T) {
	state := darkState()
	state.LightSchemes = []models.ColorScheme{}
	state.Schemes = testDark

	got, err := Reduce(state, SetLightness{Lightness: models.LightnessLight})
	require.ErrorIs(t, err, ErrEmptySubset)
	require.Equal(t, state, got)
}

func TestReduceSetLightnessUnknown(t *testing.T) {
	_, err := Reduce(darkState(), SetLightness{Lightness: models.Lightness("sepia")})
	require.ErrorIs(t, err, ErrUnknownLightness)
}

func TestReduceSetNextPrev(t *testing.T) {
	next, err := Reduce(darkState(), SetNextPrev{Direction: models.DirectionNext})
	require.NoError(t, err)

	want := darkState()
	want.Current = testDark[1]
	require.Equal(t, want, next)

	wrapped, err := Reduce(next, SetNextPrev{Direction: models.DirectionNext})
	require.NoError(t, err)
	require.Equal(t, testDark[0], wrapped.Current)
}

func TestReduceSetNextPrevWhenLight(t *testing.T) {
	got, err := Reduce(lightState(), SetNextPrev{Direction: models.DirectionNext})
	require.NoError(t, err)

	want := lightState()
	want.Current = testLight[1]
	require.Equal(t, want, got)

	got, err = Reduce(lightState(), SetNextPrev{Direction: models.DirectionPrev})
	require.NoError(t, err)
	require.Equal(t, testLight[2], got.Current)
}

func TestReduceNilAction(t *testing.T) {
	state := darkState()
	got, err := Reduce(state, nil)
	require.ErrorIs(t, err, ErrUnknownAction)
	require.Equal(t, state, got)
}
