package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLightness(t *testing.T) {
	l, err := ParseLightness(" Dark ")
	require.NoError(t, err)
	require.Equal(t, LightnessDark, l)

	l, err = ParseLightness("light")
	require.NoError(t, err)
	require.Equal(t, LightnessLight, l)

	_, err = ParseLightness("dim")
	require.Error(t, err)
}

func TestLightnessToggle(t *testing.T) {
	require.Equal(t, LightnessLight, LightnessDark.Toggle())
	require.Equal(t, LightnessDark, LightnessLight.Toggle())
	require.True(t, LightnessDark.IsDark())
	require.False(t, LightnessLight.IsDark())
}

func TestParseDirection(t *testing.T) {
	for _, in := range []string{"next", "N", "forward"} {
		d, err := ParseDirection(in)
		require.NoError(t, err)
		require.Equal(t, DirectionNext, d)
	}
	for _, in := range []string{"prev", "previous", "back"} {
		d, err := ParseDirection(in)
		require.NoError(t, err)
		require.Equal(t, DirectionPrev, d)
	}
	_, err := ParseDirection("sideways")
	require.Error(t, err)
}

func TestPaletteEntriesSkipsUnset(t *testing.T) {
	p := Palette{Background: "#000000", Foreground: "#ffffff", BrightCyan: "#00ffff"}
	entries := p.Entries()
	require.Equal(t, []NamedColor{
		{Name: "background", Value: "#000000"},
		{Name: "foreground", Value: "#ffffff"},
		{Name: "bright-cyan", Value: "#00ffff"},
	}, entries)
	require.Equal(t, "#00ffff", p.ANSI()[14])
}

func TestIsDarkBackground(t *testing.T) {
	tests := []struct {
		hex  string
		want bool
	}{
		{"#000000", true},
		{"#2e3440", true},
		{"#282a36", true},
		{"#ffffff", false},
		{"#fdf6e3", false},
		{"#eff1f5", false},
	}
	for _, tt := range tests {
		got, err := IsDarkBackground(tt.hex)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, tt.hex)
	}

	_, err := IsDarkBackground("nope")
	require.ErrorIs(t, err, ErrInvalidColor)
}

func TestRelativeLuminanceBounds(t *testing.T) {
	black, err := RelativeLuminance("#000000")
	require.NoError(t, err)
	require.InDelta(t, 0.0, black, 1e-9)

	white, err := RelativeLuminance("#ffffff")
	require.NoError(t, err)
	require.InDelta(t, 1.0, white, 1e-9)
}
