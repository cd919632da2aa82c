package models

import (
	"fmt"
	"strings"
)

// Lightness selects which half of a catalog is navigable.
type Lightness string

const (
	LightnessLight Lightness = "light"
	LightnessDark  Lightness = "dark"
)

// ParseLightness normalizes user input into a Lightness.
func ParseLightness(value string) (Lightness, error) {
	switch Lightness(strings.ToLower(strings.TrimSpace(value))) {
	case LightnessLight:
		return LightnessLight, nil
	case LightnessDark:
		return LightnessDark, nil
	default:
		return "", fmt.Errorf("invalid lightness %q (want light or dark)", value)
	}
}

// IsDark reports whether l selects dark schemes.
func (l Lightness) IsDark() bool {
	return l == LightnessDark
}

// Toggle returns the opposite lightness.
func (l Lightness) Toggle() Lightness {
	if l == LightnessDark {
		return LightnessLight
	}
	return LightnessDark
}

// LightnessOf returns the lightness a scheme belongs to.
func LightnessOf(cs ColorScheme) Lightness {
	if cs.Meta.IsDark {
		return LightnessDark
	}
	return LightnessLight
}

// Direction is a navigation step through an ordered list of schemes.
type Direction string

const (
	DirectionNext Direction = "next"
	DirectionPrev Direction = "prev"
)

// ParseDirection normalizes user input into a Direction.
func ParseDirection(value string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "next", "n", "forward":
		return DirectionNext, nil
	case "prev", "previous", "p", "back":
		return DirectionPrev, nil
	default:
		return "", fmt.Errorf("invalid direction %q (want next or prev)", value)
	}
}

// ColorScheme is a named palette tagged light or dark.
type ColorScheme struct {
	// Name is unique within a catalog.
	Name string `json:"name" yaml:"name"`

	// Meta carries the lightness flag and the palette itself.
	Meta Meta `json:"meta" yaml:"meta"`
}

// Meta describes a color scheme.
type Meta struct {
	IsDark bool    `json:"isDark" yaml:"is_dark"`
	Author string  `json:"author,omitempty" yaml:"author,omitempty"`
	Source string  `json:"source,omitempty" yaml:"source,omitempty"`
	Colors Palette `json:"colors" yaml:"colors"`
}

// Palette holds the terminal colors of a scheme as #rrggbb hex strings.
type Palette struct {
	Background string `json:"background" yaml:"background"`
	Foreground string `json:"foreground" yaml:"foreground"`
	Cursor     string `json:"cursor,omitempty" yaml:"cursor,omitempty"`
	Selection  string `json:"selection,omitempty" yaml:"selection,omitempty"`

	Black   string `json:"black,omitempty" yaml:"black,omitempty"`
	Red     string `json:"red,omitempty" yaml:"red,omitempty"`
	Green   string `json:"green,omitempty" yaml:"green,omitempty"`
	Yellow  string `json:"yellow,omitempty" yaml:"yellow,omitempty"`
	Blue    string `json:"blue,omitempty" yaml:"blue,omitempty"`
	Magenta string `json:"magenta,omitempty" yaml:"magenta,omitempty"`
	Cyan    string `json:"cyan,omitempty" yaml:"cyan,omitempty"`
	White   string `json:"white,omitempty" yaml:"white,omitempty"`

	BrightBlack   string `json:"brightBlack,omitempty" yaml:"bright_black,omitempty"`
	BrightRed     string `json:"brightRed,omitempty" yaml:"bright_red,omitempty"`
	BrightGreen   string `json:"brightGreen,omitempty" yaml:"bright_green,omitempty"`
	BrightYellow  string `json:"brightYellow,omitempty" yaml:"bright_yellow,omitempty"`
	BrightBlue    string `json:"brightBlue,omitempty" yaml:"bright_blue,omitempty"`
	BrightMagenta string `json:"brightMagenta,omitempty" yaml:"bright_magenta,omitempty"`
	BrightCyan    string `json:"brightCyan,omitempty" yaml:"bright_cyan,omitempty"`
	BrightWhite   string `json:"brightWhite,omitempty" yaml:"bright_white,omitempty"`
}

// NamedColor is one entry of a palette.
type NamedColor struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Entries lists the palette in a stable order, skipping unset colors.
func (p Palette) Entries() []NamedColor {
	all := []NamedColor{
		{"background", p.Background},
		{"foreground", p.Foreground},
		{"cursor", p.Cursor},
		{"selection", p.Selection},
		{"black", p.Black},
		{"red", p.Red},
		{"green", p.Green},
		{"yellow", p.Yellow},
		{"blue", p.Blue},
		{"magenta", p.Magenta},
		{"cyan", p.Cyan},
		{"white", p.White},
		{"bright-black", p.BrightBlack},
		{"bright-red", p.BrightRed},
		{"bright-green", p.BrightGreen},
		{"bright-yellow", p.BrightYellow},
		{"bright-blue", p.BrightBlue},
		{"bright-magenta", p.BrightMagenta},
		{"bright-cyan", p.BrightCyan},
		{"bright-white", p.BrightWhite},
	}
	out := all[:0]
	for _, c := range all {
		if strings.TrimSpace(c.Value) == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ANSI returns the 16 ANSI colors in terminal order. Unset slots are empty.
func (p Palette) ANSI() [16]string {
	return [16]string{
		p.Black, p.Red, p.Green, p.Yellow, p.Blue, p.Magenta, p.Cyan, p.White,
		p.BrightBlack, p.BrightRed, p.BrightGreen, p.BrightYellow,
		p.BrightBlue, p.BrightMagenta, p.BrightCyan, p.BrightWhite,
	}
}
