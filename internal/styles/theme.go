// Package styles projects a color scheme onto lipgloss styles and CSS-style variables.
package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tOgg1/hue/internal/models"
)

// fallback colors for palettes that leave accent slots unset.
const (
	fallbackAccent = "#5b8def"
	fallbackMuted  = "#8b9aae"
	fallbackError  = "#f85149"
)

// BaseColors defines global UI colors.
type BaseColors struct {
	Background string
	Foreground string
	Muted      string
	Accent     string
	Border     string
	Error      string
}

// Theme is the set of UI colors derived from one color scheme.
type Theme struct {
	Name   string
	IsDark bool
	Base   BaseColors
	ANSI   [16]string
}

// FromScheme derives UI colors from a scheme's palette.
func FromScheme(cs models.ColorScheme) Theme {
	p := cs.Meta.Colors
	return Theme{
		Name:   cs.Name,
		IsDark: cs.Meta.IsDark,
		Base: BaseColors{
			Background: p.Background,
			Foreground: p.Foreground,
			Muted:      firstSet(p.BrightBlack, p.White, fallbackMuted),
			Accent:     firstSet(p.Blue, p.Cyan, fallbackAccent),
			Border:     firstSet(p.Selection, p.BrightBlack, fallbackMuted),
			Error:      firstSet(p.Red, p.BrightRed, fallbackError),
		},
		ANSI: p.ANSI(),
	}
}

func firstSet(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// Styles contains lipgloss styles derived from a theme.
type Styles struct {
	Theme  Theme
	Base   lipgloss.Style
	Title  lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style
	Error  lipgloss.Style
	Panel  lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style
}

// Build converts theme colors into lipgloss styles.
func Build(theme Theme) Styles {
	b := theme.Base
	bg := lipgloss.Color(b.Background)
	return Styles{
		Theme:  theme,
		Base:   lipgloss.NewStyle().Foreground(lipgloss.Color(b.Foreground)).Background(bg),
		Title:  lipgloss.NewStyle().Foreground(lipgloss.Color(b.Foreground)).Background(bg).Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color(b.Muted)).Background(bg),
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color(b.Accent)).Background(bg).Bold(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color(b.Error)).Background(bg),
		Panel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(b.Foreground)).
			Background(bg).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(b.Border)).
			BorderBackground(bg).
			Padding(0, LayoutInnerPadding),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(b.Background)).
			Background(lipgloss.Color(b.Accent)).
			Bold(true).
			Padding(0, LayoutOuterPadding),
		Footer: lipgloss.NewStyle().Foreground(lipgloss.Color(b.Muted)).Background(bg),
	}
}

// ForScheme is Build(FromScheme(cs)).
func ForScheme(cs models.ColorScheme) Styles {
	return Build(FromScheme(cs))
}

// Swatch renders label on a block of color, with a readable text color.
func Swatch(color, label string) string {
	if strings.TrimSpace(color) == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color(ReadableOn(color))).
		Render(label)
}

// SwatchRow renders the 16 ANSI colors as two rows of numbered blocks.
func SwatchRow(ansi [16]string) string {
	var normal, bright []string
	for i, c := range ansi {
		cell := Swatch(c, fmt.Sprintf(" %02d ", i))
		if cell == "" {
			cell = "    "
		}
		if i < 8 {
			normal = append(normal, cell)
		} else {
			bright = append(bright, cell)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, normal...),
		lipgloss.JoinHorizontal(lipgloss.Top, bright...),
	)
}
