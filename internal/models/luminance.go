package models

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// DarkLuminanceThreshold is the relative luminance below which a background reads as dark.
// At 0.179 white and black text have equal contrast against the color.
const DarkLuminanceThreshold = 0.179

// RelativeLuminance returns the WCAG relative luminance of a #rrggbb color.
func RelativeLuminance(hex string) (float64, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b, nil
}

// IsDarkBackground reports whether hex is dark enough to call a scheme dark.
func IsDarkBackground(hex string) (bool, error) {
	lum, err := RelativeLuminance(hex)
	if err != nil {
		return false, err
	}
	return lum < DarkLuminanceThreshold, nil
}
