package styles

import "github.com/tOgg1/hue/internal/models"

const (
	black = "#000000"
	white = "#ffffff"
)

// ContrastRatio returns the WCAG contrast ratio between two colors (1 to 21).
func ContrastRatio(a, b string) (float64, error) {
	la, err := models.RelativeLuminance(a)
	if err != nil {
		return 0, err
	}
	lb, err := models.RelativeLuminance(b)
	if err != nil {
		return 0, err
	}
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05), nil
}

// ReadableOn picks black or white, whichever contrasts more with background.
func ReadableOn(background string) string {
	dark, err := models.IsDarkBackground(background)
	if err != nil || dark {
		return white
	}
	return black
}
