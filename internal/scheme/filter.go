package scheme

import "github.com/tOgg1/hue/internal/models"

// FilterByLightness returns the schemes whose IsDark flag equals isDark, in catalog order.
// The result is never nil.
func FilterByLightness(schemes []models.ColorScheme, isDark bool) []models.ColorScheme {
	out := make([]models.ColorScheme, 0, len(schemes))
	for _, cs := range schemes {
		if cs.Meta.IsDark == isDark {
			out = append(out, cs)
		}
	}
	return out
}
