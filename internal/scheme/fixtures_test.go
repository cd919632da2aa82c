package scheme

import "github.com/tOgg1/hue/internal/models"

func light(name string) models.ColorScheme {
	return models.ColorScheme{Name: name, Meta: models.Meta{IsDark: false}}
}

func dark(name string) models.ColorScheme {
	return models.ColorScheme{Name: name, Meta: models.Meta{IsDark: true}}
}

var (
	testLight = []models.ColorScheme{light("Light A"), light("Light B"), light("Light C")}
	testDark  = []models.ColorScheme{dark("Dark A"), dark("Dark B")}
)

func testCatalog() []models.ColorScheme {
	out := append([]models.ColorScheme{}, testLight...)
	return append(out, testDark...)
}

func darkState() State {
	return State{
		Current:      testDark[0],
		Lightness:    models.LightnessDark,
		LightSchemes: testLight,
		DarkSchemes:  testDark,
		Schemes:      testCatalog(),
	}
}

func lightState() State {
	s := darkState()
	s.Current = testLight[0]
	s.Lightness = models.LightnessLight
	return s
}
