package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/tOgg1/hue/internal/models"
	"github.com/tOgg1/hue/internal/scheme"
)

func testSchemes() []models.ColorScheme {
	mk := func(name string, dark bool, bg string) models.ColorScheme {
		return models.ColorScheme{
			Name: name,
			Meta: models.Meta{
				IsDark: dark,
				Colors: models.Palette{Background: bg, Foreground: "#888888", Blue: "#3366cc", Red: "#cc3333"},
			},
		}
	}
	return []models.ColorScheme{
		mk("Paper", false, "#fafafa"),
		mk("Midnight", true, "#101020"),
		mk("Parchment", false, "#f5ecd7"),
		mk("Ember", true, "#201010"),
		mk("Frost", false, "#eef4fa"),
	}
}

func TestNewModelStartsOnFirstDarkScheme(t *testing.T) {
	model := newTestModel(t, Config{})
	require.Equal(t, "Midnight", model.State().Current.Name)
	require.Equal(t, models.LightnessDark, model.State().Lightness)
	require.Equal(t, ViewBrowse, model.view)
	require.Equal(t, defaultWrapWidth, model.cfg.WrapWidth)
}

func TestNewModelRejectsEmptyCatalog(t *testing.T) {
	_, err := NewModel(Config{})
	require.ErrorIs(t, err, scheme.ErrEmptyCatalog)

	_, err = NewModel(Config{Schemes: testSchemes()[:1]})
	require.ErrorIs(t, err, scheme.ErrEmptySubset)
}

func TestUpdateHandlesResizeHelpAndQuit(t *testing.T) {
	model := newTestModel(t, Config{})

	model = applyUpdate(t, model, tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Equal(t, 120, model.width)
	require.Equal(t, 40, model.height)

	model = applyUpdate(t, model, runeKey('?'))
	require.True(t, model.showHelp)
	model = applyUpdate(t, model, runeKey('?'))
	require.False(t, model.showHelp)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok)
}

func TestNextPrevWrapWithinLightness(t *testing.T) {
	model := newTestModel(t, Config{})

	model = applyUpdate(t, model, runeKey('n'))
	require.Equal(t, "Ember", model.State().Current.Name)
	require.Equal(t, "Midnight → Ember", model.status)

	model = applyUpdate(t, model, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, "Midnight", model.State().Current.Name)

	model = applyUpdate(t, model, runeKey('p'))
	require.Equal(t, "Ember", model.State().Current.Name)
}

func TestToggleLightnessSelectsFirstOfSubset(t *testing.T) {
	model := newTestModel(t, Config{})
	model = applyUpdate(t, model, runeKey('n'))

	model = applyUpdate(t, model, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, models.LightnessLight, model.State().Lightness)
	require.Equal(t, "Paper", model.State().Current.Name)
	require.Contains(t, model.status, "light mode")

	model = applyUpdate(t, model, runeKey('p'))
	require.Equal(t, "Frost", model.State().Current.Name)

	model = applyUpdate(t, model, runeKey('d'))
	require.Equal(t, "Midnight", model.State().Current.Name)
}

func TestRejectedActionKeepsStateAndShowsError(t *testing.T) {
	model := newTestModel(t, Config{Schemes: testSchemes()[:2]})

	model = applyUpdate(t, model, runeKey('w'))
	require.Equal(t, "Paper", model.State().Current.Name)

	onlyDark := []models.ColorScheme{testSchemes()[1], testSchemes()[3]}
	model = newTestModel(t, Config{Schemes: onlyDark})
	model = applyUpdate(t, model, runeKey('l'))
	require.Equal(t, models.LightnessDark, model.State().Lightness)
	require.Equal(t, "Midnight", model.State().Current.Name)
	require.True(t, model.statusIsErr)
	require.Contains(t, model.status, scheme.ErrEmptySubset.Error())
}

func TestJumpPromptSwitchesLightnessFirst(t *testing.T) {
	model := newTestModel(t, Config{})

	model = applyUpdate(t, model, runeKey('/'))
	require.True(t, model.prompt.active)
	model = typeString(t, model, "parch")
	require.Equal(t, "parch", model.prompt.input)
	require.NotEmpty(t, model.prompt.matches)
	require.Equal(t, "Parchment", model.prompt.matches[0].Scheme.Name)

	model = applyUpdate(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, model.prompt.active)
	require.Equal(t, "Parchment", model.State().Current.Name)
	require.Equal(t, models.LightnessLight, model.State().Lightness)
	require.True(t, model.State().Consistent())

	model = applyUpdate(t, model, runeKey('n'))
	require.Equal(t, "Frost", model.State().Current.Name)
}

func TestJumpPromptEditingAndMiss(t *testing.T) {
	model := newTestModel(t, Config{})

	model = applyUpdate(t, model, runeKey('/'))
	model = typeString(t, model, "zzq")
	model = applyUpdate(t, model, tea.KeyMsg{Type: tea.KeyBackspace})
	require.Equal(t, "zz", model.prompt.input)

	model = applyUpdate(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, model.statusIsErr)
	require.Contains(t, model.status, "no color scheme matches")
	require.Equal(t, "Midnight", model.State().Current.Name)

	model = applyUpdate(t, model, runeKey('/'))
	model = typeString(t, model, "q")
	require.True(t, model.prompt.active, "q inside the prompt is input, not quit")
	model = applyUpdate(t, model, tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, model.prompt.active)
}

func TestListViewToggle(t *testing.T) {
	model := newTestModel(t, Config{})
	model = applyUpdate(t, model, runeKey('L'))
	require.Equal(t, ViewList, model.view)

	out := model.View()
	for _, cs := range testSchemes() {
		require.Contains(t, out, cs.Name)
	}

	model = applyUpdate(t, model, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, ViewBrowse, model.view)
}

func TestViewRendersCurrentScheme(t *testing.T) {
	model := newTestModel(t, Config{ShowSwatches: true})
	model = applyUpdate(t, model, tea.WindowSizeMsg{Width: 120, Height: 40})

	out := model.View()
	require.Contains(t, out, "Midnight")
	require.Contains(t, out, "dark 1/2")
	require.Contains(t, out, "#101020")

	model = applyUpdate(t, model, tea.WindowSizeMsg{Width: 40, Height: 20})
	require.NotPanics(t, func() { _ = model.View() })
}

func TestCloseDetachesListener(t *testing.T) {
	model := newTestModel(t, Config{})
	model.Close()
	model.status = ""

	require.NoError(t, model.store.Dispatch(scheme.SetNextPrev{Direction: models.DirectionNext}))
	require.Empty(t, model.status)
}

func newTestModel(t *testing.T, cfg Config) *Model {
	t.Helper()
	if cfg.Schemes == nil {
		cfg.Schemes = testSchemes()
	}
	model, err := NewModel(cfg)
	require.NoError(t, err)
	t.Cleanup(model.Close)
	return model
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{
		Type:  tea.KeyRunes,
		Runes: []rune{r},
	}
}

func typeString(t *testing.T, model *Model, s string) *Model {
	t.Helper()
	for _, r := range s {
		model = applyUpdate(t, model, runeKey(r))
	}
	return model
}

func applyUpdate(t *testing.T, model *Model, msg tea.Msg) *Model {
	t.Helper()
	next, _ := model.Update(msg)
	out, ok := next.(*Model)
	require.True(t, ok)
	return out
}
