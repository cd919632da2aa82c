// Package tui is the interactive color scheme browser.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/tOgg1/hue/internal/logging"
	"github.com/tOgg1/hue/internal/models"
	"github.com/tOgg1/hue/internal/scheme"
)

const (
	defaultWrapWidth = 72
	maxPromptMatches = 5
)

// ViewID names one screen of the browser.
type ViewID string

const (
	ViewBrowse ViewID = "browse"
	ViewList   ViewID = "list"
)

// Config controls the browser.
type Config struct {
	Schemes      []models.ColorScheme
	ShowSwatches bool
	CompactMode  bool
	WrapWidth    int
}

// Model is the bubbletea model. It owns a Store and drives it through the dispatch façade.
type Model struct {
	cfg     Config
	store   *scheme.Store
	actions scheme.DispatchActions
	state   scheme.State
	logger  zerolog.Logger
	unwatch func()

	width    int
	height   int
	view     ViewID
	showHelp bool
	prompt   prompt

	status      string
	statusIsErr bool
}

// NewModel builds the initial state from cfg.Schemes.
func NewModel(cfg Config) (*Model, error) {
	normalized, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	store, err := scheme.NewStore(normalized.Schemes)
	if err != nil {
		return nil, fmt.Errorf("init state: %w", err)
	}

	m := &Model{
		cfg:     normalized,
		store:   store,
		actions: store.Actions(),
		state:   store.State(),
		logger:  logging.Component("tui"),
		view:    ViewBrowse,
	}
	m.unwatch = store.OnChange(func(prev, next scheme.State) {
		if prev.Lightness != next.Lightness {
			m.setStatus(fmt.Sprintf("%s mode: %s", next.Lightness, next.Current.Name), false)
			return
		}
		m.setStatus(fmt.Sprintf("%s → %s", prev.Current.Name, next.Current.Name), false)
	})
	return m, nil
}

// Run starts the browser on the alternate screen and blocks until it exits.
func Run(cfg Config) error {
	model, err := NewModel(cfg)
	if err != nil {
		return err
	}
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// Close detaches the model from its store.
func (m *Model) Close() {
	if m == nil || m.unwatch == nil {
		return
	}
	m.unwatch()
	m.unwatch = nil
}

// State returns the snapshot the model last rendered.
func (m *Model) State() scheme.State {
	return m.state
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		return m, nil
	case tea.KeyMsg:
		if typed.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.prompt.active {
			m.handlePromptKey(typed)
			return m, nil
		}
		return m, m.handleKey(typed)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "?":
		m.showHelp = !m.showHelp
	case "esc":
		m.showHelp = false
		m.view = ViewBrowse
	case "n", "right", "j", "down":
		m.actions.SetNextPrevColorScheme(models.DirectionNext)
		m.sync("next")
	case "p", "left", "k", "up":
		m.actions.SetNextPrevColorScheme(models.DirectionPrev)
		m.sync("prev")
	case "l", "tab":
		m.actions.SetCurrentLightness(m.state.Lightness.Toggle())
		m.sync("toggle lightness")
	case "d":
		m.actions.SetCurrentLightness(models.LightnessDark)
		m.sync("dark")
	case "w":
		m.actions.SetCurrentLightness(models.LightnessLight)
		m.sync("light")
	case "L":
		if m.view == ViewList {
			m.view = ViewBrowse
		} else {
			m.view = ViewList
		}
	case "/":
		m.prompt.open()
	}
	return nil
}

// sync pulls the store's snapshot and surfaces the last dispatch error.
func (m *Model) sync(op string) {
	m.state = m.store.State()
	if err := m.store.Err(); err != nil {
		m.logger.Debug().Err(err).Str("op", op).Msg("action rejected")
		m.setStatus(err.Error(), true)
	}
}

// jumpTo selects cs, switching lightness first so the selection stays navigable.
func (m *Model) jumpTo(cs models.ColorScheme) {
	if l := models.LightnessOf(cs); l != m.state.Lightness {
		m.actions.SetCurrentLightness(l)
		m.sync("jump lightness")
		if m.store.Err() != nil {
			return
		}
	}
	logger := logging.WithScheme(m.logger, cs.Name)
	logger.Debug().Msg("jump")
	m.actions.SetCurrentColorScheme(cs.Name)
	m.sync("jump")
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusIsErr = isErr
}

func (c Config) normalize() (Config, error) {
	if len(c.Schemes) == 0 {
		return Config{}, scheme.ErrEmptyCatalog
	}
	if c.WrapWidth <= 0 {
		c.WrapWidth = defaultWrapWidth
	}
	return c, nil
}

func (m *Model) wrapWidth() int {
	w := m.cfg.WrapWidth
	if m.width > 0 && m.width < w {
		w = m.width
	}
	return w
}
