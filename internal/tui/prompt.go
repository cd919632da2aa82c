package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tOgg1/hue/internal/catalog"
)

// prompt is the "/" jump-to-scheme input.
type prompt struct {
	active  bool
	input   string
	matches []catalog.Match
}

func (p *prompt) open() {
	p.active = true
	p.input = ""
	p.matches = nil
}

func (p *prompt) close() {
	p.active = false
	p.input = ""
	p.matches = nil
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEsc:
		m.prompt.close()
		return
	case tea.KeyEnter:
		m.submitPrompt()
		return
	case tea.KeyBackspace:
		if r := []rune(m.prompt.input); len(r) > 0 {
			m.prompt.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.prompt.input += " "
	case tea.KeyRunes:
		m.prompt.input += string(msg.Runes)
	default:
		return
	}
	m.refreshMatches()
}

func (m *Model) refreshMatches() {
	query := strings.TrimSpace(m.prompt.input)
	if query == "" {
		m.prompt.matches = nil
		return
	}
	matches := catalog.Find(m.state.Schemes, query)
	if len(matches) > maxPromptMatches {
		matches = matches[:maxPromptMatches]
	}
	m.prompt.matches = matches
}

func (m *Model) submitPrompt() {
	query := strings.TrimSpace(m.prompt.input)
	m.prompt.close()
	if query == "" {
		return
	}
	cs, ok := catalog.Resolve(m.state.Schemes, query)
	if !ok {
		m.setStatus(fmt.Sprintf("no color scheme matches %q", query), true)
		return
	}
	m.jumpTo(cs)
}
