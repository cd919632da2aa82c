package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/tOgg1/hue/internal/models"
	"github.com/tOgg1/hue/internal/styles"
)

const (
	defaultWidth = 80
	cursorMarker = "› "
	blankMarker  = "  "
)

const helpText = `n / → / j    next scheme of the current lightness (wraps)
p / ← / k    previous scheme (wraps)
l / tab      toggle light and dark; selects the first scheme of the new mode
d / w        switch to dark / light
/            jump to a scheme by name (fuzzy)
L            list every scheme in its own colors
?            toggle this help
q / ctrl+c   quit

Navigation only visits schemes of the current lightness. Jumping to a scheme of the other lightness switches modes first.`

func (m *Model) View() string {
	st := styles.ForScheme(m.state.Current)
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	header := m.renderHeader(st, width)
	footer := m.renderFooter(st)

	var body string
	switch {
	case m.showHelp:
		body = st.Panel.Render(wordwrap.String(helpText, m.wrapWidth()))
	case m.view == ViewList:
		body = m.renderCatalog(st)
	default:
		body = m.renderBrowse(st, width)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) renderHeader(st styles.Styles, width int) string {
	title := fmt.Sprintf("hue  %s  %s %d/%d",
		m.state.Current.Name, m.state.Lightness, m.state.Position(), len(m.state.Active()))
	return st.Header.Width(width).Render(truncate.StringWithTail(title, uint(width), "…"))
}

func (m *Model) renderBrowse(st styles.Styles, width int) string {
	cols := styles.ComputeColumnWidths(width)
	preview := st.Panel.Width(panelWidth(cols.Preview)).Render(m.renderPreview(st))
	if cols.List == 0 {
		return preview
	}
	list := st.Panel.Width(panelWidth(cols.List)).Render(m.renderSubset(st, cols.List))
	gap := st.Base.Render(strings.Repeat(" ", styles.LayoutGap))
	return lipgloss.JoinHorizontal(lipgloss.Top, list, gap, preview)
}

// panelWidth removes the border from a column width.
func panelWidth(column int) int {
	if column <= 2 {
		return column
	}
	return column - 2
}

// renderSubset lists the schemes navigation steps through.
func (m *Model) renderSubset(st styles.Styles, width int) string {
	textWidth := width - 2 - 2*styles.LayoutInnerPadding - len(cursorMarker)
	if textWidth < 1 {
		textWidth = 1
	}
	lines := []string{st.Muted.Render(string(m.state.Lightness))}
	for _, cs := range m.state.Active() {
		name := truncate.StringWithTail(cs.Name, uint(textWidth), "…")
		if cs.Name == m.state.Current.Name {
			lines = append(lines, st.Accent.Render(cursorMarker+name))
			continue
		}
		lines = append(lines, st.Base.Render(blankMarker+name))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderPreview(st styles.Styles) string {
	cs := m.state.Current
	lines := []string{st.Title.Render(cs.Name)}
	if cs.Meta.Author != "" {
		lines = append(lines, st.Muted.Render("by "+cs.Meta.Author))
	}
	if !m.state.Consistent() {
		lines = append(lines, st.Error.Render(fmt.Sprintf("not in the %s schemes", m.state.Lightness)))
	}

	if !m.cfg.CompactMode {
		lines = append(lines, "")
		for _, entry := range cs.Meta.Colors.Entries() {
			label := st.Base.Render(fmt.Sprintf("%-15s %s ", entry.Name, entry.Value))
			lines = append(lines, label+styles.Swatch(entry.Value, "    "))
		}
	}
	if m.cfg.ShowSwatches {
		lines = append(lines, "", styles.SwatchRow(cs.Meta.Colors.ANSI()))
	}
	return strings.Join(lines, "\n")
}

// renderCatalog shows every scheme in catalog order, each in its own colors.
func (m *Model) renderCatalog(st styles.Styles) string {
	lines := make([]string, 0, len(m.state.Schemes))
	for _, cs := range m.state.Schemes {
		marker := blankMarker
		if cs.Name == m.state.Current.Name {
			marker = cursorMarker
		}
		row := styles.ForScheme(cs).Base.Render(" " + cs.Name + " ")
		lines = append(lines, st.Base.Render(marker)+row+st.Muted.Render(" "+string(models.LightnessOf(cs))))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter(st styles.Styles) string {
	if m.prompt.active {
		lines := []string{st.Accent.Render("/" + m.prompt.input + "▏")}
		for _, match := range m.prompt.matches {
			lines = append(lines, st.Muted.Render("  "+match.Scheme.Name))
		}
		return strings.Join(lines, "\n")
	}

	text := "n/p step  l toggle  / jump  L list  ? help  q quit"
	style := st.Footer
	if m.status != "" {
		text = m.status
		if m.statusIsErr {
			style = st.Error
		}
	}
	return style.Render(wordwrap.String(text, m.wrapWidth()))
}
