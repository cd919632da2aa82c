package cli

import (
	"io"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

const tablePadding = 2

var csiPattern = regexp.MustCompile("\x1b\\[[0-9;?]*[ -/]*[@-~]")

// table lays out rows in aligned columns. Cells may contain ANSI styling.
type table struct {
	headers  []string
	rows     [][]string
	maxWidth map[int]int
}

func newTable(headers ...string) *table {
	return &table{headers: headers, maxWidth: make(map[int]int)}
}

func (t *table) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// limit truncates plain cells in column col to width display cells.
func (t *table) limit(col, width int) {
	t.maxWidth[col] = width
}

func (t *table) cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	value := row[col]
	if width, ok := t.maxWidth[col]; ok && !strings.Contains(value, "\x1b") {
		value = runewidth.Truncate(value, width, "…")
	}
	return value
}

func (t *table) columns() int {
	n := len(t.headers)
	for _, row := range t.rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

func (t *table) render(out io.Writer) error {
	cols := t.columns()
	if cols == 0 {
		return nil
	}

	all := make([][]string, 0, len(t.rows)+1)
	if len(t.headers) > 0 {
		all = append(all, t.headers)
	}
	all = append(all, t.rows...)

	widths := make([]int, cols)
	for _, row := range all {
		for col := 0; col < cols; col++ {
			if w := displayWidth(t.cell(row, col)); w > widths[col] {
				widths[col] = w
			}
		}
	}

	var b strings.Builder
	for _, row := range all {
		for col := 0; col < cols; col++ {
			value := t.cell(row, col)
			b.WriteString(value)
			if col < cols-1 {
				b.WriteString(strings.Repeat(" ", widths[col]-displayWidth(value)+tablePadding))
			}
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(out, b.String())
	return err
}

func displayWidth(value string) int {
	return runewidth.StringWidth(stripANSI(value))
}

func stripANSI(value string) string {
	return csiPattern.ReplaceAllString(value, "")
}
