package styles

import (
	"fmt"
	"strings"

	"github.com/tOgg1/hue/internal/models"
)

// VarPrefix starts every projected variable name.
const VarPrefix = "--color-"

// Var is one projected variable.
type Var struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Vars projects a scheme's palette onto CSS custom properties, in palette order.
// A --color-scheme variable carries the lightness so consumers can set color-scheme.
func Vars(cs models.ColorScheme) []Var {
	entries := cs.Meta.Colors.Entries()
	out := make([]Var, 0, len(entries)+1)
	out = append(out, Var{Name: "--color-scheme", Value: string(models.LightnessOf(cs))})
	for _, e := range entries {
		out = append(out, Var{Name: VarPrefix + e.Name, Value: e.Value})
	}
	return out
}

// VarsMap is Vars keyed by name.
func VarsMap(cs models.ColorScheme) map[string]string {
	vars := Vars(cs)
	out := make(map[string]string, len(vars))
	for _, v := range vars {
		out[v.Name] = v.Value
	}
	return out
}

// CSS renders vars as a rule body for selector.
func CSS(selector string, vars []Var) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s {\n", selector)
	for _, v := range vars {
		fmt.Fprintf(&b, "  %s: %s;\n", v.Name, v.Value)
	}
	b.WriteString("}\n")
	return b.String()
}

// Env renders vars as shell assignments, e.g. HUE_COLOR_BACKGROUND='#2e3440'.
func Env(vars []Var) string {
	lines := make([]string, 0, len(vars))
	for _, v := range vars {
		name := strings.TrimPrefix(v.Name, "--")
		name = "HUE_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
		lines = append(lines, fmt.Sprintf("%s='%s'", name, v.Value))
	}
	return strings.Join(lines, "\n") + "\n"
}
