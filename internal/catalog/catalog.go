// Package catalog loads the ordered list of color schemes hue browses.
//
// A catalog is read from a YAML file (see builtin.yaml for the layout) or from a JSON array of
// {name, meta: {isDark, colors}} objects. Entries that omit the dark flag get it inferred from
// the luminance of their background color.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tOgg1/hue/internal/logging"
	"github.com/tOgg1/hue/internal/models"
)

//go:embed builtin.yaml
var builtinYAML []byte

// File is the on-disk YAML layout.
type File struct {
	Schemes []Entry `yaml:"schemes"`
}

// Entry is one scheme in a YAML catalog file.
type Entry struct {
	Name   string         `yaml:"name"`
	IsDark *bool          `yaml:"is_dark,omitempty"`
	Author string         `yaml:"author,omitempty"`
	Source string         `yaml:"source,omitempty"`
	Colors models.Palette `yaml:"colors"`
}

// Builtin returns the embedded catalog.
func Builtin() ([]models.ColorScheme, error) {
	schemes, err := ParseYAML(builtinYAML)
	if err != nil {
		return nil, fmt.Errorf("builtin catalog: %w", err)
	}
	return schemes, nil
}

// Load reads the catalog at path, or the built-in catalog when path is empty.
func Load(path string) ([]models.ColorScheme, error) {
	logger := logging.Component("catalog")
	path = strings.TrimSpace(path)
	if path == "" {
		schemes, err := Builtin()
		if err != nil {
			return nil, err
		}
		logger.Debug().Int("schemes", len(schemes)).Msg("loaded builtin catalog")
		return schemes, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var schemes []models.ColorScheme
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		schemes, err = ParseJSON(data)
	default:
		schemes, err = ParseYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug().Str("path", path).Strs("names", Names(schemes)).Msg("loaded catalog")
	return schemes, nil
}

// ParseYAML decodes and validates a YAML catalog.
func ParseYAML(data []byte) ([]models.ColorScheme, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	validation := &models.ValidationErrors{}
	schemes := make([]models.ColorScheme, 0, len(file.Schemes))
	for i, entry := range file.Schemes {
		cs := models.ColorScheme{
			Name: entry.Name,
			Meta: models.Meta{
				Author: entry.Author,
				Source: entry.Source,
				Colors: entry.Colors,
			},
		}
		if entry.IsDark != nil {
			cs.Meta.IsDark = *entry.IsDark
		} else if dark, err := models.IsDarkBackground(entry.Colors.Background); err == nil {
			cs.Meta.IsDark = dark
		}
		validation.Add(fmt.Sprintf("schemes[%d]", i), cs.Validate())
		schemes = append(schemes, cs)
	}
	if err := validation.Err(); err != nil {
		return nil, err
	}
	if err := Validate(schemes); err != nil {
		return nil, err
	}
	return schemes, nil
}

// ParseJSON decodes and validates a JSON array of schemes.
// The dark flag is taken as given; JSON has no way to mark it absent here.
func ParseJSON(data []byte) ([]models.ColorScheme, error) {
	var schemes []models.ColorScheme
	if err := json.Unmarshal(data, &schemes); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	validation := &models.ValidationErrors{}
	for i, cs := range schemes {
		validation.Add(fmt.Sprintf("[%d]", i), cs.Validate())
	}
	if err := validation.Err(); err != nil {
		return nil, err
	}
	if err := Validate(schemes); err != nil {
		return nil, err
	}
	return schemes, nil
}

// Validate checks catalog-level rules: at least one scheme and unique names.
func Validate(schemes []models.ColorScheme) error {
	validation := &models.ValidationErrors{}
	if len(schemes) == 0 {
		validation.AddMessage("schemes", "catalog has no color schemes")
	}
	seen := make(map[string]int, len(schemes))
	for i, cs := range schemes {
		if first, ok := seen[cs.Name]; ok {
			validation.Add(fmt.Sprintf("schemes[%d].name", i),
				fmt.Errorf("%w: %q (first at %d)", models.ErrDuplicateSchemeName, cs.Name, first))
			continue
		}
		seen[cs.Name] = i
	}
	return validation.Err()
}

// Names returns the scheme names in catalog order.
func Names(schemes []models.ColorScheme) []string {
	names := make([]string, len(schemes))
	for i, cs := range schemes {
		names[i] = cs.Name
	}
	return names
}
