package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/tOgg1/hue/internal/testutil"
)

func TestLoadDefaults(t *testing.T) {
	testutil.IsolateConfig(t)

	cfg, err := LoadDefault()
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	dir := testutil.IsolateConfig(t)
	catalog := filepath.Join(dir, "schemes.yaml")
	require.NoError(t, os.WriteFile(catalog, []byte("schemes: []\n"), 0o644))

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
catalog:
  path: `+catalog+`
logging:
  level: debug
  format: json
tui:
  compact_mode: true
  wrap_width: 40
`), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, catalog, cfg.Catalog.Path)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
	require.True(t, cfg.TUI.CompactMode)
	require.True(t, cfg.TUI.ShowSwatches)
	require.Equal(t, 40, cfg.TUI.WrapWidth)
}

func TestLoadSearchesXDGConfigHome(t *testing.T) {
	dir := testutil.IsolateConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "hue"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hue", "config.yaml"), []byte("logging:\n  level: warn\n"), 0o644))

	loader := NewLoader()
	cfg, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Logging.Level)
	require.Equal(t, filepath.Join(dir, "hue", "config.yaml"), loader.ConfigFileUsed())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := testutil.IsolateConfig(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0o644))
	t.Setenv("HUE_LOGGING_LEVEL", "error")
	t.Setenv("HUE_TUI_WRAP_WIDTH", "100")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, "error", cfg.Logging.Level)
	require.Equal(t, 100, cfg.TUI.WrapWidth)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	testutil.IsolateConfig(t)
	t.Setenv("HUE_LOGGING_LEVEL", "error")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "info", "")
	require.NoError(t, flags.Parse([]string{"--log-level", "debug"}))

	loader := NewLoader()
	require.NoError(t, loader.BindFlags(flags))
	cfg, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	dir := testutil.IsolateConfig(t)
	_, err := LoadFromFile(filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: true},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: true},
		{name: "narrow wrap", mutate: func(c *Config) { c.TUI.WrapWidth = 5 }, wantErr: true},
		{name: "missing catalog", mutate: func(c *Config) { c.Catalog.Path = filepath.Join(dir, "x.yaml") }, wantErr: true},
		{name: "catalog is dir", mutate: func(c *Config) { c.Catalog.Path = dir }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandTilde(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	require.Equal(t, "", expandTilde(""))
	require.Equal(t, "/home/tester", expandTilde("~"))
	require.Equal(t, "/home/tester/schemes.yaml", expandTilde("~/schemes.yaml"))
	require.Equal(t, "/abs/path", expandTilde("/abs/path"))
}
