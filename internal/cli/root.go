// Package cli implements the hue command line.
package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tOgg1/hue/internal/catalog"
	"github.com/tOgg1/hue/internal/config"
	"github.com/tOgg1/hue/internal/logging"
	"github.com/tOgg1/hue/internal/models"
)

// Execute runs the hue command line.
func Execute(version string) error {
	return newRootCmd(version).Execute()
}

// rootOptions carries global flags and what PersistentPreRunE derives from them.
type rootOptions struct {
	configFile     string
	catalogPath    string
	logLevel       string
	logFormat      string
	logFile        string
	jsonOutput     bool
	noColor        bool
	nonInteractive bool

	cfg     *config.Config
	logger  zerolog.Logger
	logSink io.Closer
}

func newRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "hue",
		Short: "Browse terminal color schemes",
		Long: `hue browses a catalog of named color schemes.

Schemes are tagged light or dark. Navigation steps through the schemes of the
current lightness and wraps at both ends. Run without arguments in a terminal
to open the interactive browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			opts.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.nonInteractive || !hasTTY() {
				return cmd.Help()
			}
			return runUI(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/hue/config.yaml)")
	flags.StringVar(&opts.catalogPath, "catalog", "", "catalog file (YAML or JSON); empty uses the built-in catalog")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: trace|debug|info|warn|error|disabled")
	flags.StringVar(&opts.logFormat, "log-format", "console", "log format: console|json")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")
	flags.BoolVar(&opts.jsonOutput, "json", false, "output as JSON")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&opts.nonInteractive, "non-interactive", false, "never start the interactive browser")

	cmd.AddCommand(
		newListCmd(opts),
		newShowCmd(opts),
		newNavigateCmd(opts, models.DirectionNext),
		newNavigateCmd(opts, models.DirectionPrev),
		newVarsCmd(opts),
		newFindCmd(opts),
		newUICmd(opts),
	)

	return cmd
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	loader := config.NewLoader()
	if o.configFile != "" {
		loader.SetConfigFile(o.configFile)
	}
	if err := loader.BindFlags(cmd.Flags()); err != nil {
		return err
	}
	cfg, err := loader.Load()
	if err != nil {
		return Exitf(ExitCodeUsage, "%v", err)
	}
	o.cfg = cfg

	if o.noColor || os.Getenv("NO_COLOR") != "" {
		o.noColor = true
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	logCfg := cfg.LoggingSettings()
	logCfg.Output = cmd.ErrOrStderr()
	logCfg.NoColor = o.noColor
	if cfg.Logging.File != "" {
		f, err := logging.OpenFile(cfg.Logging.File)
		if err != nil {
			return Exitf(ExitCodeFailure, "%v", err)
		}
		o.logSink = f
		logCfg.Output = f
		logCfg.NoColor = true
	}
	logging.Init(logCfg)
	logging.NewSession()
	o.logger = logging.Component("cli")
	o.logger.Debug().
		Str("command", cmd.CommandPath()).
		Str("config", loader.ConfigFileUsed()).
		Str("catalog", cfg.Catalog.Path).
		Msg("configured")

	cmd.SetContext(logging.WithContext(contextOf(cmd), o.logger))
	return nil
}

func (o *rootOptions) teardown() {
	if o.logSink != nil {
		_ = o.logSink.Close()
		o.logSink = nil
	}
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadCatalog reads the configured catalog.
func (o *rootOptions) loadCatalog() ([]models.ColorScheme, error) {
	path := ""
	if o.cfg != nil {
		path = o.cfg.Catalog.Path
	}
	schemes, err := catalog.Load(path)
	if err != nil {
		return nil, Exitf(ExitCodeFailure, "load catalog: %v", err)
	}
	return schemes, nil
}

func parseLightnessFlag(value string) (models.Lightness, bool, error) {
	if strings.TrimSpace(value) == "" {
		return "", false, nil
	}
	l, err := models.ParseLightness(value)
	if err != nil {
		return "", false, Exitf(ExitCodeUsage, "%v", err)
	}
	return l, true, nil
}
