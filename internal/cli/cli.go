// Package cli implements the ansimark command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ansimark/pkg/ansi"
	"github.com/matzehuels/ansimark/pkg/buildinfo"
	"github.com/matzehuels/ansimark/pkg/errors"
	"github.com/matzehuels/ansimark/pkg/observability"
	"github.com/matzehuels/ansimark/pkg/theme"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "ansimark"

	// themeEnv names the environment variable holding the default theme.
	themeEnv = "ANSIMARK_THEME"
)

// Color modes accepted by --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ThemeDirs are searched for <name>.toml before the built-in themes.
	ThemeDirs []string

	themeName string
	colorMode string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}
	if dir, err := themeDir(); err == nil {
		c.ThemeDirs = []string{dir}
	}
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		observability.SetRenderHooks(logHooks{logger: c.Logger})
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "ansimark renders theme-aware terminal markup",
		Long:         `ansimark turns symbolic style markup into ANSI escape sequences, with themes that rename, alias and combine styles, and measures or splits already-colored text by visible position.`,
		Version:      buildinfo.Read().Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	defaultTheme := os.Getenv(themeEnv)
	if defaultTheme == "" {
		defaultTheme = theme.DefaultName
	}
	root.PersistentFlags().StringVar(&c.themeName, "theme", defaultTheme, "theme name or path to a theme file (env "+themeEnv+")")
	root.PersistentFlags().StringVar(&c.colorMode, "color", colorAuto, "emit escape sequences: auto, always, never")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.lengthCommand())
	root.AddCommand(c.splitCommand())
	root.AddCommand(c.stripCommand())
	root.AddCommand(c.wrapCommand())
	root.AddCommand(c.themesCommand())
	root.AddCommand(c.stylesCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Paths
// =============================================================================

// themeDir returns the theme directory using XDG standard (~/.config/ansimark/themes/).
func themeDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "themes"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "themes"), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// shouldEmit decides whether escape sequences are written to w.
// In auto mode the terminal profile of w decides; NO_COLOR and
// CLICOLOR_FORCE are honored through termenv.
func shouldEmit(mode string, w io.Writer) (bool, error) {
	switch mode {
	case colorAlways:
		return true, nil
	case colorNever:
		return false, nil
	case colorAuto, "":
		return termenv.NewOutput(w).EnvColorProfile() != termenv.Ascii, nil
	default:
		return false, errors.New(errors.ErrCodeInvalidInput, "invalid color mode: %s (must be 'auto', 'always', or 'never')", mode)
	}
}

// parseResetPolicy parses the --reset flag.
func parseResetPolicy(s string) (ansi.ResetPolicy, error) {
	switch s {
	case "auto", "":
		return ansi.ResetAuto, nil
	case "always", "true":
		return ansi.ResetAlways, nil
	case "never", "false":
		return ansi.ResetNever, nil
	default:
		return ansi.ResetAuto, errors.New(errors.ErrCodeInvalidInput, "invalid reset policy: %s (must be 'auto', 'always', or 'never')", s)
	}
}

// loadTheme loads the theme selected by --theme.
func (c *CLI) loadTheme(cmd *cobra.Command) (*theme.Theme, error) {
	t, err := theme.NewLoader(c.ThemeDirs...).Load(c.themeName)
	entries := 0
	if t != nil {
		entries = len(t.Styles)
	}
	observability.Render().OnThemeLoad(cmd.Context(), c.themeName, entries, err)
	if err != nil {
		return nil, err
	}
	for _, key := range t.Undecoded {
		c.Logger.Warnf("Theme %s: ignoring unknown key %q", t.Name, key)
	}
	c.Logger.Debugf("Loaded theme %s (%d styles)", t.Name, len(t.Styles))
	return t, nil
}

// renderOptions builds the ansi options shared by every command that renders.
// The theme is only loaded when styles are emitted.
func (c *CLI) renderOptions(cmd *cobra.Command, reset ansi.ResetPolicy) ([]ansi.Option, error) {
	emit, err := shouldEmit(c.colorMode, cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}
	if !emit {
		return []ansi.Option{ansi.WithEmit(false), ansi.WithReset(reset)}, nil
	}
	t, err := c.loadTheme(cmd)
	if err != nil {
		return nil, err
	}
	return []ansi.Option{
		ansi.WithTheme(t.Styles),
		ansi.WithEmit(emit),
		ansi.WithReset(reset),
	}, nil
}
