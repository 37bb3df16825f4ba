package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ansimark/pkg/ansi"
	"github.com/matzehuels/ansimark/pkg/errors"
	"github.com/matzehuels/ansimark/pkg/theme"
)

// sampleText is rendered with each style in listings.
const sampleText = "sample"

// newTable returns a table styled like the rest of the CLI output.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// themesCommand creates the themes command listing available themes.
func (c *CLI) themesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Long: `List the themes found in the theme directory and the built-in themes.
A theme file shadows a built-in theme of the same name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := theme.NewLoader(c.ThemeDirs...)
			t := newTable("", "Theme", "Source", "Styles", "Description")
			for _, name := range loader.Names() {
				marker := ""
				if name == c.themeName {
					marker = styleCursor.Render("▸")
				}
				th, err := loader.Load(name)
				if err != nil {
					t.Row(marker, name, "—", "—", styleIconError.Render(errors.UserMessage(err)))
					continue
				}
				source := iconBuiltin
				if th.Path != "" {
					source = th.Path
				}
				t.Row(marker, name, source, strconv.Itoa(len(th.Styles)), th.Description)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

// stylesCommand creates the styles command listing resolvable style names.
func (c *CLI) stylesCommand() *cobra.Command {
	var builtin bool

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List style names with their escape sequences",
		Long: `List the entries of the selected theme with the sequence each one resolves
to. With --builtin, list the built-in style table instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			emit, err := shouldEmit(c.colorMode, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			var (
				styles ansi.Theme
				names  []string
			)
			if builtin {
				names = ansi.Names()
			} else {
				th, err := c.loadTheme(cmd)
				if err != nil {
					return err
				}
				styles = th.Styles
				names = styles.Names()
			}

			t := newTable("Style", "Sequence", "Sample")
			for _, name := range names {
				seq, err := styles.Resolve(ansi.Style(name))
				if err != nil {
					return err
				}
				sample, err := ansi.Format(ansi.L(ansi.Style(name), sampleText),
					ansi.WithTheme(styles), ansi.WithEmit(emit))
				if err != nil {
					return err
				}
				t.Row(name, strconv.Quote(seq), sample)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}

	cmd.Flags().BoolVar(&builtin, "builtin", false, "list the built-in style table")

	return cmd
}
