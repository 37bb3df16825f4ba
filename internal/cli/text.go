package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ansimark/pkg/ansi"
	"github.com/matzehuels/ansimark/pkg/errors"
	"github.com/matzehuels/ansimark/pkg/observability"
)

// readInput returns the text a text command operates on: the arguments
// joined by spaces with escapes expanded, or stdin without its final newline.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return unescape(strings.Join(args, " "))
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "reading stdin")
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// printQuoted writes s as a Go string literal so escape sequences are visible.
func printQuoted(w io.Writer, s string) {
	fmt.Fprintf(w, "%q\n", s)
}

// lengthCommand creates the length command.
func (c *CLI) lengthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "length [text...]",
		Short: "Print the visible length of colored text",
		Long: `Print the number of visible characters, ignoring SGR escape sequences
and cursor home. Reads stdin when no text is given.`,
		Example: `  ansimark render :red hello | ansimark length`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ansi.Length(s))
			return nil
		},
	}
}

// splitOpts holds options for the split command.
type splitOpts struct {
	at    int
	quote bool
}

// splitCommand creates the split command.
func (c *CLI) splitCommand() *cobra.Command {
	var opts splitOpts

	cmd := &cobra.Command{
		Use:   "split --at N [text...]",
		Short: "Split colored text at a visible position",
		Long: `Split colored text after N visible characters. Escape sequences before
the cut stay with the prefix; sequences directly after the last character of
the prefix start the suffix. Prints the prefix and the suffix on separate lines.`,
		Example: `  ansimark render :red hello | ansimark split --at 2 --quote`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.at < 0 {
				return errors.New(errors.ErrCodeInvalidOffset, "offset must be non-negative, got %d", opts.at)
			}
			s, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			observability.Render().OnSplit(cmd.Context(), ansi.Length(s), opts.at)

			prefix, suffix := ansi.SplitAt(s, opts.at)
			w := cmd.OutOrStdout()
			if opts.quote {
				printQuoted(w, prefix)
				printQuoted(w, suffix)
				return nil
			}
			fmt.Fprintln(w, prefix)
			fmt.Fprintln(w, suffix)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.at, "at", 0, "visible offset to split at")
	cmd.Flags().BoolVarP(&opts.quote, "quote", "q", false, "print both parts as quoted strings")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

// stripCommand creates the strip command.
func (c *CLI) stripCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strip [text...]",
		Short: "Remove escape sequences from text",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ansi.Strip(s))
			return nil
		},
	}
}

// wrapCommand creates the wrap command.
func (c *CLI) wrapCommand() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "wrap [text...]",
		Short: "Hard-wrap colored text at a visible width",
		Long: `Hard-wrap colored text every N visible characters. Existing newlines
start new lines. Escape sequences are never split.`,
		Example: `  ls --color=always | ansimark wrap --width 40`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width < 1 {
				return errors.New(errors.ErrCodeInvalidInput, "width must be positive, got %d", width)
			}
			s, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, line := range ansi.Wrap(s, width) {
				fmt.Fprintln(w, line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 80, "visible characters per line")

	return cmd
}
