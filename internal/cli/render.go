package cli

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ansimark/pkg/ansi"
	"github.com/matzehuels/ansimark/pkg/observability"
)

// renderOpts holds options for the render command.
type renderOpts struct {
	reset     string
	noNewline bool
	fragments bool
}

// renderCommand creates the render command for turning markup into ANSI output.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{reset: ansi.ResetAuto.String()}

	cmd := &cobra.Command{
		Use:   "render [markup...]",
		Short: "Render markup to ANSI escape sequences",
		Long: `Render markup to ANSI escape sequences.

Arguments starting with ':' are style tokens, resolved through the selected
theme and then the built-in style table. Other arguments are literal text;
a leading '::' produces a literal ':'. Literal text accepts \e, \n, \t, \\
and \xHH escapes.`,
		Example: `  # Built-in styles
  ansimark render :bold :red "error:" :reset " disk full"

  # Semantic names from the selected theme
  ansimark render --theme mono :warning "careful"

  # Keep styles open for concatenation
  ansimark render --reset never -n :green`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.reset, "reset", opts.reset, "trailing reset: auto, always, never")
	cmd.Flags().BoolVarP(&opts.noNewline, "no-newline", "n", false, "do not print a trailing newline")
	cmd.Flags().BoolVar(&opts.fragments, "fragments", false, "print each fragment quoted on its own line")

	return cmd
}

// runRender parses the markup, renders it and writes the result.
func (c *CLI) runRender(cmd *cobra.Command, args []string, opts renderOpts) error {
	data, err := parseTokens(args)
	if err != nil {
		return err
	}
	reset, err := parseResetPolicy(opts.reset)
	if err != nil {
		return err
	}
	options, err := c.renderOptions(cmd, reset)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	start := time.Now()
	if opts.fragments {
		out, err := ansi.Render(data, options...)
		observability.Render().OnRender(cmd.Context(), len(out.String()), time.Since(start), err)
		if err != nil {
			return err
		}
		for _, f := range out {
			printQuoted(w, f)
		}
		return nil
	}

	cw := &countWriter{w: w}
	err = ansi.Write(cw, data, !opts.noNewline, options...)
	observability.Render().OnRender(cmd.Context(), cw.n, time.Since(start), err)
	return err
}

// countWriter counts the bytes written through it.
type countWriter struct {
	w io.Writer
	n int
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
