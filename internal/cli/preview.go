package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ansimark/pkg/ansi"
)

// =============================================================================
// SplitModel - Interactive split preview
// =============================================================================

// SplitModel is the bubbletea model that moves a split cursor over a
// rendered string.
type SplitModel struct {
	Text   string
	Offset int
	Length int
	Quote  bool
}

// NewSplitModel creates a split model positioned at the start of text.
func NewSplitModel(text string) SplitModel {
	return SplitModel{Text: text, Length: ansi.Length(text)}
}

// Split returns the prefix and suffix at the current offset.
func (m SplitModel) Split() (prefix, suffix string) {
	return ansi.SplitAt(m.Text, m.Offset)
}

func (m SplitModel) Init() tea.Cmd {
	return nil
}

func (m SplitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc", "enter":
		return m, tea.Quit
	case "left", "h":
		if m.Offset > 0 {
			m.Offset--
		}
	case "right", "l":
		// One past the end shows the clamped split.
		if m.Offset <= m.Length {
			m.Offset++
		}
	case "home", "0":
		m.Offset = 0
	case "end", "$":
		m.Offset = m.Length
	case "tab":
		m.Quote = !m.Quote
	}
	return m, nil
}

func (m SplitModel) View() string {
	prefix, suffix := m.Split()

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Split Preview"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ move  home/end jump  tab quote  q quit"))
	b.WriteString("\n\n  ")
	if m.Quote {
		b.WriteString(strconv.Quote(prefix))
		b.WriteString(styleCursor.Render(iconCursor))
		b.WriteString(strconv.Quote(suffix))
	} else {
		b.WriteString(prefix)
		b.WriteString(ansi.ResetSequence)
		b.WriteString(styleCursor.Render(iconCursor))
		b.WriteString(suffix)
		b.WriteString(ansi.ResetSequence)
	}
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  offset %s/%s  prefix %s  suffix %s",
		StyleNumber.Render(strconv.Itoa(m.Offset)),
		StyleNumber.Render(strconv.Itoa(m.Length)),
		StyleNumber.Render(strconv.Itoa(ansi.Length(prefix))),
		StyleNumber.Render(strconv.Itoa(ansi.Length(suffix))))))
	b.WriteString("\n")
	return b.String()
}

// previewCommand creates the interactive split preview command.
func (c *CLI) previewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [markup...]",
		Short: "Interactively split rendered markup",
		Long: `Render markup with the selected theme and move a split cursor across the
visible characters, showing the prefix and suffix lengths as it moves.`,
		Example: `  ansimark preview :bold :red "hello" :reset " world"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseTokens(args)
			if err != nil {
				return err
			}
			th, err := c.loadTheme(cmd)
			if err != nil {
				return err
			}
			text, err := ansi.Format(data, ansi.WithTheme(th.Styles))
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewSplitModel(text),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()))
			final, err := p.Run()
			if err != nil {
				return err
			}
			prefix, suffix := final.(SplitModel).Split()
			printQuoted(cmd.ErrOrStderr(), prefix)
			printQuoted(cmd.ErrOrStderr(), suffix)
			return nil
		},
	}
}
