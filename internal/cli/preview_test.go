package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(m SplitModel, keys ...string) SplitModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(SplitModel)
	}
	return m
}

func TestSplitModelMoves(t *testing.T) {
	m := NewSplitModel("\x1b[31mhello\x1b[0m")
	if m.Length != 5 {
		t.Fatalf("Length = %d, want 5", m.Length)
	}

	m = press(m, "left")
	if m.Offset != 0 {
		t.Errorf("left at start: Offset = %d, want 0", m.Offset)
	}

	m = press(m, "right", "l")
	prefix, suffix := m.Split()
	if prefix != "\x1b[31mhe" || suffix != "llo\x1b[0m" {
		t.Errorf("Split() = %q, %q", prefix, suffix)
	}

	m = press(m, "h")
	if m.Offset != 1 {
		t.Errorf("Offset = %d, want 1", m.Offset)
	}
}

func TestSplitModelStopsPastEnd(t *testing.T) {
	m := NewSplitModel("ab")
	m = press(m, "right", "right", "right", "right", "right")
	if m.Offset != 3 {
		t.Errorf("Offset = %d, want 3", m.Offset)
	}
	prefix, suffix := m.Split()
	if prefix != "ab" || suffix != "" {
		t.Errorf("Split() = %q, %q", prefix, suffix)
	}

	m = press(m, "0")
	if m.Offset != 0 {
		t.Errorf("Offset after home = %d, want 0", m.Offset)
	}
	m = press(m, "$")
	if m.Offset != 2 {
		t.Errorf("Offset after end = %d, want 2", m.Offset)
	}
}

func TestSplitModelQuit(t *testing.T) {
	m := NewSplitModel("ab")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestSplitModelView(t *testing.T) {
	m := press(NewSplitModel("\x1b[31mhello"), "right", "right")

	view := m.View()
	for _, want := range []string{"Split Preview", "he", "llo"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}

	quoted := press(m, "tab").View()
	if !strings.Contains(quoted, `"\x1b[31mhe"`) {
		t.Errorf("quoted View() missing escaped prefix:\n%s", quoted)
	}
}
