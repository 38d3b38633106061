package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/VoxDroid/opn/editor"
)

func testChoices() []Choice {
	return []Choice{
		{Kind: editor.KindVsCode, Binary: "code"},
		{Kind: editor.KindNeoVim, Binary: "nvim"},
		{Kind: editor.KindHelix, Binary: "hx"},
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPickerNavigationWraps(t *testing.T) {
	m := New("pick", testChoices())

	next, _ := m.Update(key("up"))
	m = next.(Model)
	if m.Index != 2 {
		t.Errorf("up from first entry should wrap to last, got %d", m.Index)
	}

	next, _ = m.Update(key("down"))
	m = next.(Model)
	if m.Index != 0 {
		t.Errorf("down from last entry should wrap to first, got %d", m.Index)
	}
}

func TestPickerSelect(t *testing.T) {
	m := New("pick", testChoices())
	next, _ := m.Update(key("down"))
	m = next.(Model)
	next, cmd := m.Update(key("enter"))
	m = next.(Model)

	if cmd == nil {
		t.Error("enter must quit the program")
	}
	c, ok := m.Choice()
	if !ok || c.Kind != editor.KindNeoVim {
		t.Errorf("choice = %v, %v; want NeoVim", c, ok)
	}
}

func TestPickerAbort(t *testing.T) {
	m := New("pick", testChoices())
	next, cmd := m.Update(key("esc"))
	m = next.(Model)

	if cmd == nil {
		t.Error("esc must quit the program")
	}
	if _, ok := m.Choice(); ok {
		t.Error("aborting must not report a choice")
	}
}

func TestPickerView(t *testing.T) {
	m := New("Open main.go with:", testChoices())
	view := m.View()
	if !strings.Contains(view, "Open main.go with:") {
		t.Error("view missing title")
	}
	if !strings.Contains(view, "NeoVim (nvim)") {
		t.Error("view missing choice labels")
	}
}
