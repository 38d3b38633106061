// Package picker provides a small terminal menu for choosing among the
// editors installed on this machine.
package picker

import (
	"fmt"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/VoxDroid/opn/editor"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0ea5a4"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("#fde047"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8")).Italic(true)
)

// Choice is one selectable editor.
type Choice struct {
	Kind   editor.Kind
	Binary string
}

// Installed probes every known editor's default binary and returns the
// ones present, in catalog order.
func Installed() []Choice {
	var out []Choice
	for _, k := range editor.Kinds() {
		if _, err := exec.LookPath(k.DefaultBinary()); err == nil {
			out = append(out, Choice{Kind: k, Binary: k.DefaultBinary()})
		}
	}
	return out
}

// Model is the bubbletea model for the picker. After the program returns,
// Selected reports whether the user confirmed a choice.
type Model struct {
	Title    string
	Choices  []Choice
	Index    int
	Selected bool
}

// New returns a picker over the given choices.
func New(title string, choices []Choice) Model {
	return Model{Title: title, Choices: choices}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model: up/down move the cursor (wrapping), enter
// confirms, esc/q abort.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.Index > 0 {
			m.Index--
		} else {
			m.Index = len(m.Choices) - 1
		}
	case "down", "j":
		m.Index = (m.Index + 1) % len(m.Choices)
	case "enter":
		m.Selected = true
		return m, tea.Quit
	case "esc", "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.Title))
	b.WriteString("\n\n")
	for i, c := range m.Choices {
		label := fmt.Sprintf("%s (%s)", c.Kind, c.Binary)
		if i == m.Index {
			b.WriteString(selectedStyle.Render("> " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("up/down: move  enter: select  esc: cancel"))
	b.WriteString("\n")
	return b.String()
}

// Choice returns the confirmed choice, if any.
func (m Model) Choice() (Choice, bool) {
	if !m.Selected || m.Index >= len(m.Choices) {
		return Choice{}, false
	}
	return m.Choices[m.Index], true
}

// Run shows the picker and returns the chosen editor kind, or false if the
// user aborted.
func Run(title string, choices []Choice) (Choice, bool, error) {
	p := tea.NewProgram(New(title, choices))
	final, err := p.Run()
	if err != nil {
		return Choice{}, false, err
	}
	m, ok := final.(Model)
	if !ok {
		return Choice{}, false, fmt.Errorf("unexpected picker model %T", final)
	}
	c, picked := m.Choice()
	return c, picked, nil
}
