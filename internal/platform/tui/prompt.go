package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const maxNameLength = 16

// namePrompt asks for a player name after a run beats the stored best.
type namePrompt struct {
	input     textinput.Model
	score     int
	done      bool
	cancelled bool
}

// newNamePrompt creates a focused prompt prefilled with name.
func newNamePrompt(name string, score int) (namePrompt, tea.Cmd) {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = maxNameLength
	ti.Width = maxNameLength + 1
	ti.SetValue(name)
	ti.CursorEnd()
	cmd := ti.Focus()
	return namePrompt{input: ti, score: score}, cmd
}

// Update handles a key while the prompt is open.
func (p namePrompt) Update(msg tea.KeyMsg) (namePrompt, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		p.done = true
		return p, nil
	case tea.KeyEsc:
		p.done = true
		p.cancelled = true
		return p, nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// Value returns the trimmed name.
func (p namePrompt) Value() string {
	return strings.TrimSpace(p.input.Value())
}

// View renders the prompt panel.
func (p namePrompt) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("NEW HIGH SCORE!"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Score: %d", p.score))
	b.WriteString("\n\n")
	b.WriteString(p.input.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("enter: save  •  esc: skip"))
	return panelStyle.Render(b.String())
}
