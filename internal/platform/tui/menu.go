package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuChoice identifies a main menu entry.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceInstructions
	ChoiceScores
	ChoiceSettings
	ChoiceQuit
)

// MenuItem represents a selectable main menu entry.
type MenuItem struct {
	Choice MenuChoice
	Label  string
}

var mainMenuItems = []MenuItem{
	{ChoicePlay, "Play"},
	{ChoiceInstructions, "Instructions"},
	{ChoiceScores, "High Scores"},
	{ChoiceSettings, "Settings"},
	{ChoiceQuit, "Quit"},
}

const logo = `  ___                  _      ___                 _
 / __|__ _ _ _ _ _ ___| |_   / _ \ _  _ ___ ___| |_
| (__/ _' | '_| '_/ _ \  _| | (_) | || / -_|_-<  _|
 \___\__,_|_| |_| \___/\__|  \__\_\\_,_\___/__/\__|`

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	best     int
	keys     MenuKeyMap
	help     help.Model
	selected MenuChoice
	quitting bool
}

// NewMenuModel creates a new menu model. best is the stored high score.
func NewMenuModel(width, height, best int) MenuModel {
	return MenuModel{
		items:  mainMenuItems,
		width:  width,
		height: height,
		best:   best,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		m.selected = m.items[m.cursor].Choice
		if m.selected == ChoiceQuit {
			m.quitting = true
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(logo))
	b.WriteString("\n\n")
	if m.best > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("Best: %d", m.best)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + item.Label + "  "))
		} else {
			b.WriteString("  " + item.Label + "  ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	block := lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
	return placeCenter(m.width, m.height, block)
}

// Selected returns the chosen entry, or ChoiceNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// instructions is the help text shown from the main menu and the pause screen.
var instructions = []string{
	"Guide the rabbit as high as you can.",
	"",
	"The rabbit bounces whenever it lands on a platform.",
	"Steer left and right; leaving one side wraps to the other.",
	"Moving fast when you land gives a higher bounce.",
	"",
	"Points come from climbing and from every new platform reached.",
	"Falling off the bottom or touching a bomb ends the run.",
	"",
	"←/a  →/d   steer       ↓/s   stop",
	"p/esc      pause       r     restart",
	"b          menu        q     quit",
	"i          this help (while paused)",
}

// InstructionsModel shows how to play.
type InstructionsModel struct {
	width  int
	height int
	keys   MenuKeyMap
	done   bool
}

// NewInstructionsModel creates the instructions screen.
func NewInstructionsModel(width, height int) InstructionsModel {
	return InstructionsModel{width: width, height: height, keys: DefaultMenuKeyMap()}
}

// Init initializes the instructions screen.
func (m InstructionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the instructions screen.
func (m InstructionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Back, m.keys.Select, m.keys.Quit) {
			m.done = true
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the instructions.
func (m InstructionsModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("HOW TO PLAY"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(instructions, "\n"))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("enter/esc: back"))
	return placeCenter(m.width, m.height, panelStyle.Render(b.String()))
}

// Done returns true once the player leaves the screen.
func (m InstructionsModel) Done() bool {
	return m.done
}
