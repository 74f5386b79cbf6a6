package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/carrot-quest/internal/audio"
)

const (
	volumeStep     = 0.05
	volumeBarWidth = 30
)

// SettingsModel edits and persists the music and effect volumes.
type SettingsModel struct {
	volumes audio.Volumes
	store   audio.SettingsStore
	player  audio.Player
	logger  *log.Logger
	bar     progress.Model
	keys    MenuKeyMap
	help    help.Model
	cursor  int
	width   int
	height  int
	done    bool
}

// NewSettingsModel creates the settings screen. store may be nil.
func NewSettingsModel(v audio.Volumes, store audio.SettingsStore, player audio.Player, logger *log.Logger, width, height int) SettingsModel {
	return SettingsModel{
		volumes: v.Clamp(),
		store:   store,
		player:  player,
		logger:  logger,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(volumeBarWidth)),
		keys:    DefaultMenuKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
}

// Init initializes the settings screen.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the settings screen.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back, m.keys.Quit, m.keys.Select):
			m.done = true
		case key.Matches(msg, m.keys.Up):
			m.cursor = 0
		case key.Matches(msg, m.keys.Down):
			m.cursor = 1
		case key.Matches(msg, m.keys.Left):
			m.adjust(-volumeStep)
		case key.Matches(msg, m.keys.Right):
			m.adjust(volumeStep)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// adjust changes the selected volume, applies it and saves it.
func (m *SettingsModel) adjust(delta float64) {
	if m.cursor == 0 {
		m.volumes.Music += delta
	} else {
		m.volumes.Effects += delta
	}
	m.volumes = m.volumes.Clamp()

	m.player.SetVolumes(m.volumes)
	if m.cursor == 1 {
		m.player.PlayEffect(audio.EffectBounce)
	}

	if m.store == nil {
		return
	}
	if err := audio.SaveVolumes(m.store, m.volumes); err != nil {
		m.logger.Warn("could not save volumes", "error", err)
	}
}

// View renders the volume sliders.
func (m SettingsModel) View() string {
	rows := []struct {
		label string
		value float64
	}{
		{"Music  ", m.volumes.Music},
		{"Effects", m.volumes.Effects},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("SETTINGS"))
	b.WriteString("\n\n")
	for i, r := range rows {
		label := "  " + r.label
		if i == m.cursor {
			label = selectedStyle.Render("> " + r.label)
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", label, m.bar.ViewAs(r.value)))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.ShortHelpView([]key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Back})))
	return placeCenter(m.width, m.height, panelStyle.Render(b.String()))
}

// Volumes returns the current volumes.
func (m SettingsModel) Volumes() audio.Volumes {
	return m.volumes
}

// Done returns true once the player leaves the screen.
func (m SettingsModel) Done() bool {
	return m.done
}
