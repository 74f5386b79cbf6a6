package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/carrot-quest/internal/audio"
	"github.com/vovakirdan/carrot-quest/internal/core"
	"github.com/vovakirdan/carrot-quest/internal/registry"
)

// Screen identifies which view a session shows.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenGame
	ScreenInstructions
	ScreenScores
	ScreenSettings
)

// SessionModel manages the full session flow: menu, game, instructions,
// scoreboard and settings. It is the top-level model for local and SSH play.
type SessionModel struct {
	newGame      func() registry.Game
	gameID       string
	title        string
	opts         Options
	config       core.RuntimeConfig
	volumes      audio.Volumes
	screen       Screen
	exitOnBack   bool
	menu         MenuModel
	game         *GameModel
	instructions InstructionsModel
	scores       ScoreboardModel
	settings     SettingsModel
	quitting     bool
}

// NewSessionModel creates a session that opens on the start screen.
// Leaving the scoreboard ends the session when it is the start screen.
func NewSessionModel(newGame func() registry.Game, cfg core.RuntimeConfig, opts Options, start Screen) SessionModel {
	opts = opts.withDefaults()
	probe := newGame()

	volumes, err := audio.LoadVolumes(opts.Settings)
	if err != nil {
		opts.Logger.Warn("using default volumes", "error", err)
	}
	opts.Player.SetVolumes(volumes)

	m := SessionModel{
		newGame:    newGame,
		gameID:     probe.ID(),
		title:      probe.Title(),
		opts:       opts,
		config:     cfg,
		volumes:    volumes,
		exitOnBack: start == ScreenScores,
	}
	m.enter(start)
	return m
}

// Init starts the initial screen.
func (m SessionModel) Init() tea.Cmd {
	if m.screen == ScreenGame && m.game != nil {
		return m.game.Init()
	}
	return nil
}

// switchTo enters a screen and returns the command that starts it.
func (m *SessionModel) switchTo(s Screen) tea.Cmd {
	m.enter(s)
	if s == ScreenGame {
		return m.game.Init()
	}
	return nil
}

// enter switches to a screen and builds its model.
func (m *SessionModel) enter(s Screen) {
	m.screen = s
	w, h := m.config.ScreenW, m.config.ScreenH

	switch s {
	case ScreenMenu:
		m.game = nil
		m.menu = NewMenuModel(w, h, m.highScore())
		m.opts.Player.PlayMusic(audio.TrackMenu)
	case ScreenGame:
		g := NewGameModel(m.newGame(), m.config, m.opts)
		m.game = &g
	case ScreenInstructions:
		m.instructions = NewInstructionsModel(w, h)
	case ScreenScores:
		m.scores = NewScoreboardModel(m.opts.Store, m.gameID, m.title, w, h)
	case ScreenSettings:
		m.settings = NewSettingsModel(m.volumes, m.opts.Settings, m.opts.Player, m.opts.Logger, w, h)
	}
}

// highScore returns the stored best, or 0 when unavailable.
func (m *SessionModel) highScore() int {
	if m.opts.Store == nil {
		return 0
	}
	best, err := m.opts.Store.HighScore(m.gameID)
	if err != nil {
		m.opts.Logger.Warn("could not read high score", "error", err)
		return 0
	}
	return best
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case ScreenGame:
		return m.updateGame(msg)
	case ScreenInstructions:
		return m.updateInstructions(msg)
	case ScreenScores:
		return m.updateScores(msg)
	case ScreenSettings:
		return m.updateSettings(msg)
	default:
		return m.updateMenu(msg)
	}
}

// quit ends the session.
func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.opts.Player.StopMusic()
	return m, tea.Quit
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		return m.quit()
	}

	switch m.menu.Selected() {
	case ChoicePlay:
		return m, m.switchTo(ScreenGame)
	case ChoiceInstructions:
		return m, m.switchTo(ScreenInstructions)
	case ChoiceScores:
		return m, m.switchTo(ScreenScores)
	case ChoiceSettings:
		return m, m.switchTo(ScreenSettings)
	}
	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		return m.quit()
	}

	if m.game.BackToMenu() {
		m.opts.PlayerName = m.game.PlayerName()
		return m, tea.Batch(cmd, m.switchTo(ScreenMenu))
	}

	return m, cmd
}

// updateInstructions handles updates on the instructions screen.
func (m SessionModel) updateInstructions(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.instructions.Update(msg)
	if im, ok := newModel.(InstructionsModel); ok {
		m.instructions = im
	}
	if m.instructions.Done() {
		return m, m.switchTo(ScreenMenu)
	}
	return m, cmd
}

// updateScores handles updates on the scoreboard.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sm, ok := newModel.(ScoreboardModel); ok {
		m.scores = sm
	}

	if m.scores.IsQuitting() || (m.scores.IsGoingBack() && m.exitOnBack) {
		return m.quit()
	}
	if m.scores.IsGoingBack() {
		return m, m.switchTo(ScreenMenu)
	}
	return m, cmd
}

// updateSettings handles updates on the settings screen.
func (m SessionModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.settings.Update(msg)
	if sm, ok := newModel.(SettingsModel); ok {
		m.settings = sm
	}
	m.volumes = m.settings.Volumes()

	if m.settings.Done() {
		return m, m.switchTo(ScreenMenu)
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case ScreenGame:
		if m.game != nil {
			return m.game.View()
		}
	case ScreenInstructions:
		return m.instructions.View()
	case ScreenScores:
		return m.scores.View()
	case ScreenSettings:
		return m.settings.View()
	}
	return m.menu.View()
}

// Screen returns the screen currently shown.
func (m SessionModel) Screen() Screen {
	return m.screen
}

// Run starts a local session program on the start screen.
func Run(newGame func() registry.Game, cfg core.RuntimeConfig, opts Options, start Screen) error {
	model := NewSessionModel(newGame, cfg, opts, start)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
