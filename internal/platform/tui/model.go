package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/carrot-quest/internal/audio"
	"github.com/vovakirdan/carrot-quest/internal/core"
	"github.com/vovakirdan/carrot-quest/internal/registry"
	"github.com/vovakirdan/carrot-quest/internal/storage"
)

// Options carries the collaborators shared by every screen of a session.
type Options struct {
	Store      *storage.Store      // May be nil: scores are not persisted
	Settings   audio.SettingsStore // May be nil: volume changes last for the session
	Player     audio.Player        // Nil means silent
	Logger     *log.Logger         // Nil means discard
	PlayerName string              // Default name for saved scores
	FrameRate  int                 // Frames per second that dt = 1 stands for
}

// withDefaults fills the unset options.
func (o Options) withDefaults() Options {
	if o.Player == nil {
		o.Player = audio.Nop{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.PlayerName == "" {
		o.PlayerName = storage.DefaultPlayerName
	}
	if o.FrameRate <= 0 {
		o.FrameRate = 60
	}
	return o
}

// GameModel is the Bubble Tea model that drives one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       GameKeyMap
	clock      frameClock
	intent     intentTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	runID      uuid.UUID
	prompt     *namePrompt
	help       *InstructionsModel
	scoreSaved bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	opts = opts.withDefaults()

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		clock:      newFrameClock(opts.FrameRate),
		inputFrame: core.NewInputFrame(),
		runID:      uuid.New(),
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		if m.help != nil {
			m.help.width, m.help.height = msg.Width, msg.Height
		}
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompt != nil {
		return m.handlePromptKey(msg)
	}
	if m.help != nil {
		return m.handleHelpKey(msg)
	}

	if key.Matches(msg, m.keys.Help) && m.gameState.Phase == core.PhasePaused {
		h := NewInstructionsModel(m.config.ScreenW, m.config.ScreenH)
		m.help = &h
		return m, nil
	}
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}
	if key.Matches(msg, m.keys.Stop) {
		m.intent.Stop()
		return m, nil
	}

	switch action := m.keys.MapKey(msg, m.gameState.Phase); action {
	case core.ActionQuit:
		m.quitting = true
		m.opts.Player.StopMusic()
		return m, nil
	case core.ActionLeft, core.ActionRight:
		m.intent.Press(action, time.Now())
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handlePromptKey feeds a key to the high score prompt.
func (m GameModel) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		m.opts.Player.StopMusic()
		return m, nil
	}

	p, cmd := m.prompt.Update(msg)
	if !p.done {
		m.prompt = &p
		return m, cmd
	}
	m.prompt = nil

	name := p.Value()
	if p.cancelled || name == "" || m.opts.Store == nil {
		return m, nil
	}
	if err := m.opts.Store.SetPlayerName(m.runID, name); err != nil {
		m.opts.Logger.Warn("could not save player name", "error", err)
		return m, nil
	}
	m.opts.PlayerName = name
	m.opts.Logger.Debug("player name saved", "run", m.runID, "name", name)
	return m, nil
}

// handleHelpKey feeds a key to the instructions opened from the pause screen.
// Closing them returns to the paused run.
func (m GameModel) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		m.opts.Player.StopMusic()
		return m, nil
	}

	next, cmd := m.help.Update(msg)
	h, ok := next.(InstructionsModel)
	if !ok || h.Done() {
		m.help = nil
		return m, cmd
	}
	m.help = &h
	return m, cmd
}

// handleTick advances the game by one frame.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	m.inputFrame.DT = m.clock.Next(now)
	if dir := m.intent.Held(now); dir != core.ActionNone {
		m.inputFrame.Set(dir)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	var cmds []tea.Cmd
	for _, ev := range result.Events {
		if cmd := m.handleEvent(ev); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	if m.gameState.Phase == core.PhaseMenu {
		m.backToMenu = true
		return m, tea.Batch(cmds...)
	}

	cmds = append(cmds, tickCmd(m.config.TickRate))
	return m, tea.Batch(cmds...)
}

// handleEvent turns a game event into audio and bookkeeping.
func (m *GameModel) handleEvent(ev core.Event) tea.Cmd {
	p := m.opts.Player

	switch ev.Kind {
	case core.EventBounce:
		p.PlayEffect(audio.EffectBounce)

	case core.EventPhaseChange:
		switch ev.To {
		case core.PhasePlaying:
			if ev.From == core.PhasePaused {
				m.clock.Reset()
			} else {
				m.startRun()
			}
			p.PlayMusic(audio.TrackGame)
		case core.PhasePaused:
			m.intent.Stop()
			p.PauseMusic()
		case core.PhaseGameOver:
			m.intent.Stop()
			p.StopMusic()
			p.PlayEffect(audio.EffectGameOver)
			return m.saveScore()
		case core.PhaseMenu:
			p.StopMusic()
		}
	}
	return nil
}

// startRun begins bookkeeping for a fresh run.
func (m *GameModel) startRun() {
	if m.scoreSaved {
		m.runID = uuid.New()
	}
	m.scoreSaved = false
	m.prompt = nil
	m.intent.Stop()
	m.opts.Logger.Debug("run started", "game", m.game.ID(), "run", m.runID)
}

// saveScore stores the finished run once and opens the name prompt when the
// run beats the stored best.
func (m *GameModel) saveScore() tea.Cmd {
	if m.scoreSaved {
		return nil
	}
	m.scoreSaved = true

	score := m.gameState.Score
	store := m.opts.Store
	if store == nil || score <= 0 {
		return nil
	}

	best, err := store.IsHighScore(m.game.ID(), score)
	if err != nil {
		m.opts.Logger.Warn("could not read high score", "error", err)
	}
	if _, err := store.SaveScore(m.game.ID(), m.runID, m.opts.PlayerName, score); err != nil {
		m.opts.Logger.Warn("could not save score", "error", err)
		return nil
	}
	m.opts.Logger.Debug("score saved", "game", m.game.ID(), "run", m.runID, "score", score, "best", best)

	if !best {
		return nil
	}
	p, cmd := newNamePrompt(m.opts.PlayerName, score)
	m.prompt = &p
	return cmd
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".carrot", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(screenshotText(m.screen)), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// screenshotText returns the screen as plain text rows without trailing blanks.
func screenshotText(s *core.Screen) string {
	var b strings.Builder
	for y := 0; y < s.Height(); y++ {
		b.WriteString(strings.TrimRight(s.Row(y), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.prompt != nil {
		return placeCenter(m.config.ScreenW, m.config.ScreenH, m.prompt.View())
	}
	if m.help != nil {
		return m.help.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// PlayerName returns the name used for the next saved score.
func (m GameModel) PlayerName() string {
	return m.opts.PlayerName
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
