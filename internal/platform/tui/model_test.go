package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/carrot-quest/internal/audio"
	"github.com/vovakirdan/carrot-quest/internal/core"
	"github.com/vovakirdan/carrot-quest/internal/registry"
	"github.com/vovakirdan/carrot-quest/internal/storage"
)

// scriptedGame replays queued step results and records the inputs it got.
type scriptedGame struct {
	script []core.StepResult
	state  core.GameState
	inputs []core.InputFrame
	resets int
}

func (g *scriptedGame) ID() string              { return "scripted" }
func (g *scriptedGame) Title() string           { return "Scripted" }
func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) State() core.GameState   { return g.state }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Phase: core.PhasePlaying}
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	frame := core.InputFrame{Actions: make(map[core.Action]bool), DT: in.DT}
	for a, on := range in.Actions {
		frame.Actions[a] = on
	}
	g.inputs = append(g.inputs, frame)

	if len(g.script) == 0 {
		return core.StepResult{State: g.state}
	}
	res := g.script[0]
	g.script = g.script[1:]
	g.state = res.State
	return res
}

// recordingPlayer logs every audio call.
type recordingPlayer struct {
	calls []string
}

func (p *recordingPlayer) PlayEffect(e audio.Effect) {
	if e == audio.EffectBounce {
		p.calls = append(p.calls, "effect:bounce")
	} else {
		p.calls = append(p.calls, "effect:gameover")
	}
}
func (p *recordingPlayer) PlayMusic(t audio.Track) {
	if t == audio.TrackMenu {
		p.calls = append(p.calls, "music:menu")
	} else {
		p.calls = append(p.calls, "music:game")
	}
}
func (p *recordingPlayer) PauseMusic()              { p.calls = append(p.calls, "pause") }
func (p *recordingPlayer) StopMusic()               { p.calls = append(p.calls, "stop") }
func (p *recordingPlayer) SetVolumes(audio.Volumes) { p.calls = append(p.calls, "volumes") }

func (p *recordingPlayer) has(call string) bool {
	for _, c := range p.calls {
		if c == call {
			return true
		}
	}
	return false
}

func phaseEvent(from, to core.Phase) core.Event {
	return core.Event{Kind: core.EventPhaseChange, From: from, To: to}
}

func stepped(score int, phase core.Phase, events ...core.Event) core.StepResult {
	return core.StepResult{State: core.GameState{Score: score, Phase: phase}, Events: events}
}

func newTestModel(t *testing.T, g *scriptedGame, opts Options) GameModel {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1}
	m := NewGameModel(g, cfg, opts)
	g.Reset(cfg)
	return m
}

func send(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, expected GameModel", next)
	}
	return gm
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelBounceSound(t *testing.T) {
	g := &scriptedGame{script: []core.StepResult{
		stepped(0, core.PhasePlaying, phaseEvent(core.PhaseMenu, core.PhasePlaying)),
		stepped(10, core.PhasePlaying, core.Event{Kind: core.EventBounce}),
	}}
	p := &recordingPlayer{}
	m := newTestModel(t, g, Options{Player: p})

	now := time.Unix(100, 0)
	m = send(t, m, TickMsg(now))
	m = send(t, m, TickMsg(now.Add(time.Second/60)))

	if !p.has("music:game") {
		t.Error("starting a run should start the game music")
	}
	if !p.has("effect:bounce") {
		t.Error("a bounce event should play the bounce effect")
	}
	if m.State().Score != 10 {
		t.Errorf("State().Score = %d, expected 10", m.State().Score)
	}
}

func TestModelDTAfterResume(t *testing.T) {
	g := &scriptedGame{script: []core.StepResult{
		stepped(0, core.PhasePaused, phaseEvent(core.PhasePlaying, core.PhasePaused)),
		stepped(0, core.PhasePlaying, phaseEvent(core.PhasePaused, core.PhasePlaying)),
	}}
	p := &recordingPlayer{}
	m := newTestModel(t, g, Options{Player: p})

	now := time.Unix(100, 0)
	m = send(t, m, TickMsg(now))
	m = send(t, m, TickMsg(now.Add(2*time.Second)))
	send(t, m, TickMsg(now.Add(3*time.Second)))

	if len(g.inputs) != 3 {
		t.Fatalf("game stepped %d times, expected 3", len(g.inputs))
	}
	if g.inputs[0].DT != 1 {
		t.Errorf("first frame dt = %f, expected 1", g.inputs[0].DT)
	}
	if g.inputs[1].DT < 119 || g.inputs[1].DT > 121 {
		t.Errorf("paused frame dt = %f, expected 120", g.inputs[1].DT)
	}
	if g.inputs[2].DT != 1 {
		t.Errorf("first frame after resume dt = %f, expected 1", g.inputs[2].DT)
	}
	if !p.has("pause") {
		t.Error("pausing should pause the music")
	}
}

func TestModelHeldIntent(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(t, g, Options{})

	m = send(t, m, keyMsg("left"))
	m = send(t, m, TickMsg(time.Now()))
	if !g.inputs[0].Has(core.ActionLeft) {
		t.Error("a left press should be held on the next frame")
	}

	m = send(t, m, keyMsg("down"))
	send(t, m, TickMsg(time.Now()))
	if g.inputs[1].Has(core.ActionLeft) {
		t.Error("down should release the held direction")
	}
}

func TestModelPauseIsEdgeTriggered(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(t, g, Options{})

	m = send(t, m, keyMsg("p"))
	m = send(t, m, TickMsg(time.Now()))
	send(t, m, TickMsg(time.Now()))

	if !g.inputs[0].Has(core.ActionPause) {
		t.Error("pause should reach the frame after the key press")
	}
	if g.inputs[1].Has(core.ActionPause) {
		t.Error("pause should not repeat on later frames")
	}
}

func TestModelSavesScoreAndPromptsName(t *testing.T) {
	store := openTestStore(t)
	g := &scriptedGame{script: []core.StepResult{
		stepped(120, core.PhaseGameOver, phaseEvent(core.PhasePlaying, core.PhaseGameOver)),
	}}
	p := &recordingPlayer{}
	m := newTestModel(t, g, Options{Store: store, Player: p, PlayerName: "ann"})

	m = send(t, m, TickMsg(time.Unix(100, 0)))

	if !p.has("effect:gameover") || !p.has("stop") {
		t.Errorf("game over should stop the music and play the game over effect, calls = %v", p.calls)
	}
	best, err := store.HighScore("scripted")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if best != 120 {
		t.Errorf("HighScore() = %d, expected 120", best)
	}
	if m.prompt == nil {
		t.Fatal("a new high score should open the name prompt")
	}
	if !strings.Contains(m.View(), "NEW HIGH SCORE") {
		t.Error("View() should show the name prompt")
	}

	m = send(t, m, keyMsg("ie"))
	m = send(t, m, keyMsg("enter"))

	if m.prompt != nil {
		t.Error("enter should close the prompt")
	}
	if m.PlayerName() != "annie" {
		t.Errorf("PlayerName() = %q, expected %q", m.PlayerName(), "annie")
	}
	scores, err := store.TopScores("scripted", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].PlayerName != "annie" {
		t.Errorf("TopScores() = %+v, expected one score by annie", scores)
	}
}

func TestModelNoPromptBelowBest(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore("scripted", uuid.New(), "bob", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	g := &scriptedGame{script: []core.StepResult{
		stepped(100, core.PhaseGameOver, phaseEvent(core.PhasePlaying, core.PhaseGameOver)),
	}}
	m := newTestModel(t, g, Options{Store: store})

	m = send(t, m, TickMsg(time.Unix(100, 0)))

	if m.prompt != nil {
		t.Error("a score below the best should not open the prompt")
	}
	stats, err := store.GetGameStats("scripted")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
}

func TestModelSavesOncePerRun(t *testing.T) {
	store := openTestStore(t)
	g := &scriptedGame{script: []core.StepResult{
		stepped(40, core.PhaseGameOver, phaseEvent(core.PhasePlaying, core.PhaseGameOver)),
		stepped(40, core.PhaseGameOver),
		stepped(5, core.PhasePlaying, phaseEvent(core.PhaseGameOver, core.PhasePlaying)),
		stepped(30, core.PhaseGameOver, phaseEvent(core.PhasePlaying, core.PhaseGameOver)),
	}}
	m := newTestModel(t, g, Options{Store: store})

	now := time.Unix(100, 0)
	m = send(t, m, TickMsg(now))
	m = send(t, m, keyMsg("esc")) // dismiss the prompt
	for i := 1; i <= 3; i++ {
		m = send(t, m, TickMsg(now.Add(time.Duration(i)*time.Second/60)))
	}

	stats, err := store.GetGameStats("scripted")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected one score per run (2)", stats.GamesCount)
	}
}

func TestModelBackToMenu(t *testing.T) {
	g := &scriptedGame{script: []core.StepResult{
		stepped(0, core.PhaseMenu, phaseEvent(core.PhasePaused, core.PhaseMenu)),
	}}
	p := &recordingPlayer{}
	m := newTestModel(t, g, Options{Player: p})

	m = send(t, m, TickMsg(time.Unix(100, 0)))
	if !m.BackToMenu() {
		t.Error("reaching the menu phase should leave the game")
	}
	if !p.has("stop") {
		t.Error("leaving to the menu should stop the music")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, &scriptedGame{}, Options{})
	m = send(t, m, keyMsg("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty once quitting")
	}
}

func TestModelInstructionsWhilePaused(t *testing.T) {
	g := &scriptedGame{script: []core.StepResult{
		stepped(0, core.PhasePlaying),
		stepped(0, core.PhasePaused, phaseEvent(core.PhasePlaying, core.PhasePaused)),
	}}
	m := newTestModel(t, g, Options{})

	m = send(t, m, TickMsg(time.Unix(100, 0)))
	m = send(t, m, keyMsg("i"))
	if strings.Contains(m.View(), "HOW TO PLAY") {
		t.Fatal("instructions should only open while paused")
	}

	m = send(t, m, TickMsg(time.Unix(101, 0)))
	m = send(t, m, keyMsg("i"))
	if !strings.Contains(m.View(), "HOW TO PLAY") {
		t.Fatal("i should open the instructions while paused")
	}

	m = send(t, m, TickMsg(time.Unix(102, 0)))
	m = send(t, m, keyMsg("esc"))
	if strings.Contains(m.View(), "HOW TO PLAY") {
		t.Error("esc should close the instructions")
	}
	if m.State().Phase != core.PhasePaused {
		t.Errorf("phase = %s, expected the run to stay paused", m.State().Phase)
	}
	if m.IsQuitting() || m.BackToMenu() {
		t.Error("closing the instructions should return to the paused run")
	}
	for _, in := range g.inputs {
		if in.Has(core.ActionPause) {
			t.Error("keys for the instructions should not reach the game")
		}
	}
}

func TestScreenshotText(t *testing.T) {
	scr := core.NewScreen(10, 3)
	scr.DrawText(1, 0, "hi")
	scr.DrawText(0, 2, "carrot")

	if got, want := screenshotText(scr), " hi\n\ncarrot\n"; got != want {
		t.Errorf("screenshotText() = %q, expected %q", got, want)
	}
}

func TestSessionMenuNavigation(t *testing.T) {
	newGame := func() registry.Game { return &scriptedGame{} }
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 1}
	p := &recordingPlayer{}
	s := NewSessionModel(newGame, cfg, Options{Player: p}, ScreenMenu)

	if !p.has("music:menu") {
		t.Error("the menu should start the menu music")
	}

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T, expected SessionModel", next)
		}
		s = sm
	}

	step(keyMsg("down"))
	step(keyMsg("enter"))
	if s.Screen() != ScreenInstructions {
		t.Fatalf("Screen() = %v, expected instructions", s.Screen())
	}
	if !strings.Contains(s.View(), "HOW TO PLAY") {
		t.Error("instructions view should show its title")
	}

	step(keyMsg("esc"))
	if s.Screen() != ScreenMenu {
		t.Fatalf("Screen() = %v, expected menu", s.Screen())
	}

	step(keyMsg("enter"))
	if s.Screen() != ScreenGame {
		t.Fatalf("Screen() = %v, expected game", s.Screen())
	}
}

func TestSessionSettingsPersistVolumes(t *testing.T) {
	store := openTestStore(t)
	newGame := func() registry.Game { return &scriptedGame{} }
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60}
	s := NewSessionModel(newGame, cfg, Options{Store: store, Settings: store}, ScreenSettings)

	next, _ := s.Update(keyMsg("right"))
	s = next.(SessionModel)

	v, err := audio.LoadVolumes(store)
	if err != nil {
		t.Fatalf("LoadVolumes() failed: %v", err)
	}
	want := audio.DefaultVolumes().Music + volumeStep
	if diff := v.Music - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("saved music volume = %f, expected %f", v.Music, want)
	}
	if s.Screen() != ScreenSettings {
		t.Error("adjusting a volume should stay on the settings screen")
	}
}

func TestSessionScoresExitOnBack(t *testing.T) {
	newGame := func() registry.Game { return &scriptedGame{} }
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60}
	s := NewSessionModel(newGame, cfg, Options{}, ScreenScores)

	if !strings.Contains(s.View(), "HIGH SCORES") {
		t.Error("scoreboard view should show its title")
	}

	_, cmd := s.Update(keyMsg("esc"))
	if cmd == nil {
		t.Fatal("leaving a standalone scoreboard should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("leaving a standalone scoreboard should return tea.Quit")
	}
}
