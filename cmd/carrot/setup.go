package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/carrot-quest/internal/audio"
	"github.com/vovakirdan/carrot-quest/internal/config"
	"github.com/vovakirdan/carrot-quest/internal/core"
	"github.com/vovakirdan/carrot-quest/internal/games/carrot"
	"github.com/vovakirdan/carrot-quest/internal/registry"
	"github.com/vovakirdan/carrot-quest/internal/storage"
)

// newLogger builds the process logger. fallback receives output when no
// log file is set; full-screen commands pass io.Discard.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		path := expandHome(flagLogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "carrot",
	})
	return logger, closeFn, nil
}

// loadGameConfig reads the game config and applies the difficulty preset.
func loadGameConfig(logger *log.Logger) (config.CarrotConfig, error) {
	cfg, err := config.LoadCarrot(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		logger.Warn("unknown difficulty preset, keeping config", "difficulty", flagDifficulty)
	}
	config.ApplyCarrotPreset(&cfg, preset)
	return cfg, nil
}

// gameFactory configures the registered game with cfg and returns a
// constructor that creates it through the registry.
func gameFactory(cfg config.CarrotConfig) (func() registry.Game, error) {
	carrot.Configure(cfg)
	if _, ok := registry.Lookup(carrot.GameID); !ok {
		return nil, fmt.Errorf("game %q is not registered", carrot.GameID)
	}
	return func() registry.Game {
		// Registered games are never removed.
		g, _ := registry.Create(carrot.GameID)
		return g
	}, nil
}

// gameTitle returns the display name of the registered game.
func gameTitle() string {
	if info, ok := registry.Lookup(carrot.GameID); ok {
		return info.Title
	}
	return carrot.GameID
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database, returning nil when it is unavailable.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		return nil
	}
	return store
}

// newAudio starts the sound system, or returns a silent player when muted or
// when no audio device is available. The returned func releases it.
func newAudio(logger *log.Logger) (audio.Player, func()) {
	if flagMute {
		return audio.Nop{}, func() {}
	}

	sm := audio.NewSoundManager(audio.DefaultVolumes())
	if err := sm.Initialize(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return audio.Nop{}, func() {}
	}

	d := audio.NewDispatcher(sm, 0)
	return d, func() {
		d.Close()
		if n := d.Dropped(); n > 0 {
			logger.Debug("audio requests dropped", "count", n)
		}
		sm.Close()
	}
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
