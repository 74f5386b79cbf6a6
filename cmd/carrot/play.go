package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/carrot-quest/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run right away",
	Long: `Start playing immediately, skipping the main menu.

Controls:
  Left/A/H   - Steer left
  Right/D/L  - Steer right
  Down/S     - Stop steering
  P/Esc      - Pause (P resumes)
  I          - How to play (while paused)
  R          - Restart (after game over)
  B          - Main menu (while paused or after game over)
  Ctrl+S     - Save a screenshot to ~/.carrot/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Without --difficulty the shipped config plays with a fixed layout rhythm.

Examples:
  carrot play
  carrot play --difficulty normal
  carrot play --seed 42 --mute
  carrot play --config ./my-carrot.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		runSession(tui.ScreenGame)
	},
}

// runSession runs a local full-screen session opening on start.
func runSession(start tui.Screen) {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameCfg, err := loadGameConfig(logger)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	newGame, err := gameFactory(gameCfg)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	player, closeAudio := newAudio(logger)

	opts := tui.Options{
		Player:     player,
		Logger:     logger,
		PlayerName: flagName,
		FrameRate:  gameCfg.Physics.FrameRate,
	}
	if store != nil {
		opts.Store = store
		opts.Settings = store
	}

	logger.Debug("session starting", "screen", start, "seed", flagSeed, "fps", flagFPS)
	runErr := tui.Run(newGame, runtimeConfig(), opts, start)

	closeAudio()
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
