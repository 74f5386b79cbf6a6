package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/carrot-quest/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the main menu",
	Long: `Open the main menu. From there you can start a run, read the
instructions, browse the high scores or change the music and sound
effect volumes. Volume changes are saved in the scores database.

Examples:
  carrot menu
  carrot menu --name alice
  carrot menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		runSession(tui.ScreenMenu)
	},
}
