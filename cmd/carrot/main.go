// carrot is a vertical platformer for the terminal: bounce a rabbit from
// platform to platform, climb as high as you can and stay clear of the bombs.
//
// Usage:
//
//	carrot play              - Start a run right away
//	carrot menu              - Open the main menu
//	carrot serve             - Start SSH server for remote play
//	carrot scores            - Show high scores
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible layouts
//	--db <path>            - Set database path (default: ~/.carrot/scores.db)
//	--config <path>        - Use a custom game config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--mute                 - Disable sound
//	--name <player>        - Name stored with your scores
//	--log-level <level>    - debug, info, warn or error (default: warn)
//	--log-file <path>      - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagName       string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "carrot",
	Short: "Carrot Quest - a bouncing platformer for your terminal",
	Long: `Carrot Quest is a vertical platformer played in the terminal.
The rabbit bounces on every platform it lands on; steer it upward,
wrap around the screen edges and avoid the falling bombs.

Available commands:
  play     - Start a run right away
  menu     - Main menu with instructions, scores and settings
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  carrot play
  carrot play --difficulty hard
  carrot menu --name alice
  carrot serve --ssh :2222
  carrot scores`,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.carrot/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVar(&flagMute, "mute", false, "Disable music and sound effects")
	pf.StringVar(&flagName, "name", "", "Player name stored with scores")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
