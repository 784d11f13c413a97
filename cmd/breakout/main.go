// breakout is a terminal Breakout game with power-ups, saved sessions and
// an SSH server for remote play.
//
// Usage:
//
//	breakout play            - Play in this terminal
//	breakout serve           - Start SSH server for remote play
//	breakout scores          - Show high scores
//	breakout saves           - List or delete saved sessions
//	breakout levels          - List the playable levels
//	breakout config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.breakout/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Registers the game with the registry
	_ "github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

const gameID = "breakout"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout in your terminal",
	Long: `Breakout is a brick breaking game for the terminal. Clear every
destructible brick with the ball, catch falling power-ups and keep the
ball above the bottom edge.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  saves    - List or delete saved sessions
  levels   - List the playable levels
  config   - Print the default configuration

Examples:
  breakout play
  breakout play --difficulty hard --level 3
  breakout play --resume
  breakout serve --ssh :2222
  breakout scores --tui`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakout/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}
