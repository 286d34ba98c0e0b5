// tuisteroids is a terminal rendition of the classic rock-blasting arcade
// game, drawn with braille characters.
//
// Usage:
//
//	tuisteroids play          - Play in the current terminal
//	tuisteroids scores        - Show high scores
//	tuisteroids serve         - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tuisteroids/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tuisteroids",
	Short: "Asteroids in your terminal",
	Long: `tuisteroids is a terminal asteroids game: steer a ship across a wrapping
playfield, blast rocks into smaller rocks, and survive escalating waves.
The menu runs a self-playing demo until you hit enter.

Available commands:
  play     - Play in the current terminal
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  tuisteroids play
  tuisteroids play --seed 42
  tuisteroids scores
  tuisteroids serve --ssh :2222`,
	// Bare invocation starts the game.
	RunE: func(cmd *cobra.Command, args []string) error {
		return playCmd.RunE(cmd, args)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation updates per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tuisteroids/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
