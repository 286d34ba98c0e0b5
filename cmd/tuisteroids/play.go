package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tuisteroids/tuisteroids/internal/audio"
	"github.com/tuisteroids/tuisteroids/internal/config"
	"github.com/tuisteroids/tuisteroids/internal/core"
	"github.com/tuisteroids/tuisteroids/internal/platform/tui"
	"github.com/tuisteroids/tuisteroids/internal/storage"
)

var (
	flagConfig  string
	flagNoSound bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  Left/Right, A/D  - Rotate
  Up, W            - Thrust
  Space            - Fire
  Q/Esc            - Back to menu / quit
  Ctrl+C           - Quit

Examples:
  tuisteroids play
  tuisteroids play --seed 42
  tuisteroids play --config ./my-rules.yaml
  tuisteroids play --no-sound`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "tuisteroids"})

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading game config: %w", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, running without persistence", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	var engine *audio.Engine
	if !flagNoSound {
		engine = audio.NewEngine()
		if audioErr := engine.Start(); audioErr != nil {
			logger.Warn("audio unavailable, running silent", "error", audioErr)
			engine = nil
		}
	}

	if err := tui.Run(gameCfg, runtime, store, engine); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
