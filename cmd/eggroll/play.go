package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggroll/internal/games/eggroll"
	"github.com/vovakirdan/eggroll/internal/platform/tui"
	"github.com/vovakirdan/eggroll/internal/registry"
	"github.com/vovakirdan/eggroll/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <level>",
	Short: "Play a level",
	Long: `Play the given level (an ID from 'eggroll list' or a path to a level file).

Controls:
  Arrows/WASD/hjkl - Tilt the board (presses queue up while eggs roll)
  P/Space          - Pause
  R                - Restart the level
  B/Esc            - Leave (when paused or game over)
  Ctrl+S           - Save a screenshot to ~/.eggroll/screenshots
  Q/Ctrl+C         - Quit

Examples:
  eggroll play 01-first-roll
  eggroll play 03-mind-the-pan --pace slow
  eggroll play ./levels/mine.yaml --glyphs ascii`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := mustGameConfig()
	lvl := mustLevel(openCatalog(cfg), args[0])
	selectLevel(lvl, cfg)

	game, err := registry.Create(eggroll.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database, scores will not be saved", "error", err)
		store = nil
	}

	outcome, runErr := tui.Run(game, store, currentPlayer(), runtimeConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if outcome.SaveErr != nil {
		log.Warn("could not save score", "level", lvl.ID, "error", outcome.SaveErr)
	}
	if outcome.State.GameOver {
		fmt.Printf("Game Over! Score: %d\n", outcome.State.Score)
	}
}
