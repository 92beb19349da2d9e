package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggroll/internal/platform/tui"
	"github.com/vovakirdan/eggroll/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels from an interactive menu",
	Long: `Opens the level picker. Choose a level with Enter, view high scores with
Tab, and come back to the menu with B or Esc after a level ends.`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	cfg := mustGameConfig()
	lvls, skipped, err := openCatalog(cfg).Scan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database, scores will not be saved", "error", err)
		store = nil
	}

	runErr := tui.RunSession(tui.SessionOptions{
		Levels:  lvls,
		Skipped: len(skipped),
		Store:   store,
		Player:  currentPlayer(),
		Game:    cfg,
		Runtime: runtimeConfig(),
		Logger:  sessionLogger(),
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
