// eggroll is a terminal puzzle game: tilt the board and roll every egg into a nest.
//
// Usage:
//
//	eggroll list                      - List available levels
//	eggroll play <level>              - Play a level in the full-screen TUI
//	eggroll menu                      - Pick levels interactively
//	eggroll console <level>           - Play with typed moves (u/d/l/r)
//	eggroll run <level> --moves udlr  - Replay moves headlessly and print the result
//	eggroll scores [level]            - Show high scores
//	eggroll serve                     - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set frame rate (default: 60)
//	--db <path>       - Set database path (default: ~/.eggroll/scores.db)
//	--levels <dir>    - Extra level directory, loaded on top of the built-in pack
//	--config <path>   - Custom config YAML
//	--pace <preset>   - Roll animation pace: slow, normal, fast, instant
package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/eggroll/internal/config"
	"github.com/vovakirdan/eggroll/internal/core"
	"github.com/vovakirdan/eggroll/internal/games/eggroll"
	"github.com/vovakirdan/eggroll/internal/games/eggroll/levels"
	"github.com/vovakirdan/eggroll/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagLevelsDir  string
	flagConfigPath string
	flagPace       string
	flagGlyphs     string
	flagTheme      string
)

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eggroll",
	Short: "Egg Roll - tilt the board, nest the eggs",
	Long: `Egg Roll is a terminal puzzle game. Every move tilts the board and all
eggs roll until something stops them. Land eggs in nests for points plus your
remaining moves; frying pans cost points.

Available commands:
  list     - Show all available levels
  play     - Play a level directly
  menu     - Interactive level picker
  console  - Line-based play with typed moves
  run      - Replay a move string headlessly
  scores   - View high scores
  serve    - Start SSH server for remote play

Environment (also read from .env):
  EGGROLL_DB      - default for --db
  EGGROLL_LEVELS  - default for --levels
  EGGROLL_CONFIG  - default for --config

Examples:
  eggroll list
  eggroll play 01-first-roll
  eggroll console ./levels/mine.in
  eggroll run 02-downhill --moves dl
  eggroll serve --ssh :2222`,
	PersistentPreRun: applyEnvDefaults,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.eggroll/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Extra level directory (overrides built-ins by ID)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPace, "pace", "", "Roll pace preset: slow, normal, fast, instant")
	rootCmd.PersistentFlags().StringVar(&flagGlyphs, "glyphs", "", "Board glyphs: emoji or ascii (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Menu theme: default or mono")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// applyEnvDefaults fills flags the user did not set from the environment.
func applyEnvDefaults(cmd *cobra.Command, _ []string) {
	envFlags := map[string]*string{
		"db":     &flagDBPath,
		"levels": &flagLevelsDir,
		"config": &flagConfigPath,
	}
	envNames := map[string]string{
		"db":     "EGGROLL_DB",
		"levels": "EGGROLL_LEVELS",
		"config": "EGGROLL_CONFIG",
	}

	for name, target := range envFlags {
		if cmd.Flags().Changed(name) {
			continue
		}
		if v := os.Getenv(envNames[name]); v != "" {
			*target = v
		}
	}

	if flagTheme != "" {
		tui.SetTheme(tui.ThemeByName(flagTheme))
	}
}

// loadGameConfig loads the YAML config and applies flag overrides.
func loadGameConfig() (config.EggRollConfig, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyPacePreset(&cfg, config.PacePreset(flagPace)); err != nil {
		return cfg, err
	}
	if flagGlyphs != "" {
		cfg.Display.Glyphs = flagGlyphs
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// mustGameConfig loads the config or exits.
func mustGameConfig() config.EggRollConfig {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openCatalog opens the built-in pack plus the user level directory. The
// --levels flag wins over levels.dir from the config.
func openCatalog(cfg config.EggRollConfig) *levels.Catalog {
	dir := flagLevelsDir
	if dir == "" {
		dir = cfg.Levels.Dir
	}

	catalog, err := levels.NewCatalog(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return catalog
}

// mustLevel resolves a level ID or file path or exits.
func mustLevel(catalog *levels.Catalog, ref string) levels.Level {
	lvl, err := catalog.Lookup(ref)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'eggroll list' to see available levels.")
		os.Exit(1)
	}
	return lvl
}

// runtimeConfig builds the platform config from the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// currentPlayer names the local player for the score table.
func currentPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}

// selectLevel hands level and config to the registered game factory.
func selectLevel(lvl levels.Level, cfg config.EggRollConfig) {
	eggroll.SetConfig(cfg)
	eggroll.SetLevel(lvl)
}

// sessionLogger writes to ~/.eggroll/eggroll.log; stderr belongs to the TUI
// while a session runs. Returns nil when the file cannot be opened.
func sessionLogger() *log.Logger {
	base := config.UserDir()
	if base == "" {
		return nil
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil
	}
	f, err := os.OpenFile(filepath.Join(base, "eggroll.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil
	}
	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "eggroll",
	})
}
