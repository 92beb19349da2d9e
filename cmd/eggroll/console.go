package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/eggroll/internal/config"
	"github.com/vovakirdan/eggroll/internal/games/eggroll"
	"github.com/vovakirdan/eggroll/internal/games/eggroll/engine"
)

const clearScreen = "\033[H\033[2J"

var consoleCmd = &cobra.Command{
	Use:   "console <level>",
	Short: "Play a level by typing moves",
	Long: `Line-based play. Type one or more moves and press Enter:
  u = up, d = down, l = left, r = right

Letters are case-insensitive; anything else is ignored. Each move is
applied in order and the board is redrawn after every roll step.

Examples:
  eggroll console 01-first-roll
  echo "dlr" | eggroll console 02-downhill --pace instant`,
	Args: cobra.ExactArgs(1),
	Run:  runConsole,
}

func runConsole(cmd *cobra.Command, args []string) {
	cfg := mustGameConfig()
	lvl := mustLevel(openCatalog(cfg), args[0])

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	c := console{
		driver: eggroll.NewDriver(engine.New(lvl.Initial(), engine.WithRules(rulesFromConfig(cfg)))),
		out:    os.Stdout,
		ascii:  cfg.Display.Glyphs == config.GlyphsASCII,
		clear:  interactive,
	}
	if interactive {
		c.delay = cfg.Pace.RollInterval(flagFPS)
	}

	if _, err := c.play(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// console is the line-mode front end around a Driver.
type console struct {
	driver *eggroll.Driver
	out    io.Writer
	delay  time.Duration // Pause between roll steps
	ascii  bool
	clear  bool // Clear the terminal before each redraw
}

// play reads moves until the game ends or input runs out and returns the
// final score. A driver error stops the game and is returned with the score
// reached so far.
func (c console) play(in io.Reader) (int, error) {
	sim := c.driver.Simulation()
	scanner := bufio.NewScanner(in)

	for !sim.IsOver() {
		c.redraw()
		fmt.Fprint(c.out, "Enter move/s: ")
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			break
		}

		c.driver.Enqueue(engine.ParseMoveLetters(scanner.Text())...)
		_, err := c.driver.RunUntilIdle(func(kind eggroll.StepKind) {
			if kind != eggroll.StepTick {
				return
			}
			c.redraw()
			if c.delay > 0 {
				time.Sleep(c.delay)
			}
		})
		if err != nil {
			return sim.Current().Score(), fmt.Errorf("console: %w", err)
		}
	}

	score := sim.Current().Score()
	c.redraw()
	if sim.IsOver() {
		fmt.Fprintf(c.out, "Game Over! Score: %d\n", score)
	} else {
		fmt.Fprintf(c.out, "Stopped. Score: %d\n", score)
	}
	return score, nil
}

func (c console) redraw() {
	if c.clear {
		fmt.Fprint(c.out, clearScreen)
	}
	fmt.Fprintln(c.out, statusText(c.driver.Simulation().Current(), c.ascii))
}

// statusText renders a snapshot's status, optionally with ASCII glyphs.
func statusText(snap engine.Snapshot, ascii bool) string {
	status := snap.StatusText()
	if !ascii {
		return status
	}
	return strings.Replace(status, snap.GridText(), snap.Grid().ASCII(), 1)
}

func rulesFromConfig(cfg config.EggRollConfig) engine.Rules {
	return engine.Rules{
		NestPoints: cfg.Scoring.NestPoints,
		PanPenalty: cfg.Scoring.PanPenalty,
	}
}
