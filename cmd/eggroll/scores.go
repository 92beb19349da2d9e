package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggroll/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `Without an argument, shows a summary per level. With a level ID, shows the
top runs for that level.

Examples:
  eggroll scores
  eggroll scores 01-first-roll --limit 20
  eggroll scores 01-first-roll --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show (0 for all)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs for the level")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a level ID")
			os.Exit(1)
		}
		printSummary(store)
		return
	}

	if flagClear {
		if err := store.ClearScores(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s\n", args[0])
		return
	}
	if err := writeLevelScores(os.Stdout, store, args[0], flagLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

// printSummary prints one line of stats per played level.
func printSummary(store *storage.Store) {
	stats, err := store.GetAllLevelsStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	cfg := mustGameConfig()
	lvls, _ := openCatalog(cfg).LoadAll()

	fmt.Printf("  %-20s  %-5s  %-5s  %-7s  %-6s  %-5s  %s\n", "Level", "Runs", "Best", "Avg", "Nested", "Fried", "Last played")
	fmt.Printf("  %-20s  %-5s  %-5s  %-7s  %-6s  %-5s  %s\n", "-----", "----", "----", "---", "------", "-----", "-----------")

	printed := make(map[string]bool, len(stats))
	printRow := func(id string) {
		st := stats[id]
		fmt.Printf("  %-20s  %-5d  %-5d  %-7.1f  %-6d  %-5d  %s\n",
			id, st.RunsCount, st.HighScore, st.AvgScore, st.EggsNested, st.EggsFried, humanize.Time(st.LastPlayed))
		printed[id] = true
	}

	// Known levels first, in catalog order
	for _, lvl := range lvls {
		if _, ok := stats[lvl.ID]; ok {
			printRow(lvl.ID)
		}
	}
	for id := range stats {
		if !printed[id] {
			printRow(id)
		}
	}

	recent, err := store.RecentScores(5)
	if err != nil || len(recent) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Recent runs")
	for _, e := range recent {
		fmt.Printf("  %-20s  %-12s  %-6d  %s\n", e.LevelID, e.Player, e.Score, humanize.Time(e.CreatedAt))
	}
}

// writeLevelScores writes the top runs for one level, or every run when limit
// is not positive, followed by the level's totals.
func writeLevelScores(w io.Writer, store *storage.Store, levelID string, limit int) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if limit <= 0 {
		scores, err = store.AllScores(levelID)
	} else {
		scores, err = store.TopScores(levelID, limit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", levelID)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'eggroll play %s' to set the first high score!\n", levelID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-12s  %-6s  %-5s  %-6s  %-5s  %s\n", "Rank", "Player", "Score", "Left", "Nested", "Fried", "When")
	fmt.Fprintf(w, "  %-4s  %-12s  %-6s  %-5s  %-6s  %-5s  %s\n", "----", "------", "-----", "----", "------", "-----", "----")

	for i, e := range scores {
		fmt.Fprintf(w, "  %-4d  %-12s  %-6d  %-5d  %-6d  %-5d  %s\n",
			i+1, e.Player, e.Score, e.MovesLeft, e.Nested, e.Fried, humanize.Time(e.CreatedAt))
	}

	st, err := store.GetLevelStats(levelID)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Runs: %d  Best: %d  Avg: %.1f  Eggs nested: %d  Eggs fried: %d\n",
		st.RunsCount, st.HighScore, st.AvgScore, st.EggsNested, st.EggsFried)
	return nil
}
