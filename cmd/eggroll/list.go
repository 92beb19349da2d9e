package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long: `Shows the built-in levels plus any levels found in --levels.
Files that fail to load are reported with the reason and skipped.`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	cfg := mustGameConfig()
	lvls, skipped, err := openCatalog(cfg).Scan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, bad := range skipped {
		fmt.Fprintf(os.Stderr, "Warning: skipped %v\n", bad)
	}

	if len(lvls) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-*s  %-5s  %-5s  %-5s  %-6s  %s\n", maxIDLen, "ID", "Eggs", "Nests", "Moves", "Size", "Name")
	fmt.Printf("  %-*s  %-5s  %-5s  %-5s  %-6s  %s\n", maxIDLen, "--", "----", "-----", "-----", "----", "----")

	for _, l := range lvls {
		size := fmt.Sprintf("%dx%d", l.Grid.Rows(), l.Grid.Cols())
		name := l.Title()
		if !l.Builtin {
			name += " (custom)"
		}
		fmt.Printf("  %-*s  %-5d  %-5d  %-5d  %-6s  %s\n", maxIDLen, l.ID, l.Eggs(), l.Nests(), l.Moves, size, name)
	}

	fmt.Println()
	fmt.Println("Run 'eggroll play <id>' to play a level.")
}
