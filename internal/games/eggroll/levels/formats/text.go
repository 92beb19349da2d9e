package formats

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseText parses the plain level layout:
//
//	line 1: title
//	line 2: move budget
//	rest:   grid rows
//
// Blank grid lines are ignored.
func ParseText(data []byte) (Level, error) {
	text := strings.TrimPrefix(string(data), "\uFEFF")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	if len(lines) < 2 {
		return Level{}, fmt.Errorf("text level: expected title and move budget lines, got %d lines", len(lines))
	}

	budget := strings.TrimSpace(lines[1])
	moves, err := strconv.Atoi(budget)
	if err != nil {
		return Level{}, fmt.Errorf("text level: line 2: invalid move budget %q", budget)
	}

	var rows []string
	for _, line := range lines[2:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}

	return Level{
		Name:  strings.TrimSpace(lines[0]),
		Moves: moves,
		Rows:  rows,
	}, nil
}
