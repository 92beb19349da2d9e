// Package formats provides pluggable level file format parsers.
// Parsers only split a file into title, move budget and grid rows; tile
// decoding and validation happen in the levels package.
package formats

import (
	"fmt"
	"path"
	"strings"
)

// Level represents a parsed level file before tile decoding.
type Level struct {
	ID    string   // Empty when the file does not name itself
	Name  string   // Display title
	Moves int      // Move budget
	Rows  []string // Grid rows, one glyph per tile
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".in", ".txt", ".yaml", ".yml"}
}

// IsSupported reports whether a file name has a level extension.
func IsSupported(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// Parse routes data to the parser for the file name's extension.
func Parse(name string, data []byte) (Level, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".in", ".txt":
		return ParseText(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Level{}, fmt.Errorf("unsupported extension: %s", path.Ext(name))
	}
}
