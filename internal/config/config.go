// Package config provides YAML-based game configuration loading and
// pace presets for Egg Roll.
package config

import "fmt"

// EggRollConfig contains all tunable settings for the game.
type EggRollConfig struct {
	Pace    PaceConfig    `yaml:"pace"`
	Scoring ScoringConfig `yaml:"scoring"`
	Display DisplayConfig `yaml:"display"`
	Levels  LevelsConfig  `yaml:"levels"`
}

// PaceConfig controls how fast rolling eggs are animated.
type PaceConfig struct {
	RollEvery int `yaml:"roll_every"` // Frames between physics ticks; 0 settles within one frame
}

// ScoringConfig defines points awarded per egg outcome.
type ScoringConfig struct {
	NestPoints int `yaml:"nest_points"` // Base points for a nested egg, plus remaining moves
	PanPenalty int `yaml:"pan_penalty"` // Points lost per fried egg
}

// DisplayConfig selects how the board is drawn.
type DisplayConfig struct {
	Glyphs      string `yaml:"glyphs"`       // "emoji" or "ascii"
	ShowHistory bool   `yaml:"show_history"` // Show the previous-moves line in the HUD
}

// LevelsConfig points at an optional directory of user levels.
type LevelsConfig struct {
	Dir string `yaml:"dir"` // Loaded in addition to the built-in pack
}

// Glyph modes.
const (
	GlyphsEmoji = "emoji"
	GlyphsASCII = "ascii"
)

// Validate checks that the config values are usable.
func (c EggRollConfig) Validate() error {
	if c.Pace.RollEvery < 0 {
		return fmt.Errorf("config: pace.roll_every must be >= 0, got %d", c.Pace.RollEvery)
	}
	if c.Scoring.NestPoints < 0 {
		return fmt.Errorf("config: scoring.nest_points must be >= 0, got %d", c.Scoring.NestPoints)
	}
	if c.Scoring.PanPenalty < 0 {
		return fmt.Errorf("config: scoring.pan_penalty must be >= 0, got %d", c.Scoring.PanPenalty)
	}
	switch c.Display.Glyphs {
	case GlyphsEmoji, GlyphsASCII:
	default:
		return fmt.Errorf("config: display.glyphs must be %q or %q, got %q", GlyphsEmoji, GlyphsASCII, c.Display.Glyphs)
	}
	return nil
}
