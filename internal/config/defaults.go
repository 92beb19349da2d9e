package config

import (
	_ "embed"
)

//go:embed defaults/eggroll.yaml
var defaultEggRollYAML []byte

// DefaultEggRollConfig returns the hardcoded configuration used when no YAML
// source can be read.
func DefaultEggRollConfig() EggRollConfig {
	return EggRollConfig{
		Pace: PaceConfig{
			RollEvery: 6,
		},
		Scoring: ScoringConfig{
			NestPoints: 10,
			PanPenalty: 5,
		},
		Display: DisplayConfig{
			Glyphs:      GlyphsEmoji,
			ShowHistory: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultEggRollYAML
}
