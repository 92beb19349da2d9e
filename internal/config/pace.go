package config

import (
	"fmt"
	"time"
)

// PacePreset is a named roll-animation speed.
type PacePreset string

const (
	PaceSlow    PacePreset = "slow"
	PaceNormal  PacePreset = "normal"
	PaceFast    PacePreset = "fast"
	PaceInstant PacePreset = "instant"
)

// PacePresets lists the presets in order from slowest to fastest.
func PacePresets() []PacePreset {
	return []PacePreset{PaceSlow, PaceNormal, PaceFast, PaceInstant}
}

// RollEveryForPreset returns the frames-per-tick value of a preset.
func RollEveryForPreset(preset PacePreset) (int, error) {
	switch preset {
	case PaceSlow:
		return 12, nil
	case PaceNormal:
		return 6, nil
	case PaceFast:
		return 2, nil
	case PaceInstant:
		return 0, nil
	default:
		return 0, fmt.Errorf("config: unknown pace %q (want one of %v)", preset, PacePresets())
	}
}

// ApplyPacePreset overrides the config's roll pace with a preset.
// An empty preset leaves the config untouched.
func ApplyPacePreset(cfg *EggRollConfig, preset PacePreset) error {
	if preset == "" {
		return nil
	}
	every, err := RollEveryForPreset(preset)
	if err != nil {
		return err
	}
	cfg.Pace.RollEvery = every
	return nil
}

// RollInterval converts roll_every to wall-clock time at the given frame rate.
func (p PaceConfig) RollInterval(fps int) time.Duration {
	if fps <= 0 || p.RollEvery <= 0 {
		return 0
	}
	return time.Duration(p.RollEvery) * time.Second / time.Duration(fps)
}
