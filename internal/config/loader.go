package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "eggroll.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.eggroll/configs/eggroll.yaml -> ./configs/eggroll.yaml -> embedded default.
// Each file is layered over the hardcoded defaults, so partial files are fine.
func Load(customPath string) (EggRollConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultEggRollConfig(), err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(configFile); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", configFile)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultEggRollConfig()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		return DefaultEggRollConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (EggRollConfig, error) {
	cfg := DefaultEggRollConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string) (EggRollConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EggRollConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return EggRollConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// UserConfigPath returns the path to a user config file, or empty if home is unavailable.
func UserConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// UserDir returns ~/.eggroll, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".eggroll")
}
