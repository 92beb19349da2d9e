package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID    string   `yaml:"id"`
	Name  string   `yaml:"name"`
	Moves *int     `yaml:"moves"`
	Rows  []string `yaml:"rows"`
}

// ParseYAML parses a YAML level file. The moves key is required.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.Moves == nil {
		return Level{}, fmt.Errorf("yaml level: missing moves")
	}

	return Level{
		ID:    yl.ID,
		Name:  yl.Name,
		Moves: *yl.Moves,
		Rows:  yl.Rows,
	}, nil
}
