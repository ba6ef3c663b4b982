package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the renderer configuration.
type Config struct {
	User     string `json:"user"`      // identity the seed derives from
	Mode     string `json:"mode"`      // rendering mode, part of the seed identity
	Seed     int64  `json:"seed"`      // explicit seed override (0 = derive from user+mode)
	Theme    string `json:"theme"`     // palette name
	Scale    int    `json:"scale"`     // intensity scale: 10 or 100
	DataPath string `json:"data_path"` // activity calendar JSON
	Output   string `json:"output"`    // SVG output path ("-" = stdout)
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Mode:     "year",
		Theme:    "meadow",
		Scale:    10,
		DataPath: "activity.json",
		Output:   "-",
	}
}

// LoadFile reads a JSON config file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["user"] && fromFile.User != "" {
		cfg.User = fromFile.User
	}
	if !explicitFlags["mode"] && fromFile.Mode != "" {
		cfg.Mode = fromFile.Mode
	}
	if !explicitFlags["seed"] && fromFile.Seed != 0 {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["theme"] && fromFile.Theme != "" {
		cfg.Theme = fromFile.Theme
	}
	if !explicitFlags["scale"] && fromFile.Scale != 0 {
		cfg.Scale = fromFile.Scale
	}
	if !explicitFlags["data"] && fromFile.DataPath != "" {
		cfg.DataPath = fromFile.DataPath
	}
	if !explicitFlags["o"] && fromFile.Output != "" {
		cfg.Output = fromFile.Output
	}
}
