package wconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the worldcat CLI.
type Config struct {
	// Logging
	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`

	// InfoDB
	InfoDB InfoDBConfig `yaml:"infodb"`

	// Limits
	StatusBufferSize int `yaml:"status_buffer_size"`
}

// InfoDBConfig holds InfoDB settings. cmd/worldcat passes only
// TileTypeCount to infodb.NewStatic; the three path fields are parsed
// but not read by any code in this repository.
type InfoDBConfig struct {
	ItemsPath    string `yaml:"items_path"`
	PrefixesPath string `yaml:"prefixes_path"`
	NpcsPath     string `yaml:"npcs_path"`
	TileTypeCount uint16 `yaml:"tile_type_count"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		LogLevel:         "info",
		LogJSON:          false,
		StatusBufferSize: 16,
		InfoDB: InfoDBConfig{
			TileTypeCount: 625,
		},
	}
}

// Load reads Config from a YAML file. If the file doesn't exist,
// returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
