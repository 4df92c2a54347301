// ABOUTME: Application configuration loaded from a YAML file.
// ABOUTME: Exposes database path, similarity tuning, and export options.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/harper/machinelog/internal/db"
	"github.com/harper/machinelog/internal/similarity"
)

// SimilarityConfig tunes the "find similar" feature. Both values can
// also be overridden per invocation with flags.
type SimilarityConfig struct {
	Threshold float64 `yaml:"threshold"`
	TopK      int     `yaml:"top_k"`
}

type ExportConfig struct {
	TopMachines int `yaml:"top_machines"`
}

type Config struct {
	DatabasePath string           `yaml:"database_path"`
	Similarity   SimilarityConfig `yaml:"similarity"`
	Export       ExportConfig     `yaml:"export"`
}

func Default() *Config {
	return &Config{
		DatabasePath: db.DefaultPath(),
		Similarity: SimilarityConfig{
			Threshold: similarity.DefaultThreshold,
			TopK:      similarity.DefaultTopK,
		},
		Export: ExportConfig{
			TopMachines: 10,
		},
	}
}

// Load reads the config file at path, overlaying it on the defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Similarity.Threshold < 0 || c.Similarity.Threshold >= 1 {
		return fmt.Errorf("similarity threshold %v outside [0, 1)", c.Similarity.Threshold)
	}
	if c.Similarity.TopK < 1 {
		return fmt.Errorf("similarity top_k must be at least 1, got %d", c.Similarity.TopK)
	}
	if c.Export.TopMachines < 1 {
		return fmt.Errorf("export top_machines must be at least 1, got %d", c.Export.TopMachines)
	}
	return nil
}

func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "machinelog", "config.yaml")
}
