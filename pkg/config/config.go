// Package config provides configuration loading and management for the
// Gaussian field demo. It handles loading configuration from YAML files and
// provides default values matching the reference scenario.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the demo configuration loaded from YAML
type Config struct {
	// Grid parameters for both axes
	Grid struct {
		// XStart and XEnd bound the x axis; XIntervals sets the interval
		// count, giving XIntervals+1 samples
		XStart     float64 `yaml:"xStart"`
		XEnd       float64 `yaml:"xEnd"`
		XIntervals int     `yaml:"xIntervals"`

		// YStart, YEnd and YIntervals do the same for the y axis
		YStart     float64 `yaml:"yStart"`
		YEnd       float64 `yaml:"yEnd"`
		YIntervals int     `yaml:"yIntervals"`
	} `yaml:"grid"`

	// Gaussian parameters
	Gaussian struct {
		// Amplitude is the u0 scaling factor
		Amplitude float64 `yaml:"amplitude"`

		// Sigma is the isotropic spread; must be positive
		Sigma float64 `yaml:"sigma"`

		// XCenter and YCenter fix the peak position; when omitted the
		// evaluators default each to the mean of that axis's coordinates
		XCenter *float64 `yaml:"xCenter,omitempty"`
		YCenter *float64 `yaml:"yCenter,omitempty"`
	} `yaml:"gaussian"`

	// Plot parameters
	Plot struct {
		// Levels is the number of filled contour levels
		Levels int `yaml:"levels"`

		// Palette names the color map ("heat" or "rainbow")
		Palette string `yaml:"palette"`

		// Output is the image file to write
		Output string `yaml:"output"`

		// Title is drawn above the plot
		Title string `yaml:"title"`
	} `yaml:"plot"`
}

// DefaultConfig returns a configuration with default values: the grid covers
// x∈[0,0.5] with 50 intervals and y∈[0,1] with 100 intervals, and sigma is
// 0.1 of the unit length scale.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Grid.XStart = 0
	cfg.Grid.XEnd = 0.5
	cfg.Grid.XIntervals = 50
	cfg.Grid.YStart = 0
	cfg.Grid.YEnd = 1.0
	cfg.Grid.YIntervals = 100

	cfg.Gaussian.Amplitude = 0.05
	cfg.Gaussian.Sigma = 0.1

	cfg.Plot.Levels = 20
	cfg.Plot.Palette = "heat"
	cfg.Plot.Output = "gaussian.png"
	cfg.Plot.Title = "2D Gaussian"

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
