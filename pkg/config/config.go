// Package config provides configuration loading and management for morphkit.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML.
type Config struct {
	// Processing parameters
	Processing struct {
		// Parallelism is the worker count morph.Erode/Dilate split the
		// output into. 0 or 1 runs the single-threaded path.
		Parallelism int `yaml:"parallelism"`

		// DefaultConnectivity selects the structuring element shape used
		// when a caller doesn't supply its own: "cross" (face-connectivity)
		// or "box" (full Chebyshev neighborhood).
		DefaultConnectivity string `yaml:"defaultConnectivity"`
	} `yaml:"processing"`

	// Watershed parameters
	Watershed struct {
		// ReturnLines is the stored default for watershed-line output.
		// cmd/morphdemo does not run the watershed and does not read it.
		ReturnLines bool `yaml:"returnLines"`
	} `yaml:"watershed"`

	// MajorityFilter parameters
	MajorityFilter struct {
		// WindowSize is the default N×N window; must be odd.
		WindowSize int `yaml:"windowSize"`
	} `yaml:"majorityFilter"`

	// Output parameters
	Output struct {
		// ComputeReport is the stored switch for computing and printing a
		// pkg/metrics.Report after a pipeline stage. cmd/morphdemo does not
		// read it: it always computes and prints the report.
		ComputeReport bool `yaml:"computeReport"`

		// Verbose is the stored logging-verbosity switch. cmd/morphdemo
		// does not read it.
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Processing.Parallelism = runtime.NumCPU()
	cfg.Processing.DefaultConnectivity = "cross"

	cfg.Watershed.ReturnLines = false

	cfg.MajorityFilter.WindowSize = 3

	cfg.Output.ComputeReport = true
	cfg.Output.Verbose = true

	return cfg
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, it returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file.
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path.
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
