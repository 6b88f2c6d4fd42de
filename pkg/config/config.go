// Package config provides configuration loading and management for cube2pano.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"cube2pano/internal/models"
	"cube2pano/pkg/cubemap"
)

// Config represents the application configuration loaded from YAML.
type Config struct {
	// Render parameters
	Render struct {
		// Workers is the number of goroutines the pixel fill is split across.
		Workers int `yaml:"workers"`
	} `yaml:"render"`

	// Loader parameters
	Loader struct {
		// NormalizeSizes resizes mixed-resolution faces down to the smallest
		// common side instead of rejecting them.
		NormalizeSizes bool `yaml:"normalizeSizes"`
	} `yaml:"loader"`

	// Output parameters
	Output struct {
		// JPEGQuality is the JPEG encoder quality (1-100).
		JPEGQuality int `yaml:"jpegQuality"`

		// BlurSigma is the Gaussian smoothing pre-pass; 0 disables it.
		BlurSigma float64 `yaml:"blurSigma"`
	} `yaml:"output"`

	// Layout maps source face names to cube axes in compact notation,
	// e.g. "right: x+". An empty map means the default convention.
	Layout map[string]string `yaml:"layout"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Render.Workers = runtime.NumCPU()
	cfg.Loader.NormalizeSizes = false
	cfg.Output.JPEGQuality = 85
	cfg.Output.BlurSigma = 0.8

	cfg.Layout = make(map[string]string)
	for name, idx := range cubemap.DefaultLayout() {
		cfg.Layout[name] = idx.String()
	}

	return cfg
}

// FaceLayout converts the configured layout table into the form the face
// set builder takes. An empty table yields the default convention.
func (c *Config) FaceLayout() (cubemap.Layout, error) {
	if len(c.Layout) == 0 {
		return cubemap.DefaultLayout(), nil
	}
	layout := make(cubemap.Layout, len(c.Layout))
	for name, axis := range c.Layout {
		idx, err := models.ParseFaceIndex(axis)
		if err != nil {
			return nil, fmt.Errorf("layout entry %q: %w", name, err)
		}
		layout[name] = idx
	}
	return layout, nil
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
	return SaveConfig(DefaultConfig(), configPath)
}
