package config

import (
	"os"
	"path/filepath"
	"testing"

	"cube2pano/internal/models"
)

// TestDefaultConfig verifies the default values.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Render.Workers < 1 {
		t.Errorf("Expected at least 1 default worker, got %d", cfg.Render.Workers)
	}
	if cfg.Output.JPEGQuality != 85 {
		t.Errorf("Expected default JPEG quality 85, got %d", cfg.Output.JPEGQuality)
	}
	if cfg.Loader.NormalizeSizes {
		t.Error("Expected size normalization off by default")
	}
	if len(cfg.Layout) != models.NumFaces {
		t.Errorf("Expected %d layout entries, got %d", models.NumFaces, len(cfg.Layout))
	}
}

// TestFaceLayout verifies conversion of the configured table, including the
// default convention and an override.
func TestFaceLayout(t *testing.T) {
	cfg := DefaultConfig()
	layout, err := cfg.FaceLayout()
	if err != nil {
		t.Fatalf("Failed to convert default layout: %v", err)
	}
	if layout["right"] != models.XPos {
		t.Errorf("Expected right -> x+, got %s", layout["right"])
	}
	if layout["back"] != models.YPos {
		t.Errorf("Expected back -> y+, got %s", layout["back"])
	}

	cfg.Layout["right"] = "z-"
	cfg.Layout["bottom"] = "x+"
	layout, err = cfg.FaceLayout()
	if err != nil {
		t.Fatalf("Failed to convert overridden layout: %v", err)
	}
	if layout["right"] != models.ZNeg || layout["bottom"] != models.XPos {
		t.Errorf("Layout override not applied: right=%s bottom=%s", layout["right"], layout["bottom"])
	}

	cfg.Layout["right"] = "diagonal"
	if _, err := cfg.FaceLayout(); err == nil {
		t.Error("Expected error for unparseable axis name, got nil")
	}
}

// TestLoadConfigMissingFile verifies defaults are returned when the file
// doesn't exist.
func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("Expected defaults for missing file, got error: %v", err)
	}
	if cfg.Output.JPEGQuality != 85 {
		t.Errorf("Expected default config, got quality %d", cfg.Output.JPEGQuality)
	}
}

// TestConfigRoundTrip verifies save and reload preserve the values.
func TestConfigRoundTrip(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	cfg := DefaultConfig()
	cfg.Render.Workers = 3
	cfg.Output.BlurSigma = 1.5
	cfg.Layout["top"] = "z-"
	cfg.Layout["bottom"] = "z+"

	path := filepath.Join(tempDir, "config.yaml")
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.Render.Workers != 3 {
		t.Errorf("Expected 3 workers after round trip, got %d", loaded.Render.Workers)
	}
	if loaded.Output.BlurSigma != 1.5 {
		t.Errorf("Expected blur sigma 1.5 after round trip, got %f", loaded.Output.BlurSigma)
	}
	if loaded.Layout["top"] != "z-" || loaded.Layout["bottom"] != "z+" {
		t.Errorf("Layout not preserved: top=%q bottom=%q", loaded.Layout["top"], loaded.Layout["bottom"])
	}
}

// TestCreateDefaultConfigFile verifies the convenience writer.
func TestCreateDefaultConfigFile(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config-default-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "nested", "config.yaml")
	if err := CreateDefaultConfigFile(path); err != nil {
		t.Fatalf("Failed to create default config file: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Config file not written: %v", err)
	}
}
