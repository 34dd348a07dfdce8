package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsPopulated(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Processing.Parallelism <= 0 {
		t.Errorf("Parallelism = %d, want a positive default", cfg.Processing.Parallelism)
	}
	if cfg.Processing.DefaultConnectivity != "cross" {
		t.Errorf("DefaultConnectivity = %q, want \"cross\"", cfg.Processing.DefaultConnectivity)
	}
	if cfg.MajorityFilter.WindowSize%2 == 0 {
		t.Errorf("MajorityFilter.WindowSize = %d, want an odd default", cfg.MajorityFilter.WindowSize)
	}
}

func TestLoadConfigFallsBackToDefaultWhenFileMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	want := DefaultConfig()
	if cfg.Processing.Parallelism != want.Processing.Parallelism {
		t.Errorf("Parallelism = %d, want %d", cfg.Processing.Parallelism, want.Processing.Parallelism)
	}
}

func TestSaveThenLoadConfigRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "morphkit.yaml")
	cfg := DefaultConfig()
	cfg.MajorityFilter.WindowSize = 5
	cfg.Watershed.ReturnLines = true

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file to exist: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if loaded.MajorityFilter.WindowSize != 5 {
		t.Errorf("MajorityFilter.WindowSize = %d, want 5", loaded.MajorityFilter.WindowSize)
	}
	if !loaded.Watershed.ReturnLines {
		t.Error("Watershed.ReturnLines = false, want true")
	}
}

func TestCreateDefaultConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "morphkit.yaml")
	if err := CreateDefaultConfigFile(path); err != nil {
		t.Fatalf("CreateDefaultConfigFile returned error: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Output.Verbose != DefaultConfig().Output.Verbose {
		t.Errorf("Output.Verbose = %v, want %v", cfg.Output.Verbose, DefaultConfig().Output.Verbose)
	}
}
