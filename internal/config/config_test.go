package config

import (
	"path/filepath"
	"testing"
)

func TestConfig_GetManifestPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "default path",
			config: &Config{
				ManifestPath: DefaultManifestPath,
				Flags:        Flags{},
			},
			expected: DefaultManifestPath,
		},
		{
			name: "with manifest flag",
			config: &Config{
				ManifestPath: DefaultManifestPath,
				Flags: Flags{
					Manifest: "fixtures/classes.yaml",
				},
			},
			expected: "fixtures/classes.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetManifestPath()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_GetOutputPath(t *testing.T) {
	cfg := New()
	cfg.OutputJSONDir = "/reports"
	cfg.OutputJSONFile = "build.json"

	got := cfg.GetOutputPath()
	expected := filepath.Join("/reports", "build.json")
	if got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}

	if !filepath.IsAbs(got) {
		t.Errorf("output path should be absolute, got %s", got)
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ManifestPath != DefaultManifestPath {
		t.Errorf("expected ManifestPath %s, got %s", DefaultManifestPath, cfg.ManifestPath)
	}

	if cfg.Workers != DefaultWorkers {
		t.Errorf("expected Workers %d, got %d", DefaultWorkers, cfg.Workers)
	}

	if cfg.OutputJSONFile != DefaultOutputJSONFile {
		t.Errorf("expected OutputJSONFile %s, got %s", DefaultOutputJSONFile, cfg.OutputJSONFile)
	}
}

func TestLoad(t *testing.T) {
	t.Run("flag workers override default", func(t *testing.T) {
		cfg := Load(Flags{Workers: 12})
		if cfg.Workers != 12 {
			t.Errorf("expected Workers 12, got %d", cfg.Workers)
		}
	})

	t.Run("zero workers keeps default", func(t *testing.T) {
		cfg := Load(Flags{})
		if cfg.Workers != DefaultWorkers {
			t.Errorf("expected Workers %d, got %d", DefaultWorkers, cfg.Workers)
		}
	})
}

func TestWorkersFromEnvironment(t *testing.T) {
	t.Setenv("PHPUNIT_WORKERS", "8")

	cfg := New()
	if cfg.Workers != 8 {
		t.Errorf("expected Workers 8, got %d", cfg.Workers)
	}
}

func TestManifestFromEnvironment(t *testing.T) {
	t.Setenv("PHPUNIT_MANIFEST", "env/classes.yaml")

	cfg := New()
	if cfg.ManifestPath != "env/classes.yaml" {
		t.Errorf("expected ManifestPath env/classes.yaml, got %s", cfg.ManifestPath)
	}
}
