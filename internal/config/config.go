package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the tool
type Config struct {
	// ManifestPath points at the YAML class manifest
	ManifestPath string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Build settings
	Workers int

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Manifest string
	Workers  int
	Filter   string
	Group    string
	Save     bool
}

// New creates a new Config with defaults, overridden by PHPUNIT_*
// environment variables (a .env file in the working directory is honored)
func New() *Config {
	// .env might not exist, that's okay - use environment variables
	_ = godotenv.Load(".env")

	cfg := &Config{
		ManifestPath:   DefaultManifestPath,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Workers:        DefaultWorkers,
		Flags:          Flags{Workers: DefaultWorkers},
	}

	if v := os.Getenv("PHPUNIT_MANIFEST"); v != "" {
		cfg.ManifestPath = v
	}
	if v := os.Getenv("PHPUNIT_OUTPUT_DIR"); v != "" {
		cfg.OutputJSONDir = v
	}
	if v := os.Getenv("PHPUNIT_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		}
	}

	return cfg
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags

	if flags.Workers > 0 {
		cfg.Workers = flags.Workers
	}

	return cfg
}

// GetManifestPath returns the manifest path, using the flag if provided
func (c *Config) GetManifestPath() string {
	if c.Flags.Manifest != "" {
		return c.Flags.Manifest
	}
	return c.ManifestPath
}

// GetOutputPath returns the full path to the build report file.
// Resolves to an absolute path so build and inspect always read/write the
// same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
