package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults applied when no config file overrides them. The size ceiling is
// deliberately tiny: it forces input repos to stay narrow in scope.
const (
	DefaultMaxGigabytes     = 0.001
	DefaultRequirementsFile = "requirements.txt"
	DefaultOverwritePolicy  = "merge"
)

// Config is the top-level configuration for srcsync.
type Config struct {
	MaxGigabytes        float64  `yaml:"max_gigabytes"`        // Size ceiling for the shared directory
	ReservedDirectories []string `yaml:"reserved_directories"` // Child names never eligible for sharing
	RequirementsFile    string   `yaml:"requirements_file"`    // Manifest name in both repos
	OverwritePolicy     string   `yaml:"overwrite_policy"`     // "merge", "fail", or "replace"
	Commit              bool     `yaml:"commit"`               // Record a sync commit in the output repo
	CommitMessage       string   `yaml:"commit_message"`       // Override for the sync commit message
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		MaxGigabytes:        DefaultMaxGigabytes,
		ReservedDirectories: []string{"tests"},
		RequirementsFile:    DefaultRequirementsFile,
		OverwritePolicy:     DefaultOverwritePolicy,
	}
}

// Load reads and parses a configuration file. Values not set in the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	cfg := Default()
	if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if validateErr := validate(cfg); validateErr != nil {
		return nil, validateErr
	}
	return cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".srcsync.yaml",
		".srcsync.yml",
		"srcsync.yaml",
		"srcsync.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// validate checks for values that would make a run misbehave silently.
func validate(cfg *Config) error {
	if cfg.MaxGigabytes <= 0 {
		return fmt.Errorf("max_gigabytes must be positive, got %v", cfg.MaxGigabytes)
	}
	switch cfg.OverwritePolicy {
	case "merge", "fail", "replace":
	default:
		return fmt.Errorf(
			"overwrite_policy must be merge, fail, or replace, got %q",
			cfg.OverwritePolicy,
		)
	}
	if cfg.RequirementsFile == "" {
		return errors.New("requirements_file must not be empty")
	}
	if filepath.Base(cfg.RequirementsFile) != cfg.RequirementsFile {
		return fmt.Errorf(
			"requirements_file must be a bare file name, got %q",
			cfg.RequirementsFile,
		)
	}
	return nil
}
