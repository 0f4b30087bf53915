// Package config loads the engine's optional environment overrides.
// Per spec.md §6, no environment variable is load-bearing on the
// core: the embedded model and bundled taxonomy are always valid
// defaults, and this package only surfaces filesystem overrides for
// the CLI to prefer when present.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EngineConfig holds the CLI-facing overrides for the classifier
// artifact directory and the taxonomy document directory.
type EngineConfig struct {
	ModelPath    string
	TaxonomyPath string
}

var (
	engineConfig *EngineConfig
	configLoaded bool
)

// LoadEngineConfig reads overrides from a .env file in the project
// root (if present), then lets MODEL_PATH / TAXONOMY_PATH environment
// variables take precedence.
func LoadEngineConfig() (*EngineConfig, error) {
	if engineConfig != nil && configLoaded {
		return engineConfig, nil
	}

	cfg := &EngineConfig{}

	projectRoot := findProjectRoot()
	envPath := filepath.Join(projectRoot, ".env")

	if vars, err := godotenv.Read(envPath); err == nil {
		if v, ok := vars["MODEL_PATH"]; ok {
			cfg.ModelPath = v
		}
		if v, ok := vars["TAXONOMY_PATH"]; ok {
			cfg.TaxonomyPath = v
		}
	}

	if modelPath := os.Getenv("MODEL_PATH"); modelPath != "" {
		cfg.ModelPath = modelPath
	}
	if taxonomyPath := os.Getenv("TAXONOMY_PATH"); taxonomyPath != "" {
		cfg.TaxonomyPath = taxonomyPath
	}

	engineConfig = cfg
	configLoaded = true
	return cfg, nil
}

func findProjectRoot() string {
	cwd, _ := os.Getwd()
	if _, err := os.Stat(filepath.Join(cwd, ".env")); err == nil {
		return cwd
	}
	for {
		if _, err := os.Stat(filepath.Join(cwd, "go.mod")); err == nil {
			return cwd
		}
		parent := filepath.Dir(cwd)
		if parent == cwd {
			return cwd
		}
		cwd = parent
	}
}

// GetModelPath returns the configured model artifact directory, or ""
// if none is set (callers should fall back to the embedded artifact).
func GetModelPath() string {
	cfg, err := LoadEngineConfig()
	if err != nil || cfg.ModelPath == "" {
		return ""
	}
	return cfg.ModelPath
}

// GetTaxonomyPath returns the configured taxonomy directory, defaulting
// to "taxonomy" relative to the working directory when unset.
func GetTaxonomyPath() string {
	cfg, err := LoadEngineConfig()
	if err != nil || cfg.TaxonomyPath == "" {
		return "taxonomy"
	}
	return cfg.TaxonomyPath
}
