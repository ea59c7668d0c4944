package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lysachain/logokit/internal/config"
)

// envPrefix marks logokit environment variables.
const envPrefix = "LOGOKIT_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // LOGOKIT_CONFIG: config file name or path
	Root       string // LOGOKIT_ROOT: project directory
	LogLevel   string // LOGOKIT_LOG_LEVEL: debug, info, warn, error
	LogFormat  string // LOGOKIT_LOG_FORMAT: text, json
	Class      string // LOGOKIT_CLASS: class added to the root <svg>
}

// knownEnvVars lists valid LOGOKIT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"LOGOKIT_CONFIG":     true,
	"LOGOKIT_ROOT":       true,
	"LOGOKIT_LOG_LEVEL":  true,
	"LOGOKIT_LOG_FORMAT": true,
	"LOGOKIT_CLASS":      true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("LOGOKIT_CONFIG"),
		Root:       os.Getenv("LOGOKIT_ROOT"),
		LogLevel:   os.Getenv("LOGOKIT_LOG_LEVEL"),
		LogFormat:  os.Getenv("LOGOKIT_LOG_FORMAT"),
		Class:      os.Getenv("LOGOKIT_CLASS"),
	}
}

// warnUnknownEnvVars writes warnings for unrecognized LOGOKIT_* variables.
// Helps catch typos like LOGOKIT_CLAS instead of LOGOKIT_CLASS.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values over the config file.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Root != "" {
		cfg.Paths.Root = env.Root
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		cfg.Log.Format = env.LogFormat
	}
	if env.Class != "" {
		cfg.Inline.Class = env.Class
	}
}
