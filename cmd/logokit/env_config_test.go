package main

// Notes:
// - These tests use t.Setenv and cannot run in parallel.
// - warnUnknownEnvVars: we check the output for a typo and for known names.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lysachain/logokit/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Reading LOGOKIT_* variables
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("LOGOKIT_CONFIG", "site")
	t.Setenv("LOGOKIT_ROOT", "/srv/site")
	t.Setenv("LOGOKIT_LOG_LEVEL", "debug")
	t.Setenv("LOGOKIT_LOG_FORMAT", "json")
	t.Setenv("LOGOKIT_CLASS", "env-logo")

	got := loadEnvConfig()
	want := envConfig{
		ConfigPath: "site",
		Root:       "/srv/site",
		LogLevel:   "debug",
		LogFormat:  "json",
		Class:      "env-logo",
	}
	if *got != want {
		t.Errorf("loadEnvConfig() = %+v, want %+v", *got, want)
	}
}

func TestLoadEnvConfig_Empty(t *testing.T) {
	for name := range knownEnvVars {
		t.Setenv(name, "")
	}

	if got := loadEnvConfig(); *got != (envConfig{}) {
		t.Errorf("loadEnvConfig() = %+v, want zero value", *got)
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("LOGOKIT_CLAS", "typo")
	t.Setenv("LOGOKIT_ROOT", "site")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	out := buf.String()
	if !strings.Contains(out, "unknown environment variable LOGOKIT_CLAS (typo?)") {
		t.Errorf("expected warning for LOGOKIT_CLAS, got %q", out)
	}
	if strings.Contains(out, "LOGOKIT_ROOT") {
		t.Errorf("LOGOKIT_ROOT is known and should not be reported, got %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env values override the config file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("set values override", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Inline.Class = "from-file"
		cfg.Paths.Root = "file-root"

		applyEnvConfig(&envConfig{Root: "env-root", Class: "from-env", LogLevel: "warn", LogFormat: "json"}, cfg)

		if cfg.Paths.Root != "env-root" {
			t.Errorf("Root = %q, want env-root", cfg.Paths.Root)
		}
		if cfg.Inline.Class != "from-env" {
			t.Errorf("Class = %q, want from-env", cfg.Inline.Class)
		}
		if cfg.Log.Level != "warn" || cfg.Log.Format != "json" {
			t.Errorf("Log = %+v, want warn/json", cfg.Log)
		}
	})

	t.Run("empty values keep config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Inline.Class = "from-file"
		want := *cfg

		applyEnvConfig(&envConfig{}, cfg)

		if *cfg != want {
			t.Errorf("empty env should not change config, got %+v", *cfg)
		}
	})
}
