package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Paths.SVG != "assets/lysachain-logo-scomposto.svg" {
		t.Errorf("Paths.SVG = %q, want assets/lysachain-logo-scomposto.svg", cfg.Paths.SVG)
	}
	if cfg.Paths.HTML != "index.html" {
		t.Errorf("Paths.HTML = %q, want index.html", cfg.Paths.HTML)
	}
	if cfg.Paths.CleanSVG != "assets/logo-clean.svg" {
		t.Errorf("Paths.CleanSVG = %q, want assets/logo-clean.svg", cfg.Paths.CleanSVG)
	}
	if cfg.Inline.Class != "main-logo-svg" {
		t.Errorf("Inline.Class = %q, want main-logo-svg", cfg.Inline.Class)
	}
	if cfg.Inline.AssetPath != "" {
		t.Errorf("Inline.AssetPath = %q, want empty", cfg.Inline.AssetPath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{"empty value is valid", "", 10, false},
		{"value at limit is valid", "1234567890", 10, false},
		{"value over limit returns error", "12345678901", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength("test.field", tt.value, tt.maxLength)
			if tt.wantErr {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
				if err != nil && !strings.Contains(err.Error(), "test.field") {
					t.Errorf("error %q should name the field", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr error
	}{
		{"defaults are valid", func(c *Config) {}, nil},
		{"empty fields are valid", func(c *Config) { *c = Config{} }, nil},
		{"path too long", func(c *Config) { c.Paths.Assets = strings.Repeat("a", MaxPathLength+1) }, ErrFieldTooLong},
		{"class too long", func(c *Config) { c.Inline.Class = strings.Repeat("c", MaxClassLength+1) }, ErrFieldTooLong},
		{"blank class", func(c *Config) { c.Inline.Class = "   " }, ErrInvalidValue},
		{"title too long", func(c *Config) { c.Inline.Title = strings.Repeat("t", MaxTitleLength+1) }, ErrFieldTooLong},
		{"loading text too long", func(c *Config) { c.Inline.LoadingText = strings.Repeat("l", MaxLoadingTextLength+1) }, ErrFieldTooLong},
		{"unknown log level", func(c *Config) { c.Log.Level = "trace" }, ErrInvalidValue},
		{"warning log level", func(c *Config) { c.Log.Level = "warning" }, nil},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, ErrInvalidValue},
		{"json log format", func(c *Config) { c.Log.Format = "JSON" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config over defaults", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "logokit.yaml")
		content := `paths:
  root: site
  assets: static
inline:
  class: "logo main-logo-svg"
log:
  level: debug
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Paths.Root != "site" {
			t.Errorf("Paths.Root = %q, want site", cfg.Paths.Root)
		}
		if cfg.Paths.Assets != "static" {
			t.Errorf("Paths.Assets = %q, want static", cfg.Paths.Assets)
		}
		if cfg.Paths.HTML != "index.html" {
			t.Errorf("Paths.HTML = %q, want default index.html", cfg.Paths.HTML)
		}
		if cfg.Inline.Class != "logo main-logo-svg" {
			t.Errorf("Inline.Class = %q, want %q", cfg.Inline.Class, "logo main-logo-svg")
		}
		if cfg.Inline.Title != "Lysa Chain" {
			t.Errorf("Inline.Title = %q, want default", cfg.Inline.Title)
		}
		if cfg.Log.Level != "debug" {
			t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown key returns ErrConfigParse", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(configPath, []byte("paths:\n  htlm: page.html\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value fails validation", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(configPath, []byte("log:\n  format: xml\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("config name resolves yaml in current directory", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "myconfig.yaml"), []byte("inline:\n  title: fromname\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		t.Chdir(dir)

		cfg, err := LoadConfig("myconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Inline.Title != "fromname" {
			t.Errorf("Inline.Title = %q, want fromname", cfg.Inline.Title)
		}
	})

	t.Run("config name resolves yml when yaml not found", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "myconfig.yml"), []byte("inline:\n  title: fromyml\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		t.Chdir(dir)

		cfg, err := LoadConfig("myconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Inline.Title != "fromyml" {
			t.Errorf("Inline.Title = %q, want fromyml", cfg.Inline.Title)
		}
	})

	t.Run("config name resolves in user config directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)
		t.Setenv("HOME", home)
		t.Chdir(t.TempDir())

		userConfigDir, err := os.UserConfigDir()
		if err != nil {
			t.Skipf("no user config dir: %v", err)
		}
		dir := filepath.Join(userConfigDir, "logokit")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "site.yaml"), []byte("paths:\n  root: fromuser\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig("site")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Paths.Root != "fromuser" {
			t.Errorf("Paths.Root = %q, want fromuser", cfg.Paths.Root)
		}
	})

	t.Run("unknown name lists tried paths", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := LoadConfig("nope")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "nope.yaml") || !strings.Contains(err.Error(), "nope.yml") {
			t.Errorf("error %q should list tried paths", err)
		}
	})
}

func TestConfig_Marshal(t *testing.T) {
	out, err := DefaultConfig().Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	for _, want := range []string{"paths:", "cleanSvg: assets/logo-clean.svg", "inline:", "class: main-logo-svg", "log:"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("Marshal() output missing %q:\n%s", want, out)
		}
	}

	// The printed config must load back.
	path := filepath.Join(t.TempDir(), "printed.yaml")
	if err := os.WriteFile(path, out, 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig(printed) error = %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("round trip = %+v, want defaults", *cfg)
	}
}
