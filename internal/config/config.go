package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lysachain/logokit/internal/fileutil"
	"github.com/lysachain/logokit/internal/logger"
	"github.com/lysachain/logokit/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength        = 4096 // PATH_MAX on Linux
	MaxClassLength       = 200  // space-separated class list
	MaxTemplateLength    = 4096 // name or file path
	MaxLangLength        = 35   // BCP 47 tag
	MaxTitleLength       = 200  // <title>
	MaxURLLength         = 2048 // browser limit
	MaxMIMELength        = 100  // "video/mp4"
	MaxLoadingTextLength = 100  // preloader caption
	MaxLogSettingLength  = 10   // "debug", "json"
)

// configDirName is the directory under os.UserConfigDir searched for configs.
const configDirName = "logokit"

// Config holds all configuration for the extractor and the inliner.
type Config struct {
	Paths  PathsConfig  `yaml:"paths"`
	Inline InlineConfig `yaml:"inline"`
	Log    LogConfig    `yaml:"log"`
}

// PathsConfig defines the project file layout. Relative paths resolve
// against Root.
type PathsConfig struct {
	Root     string `yaml:"root"`
	SVG      string `yaml:"svg"`      // extractor SVG target
	HTML     string `yaml:"html"`     // extractor HTML target and inliner output
	Assets   string `yaml:"assets"`   // extracted images directory
	CleanSVG string `yaml:"cleanSvg"` // inliner input
}

// InlineConfig defines the inliner's page rendering options.
type InlineConfig struct {
	Class       string `yaml:"class"`
	Template    string `yaml:"template"`  // template name or file path
	AssetPath   string `yaml:"assetPath"` // directory with templates/ overrides (empty = embedded only)
	Lang        string `yaml:"lang"`
	Title       string `yaml:"title"`
	Stylesheet  string `yaml:"stylesheet"`
	Script      string `yaml:"script"`
	Video       string `yaml:"video"`
	VideoType   string `yaml:"videoType"`
	LoadingText string `yaml:"loadingText"`
}

// LogConfig defines logging options.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	paths := []struct {
		name  string
		value string
	}{
		{"paths.root", c.Paths.Root},
		{"paths.svg", c.Paths.SVG},
		{"paths.html", c.Paths.HTML},
		{"paths.assets", c.Paths.Assets},
		{"paths.cleanSvg", c.Paths.CleanSVG},
		{"inline.assetPath", c.Inline.AssetPath},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.name, p.value, MaxPathLength); err != nil {
			return err
		}
	}

	// Validate inline fields
	if err := validateFieldLength("inline.class", c.Inline.Class, MaxClassLength); err != nil {
		return err
	}
	if c.Inline.Class != "" && strings.TrimSpace(c.Inline.Class) == "" {
		return fmt.Errorf("%w: inline.class: must not be blank", ErrInvalidValue)
	}
	if err := validateFieldLength("inline.template", c.Inline.Template, MaxTemplateLength); err != nil {
		return err
	}
	if err := validateFieldLength("inline.lang", c.Inline.Lang, MaxLangLength); err != nil {
		return err
	}
	if err := validateFieldLength("inline.title", c.Inline.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("inline.stylesheet", c.Inline.Stylesheet, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("inline.script", c.Inline.Script, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("inline.video", c.Inline.Video, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("inline.videoType", c.Inline.VideoType, MaxMIMELength); err != nil {
		return err
	}
	if err := validateFieldLength("inline.loadingText", c.Inline.LoadingText, MaxLoadingTextLength); err != nil {
		return err
	}

	// Validate log fields
	if err := validateFieldLength("log.level", c.Log.Level, MaxLogSettingLength); err != nil {
		return err
	}
	if c.Log.Level != "" && !logger.IsValidLevel(c.Log.Level) {
		return fmt.Errorf("%w: log.level: %q (must be debug, info, warn, or error)", ErrInvalidValue, c.Log.Level)
	}
	if c.Log.Format != "" && !logger.IsValidFormat(c.Log.Format) {
		return fmt.Errorf("%w: log.format: %q (must be text or json)", ErrInvalidValue, c.Log.Format)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration of the Lysa Chain site.
func DefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			Root:     ".",
			SVG:      "assets/lysachain-logo-scomposto.svg",
			HTML:     "index.html",
			Assets:   "assets",
			CleanSVG: "assets/logo-clean.svg",
		},
		Inline: InlineConfig{
			Class:       "main-logo-svg",
			Template:    "index",
			Lang:        "it",
			Title:       "Lysa Chain",
			Stylesheet:  "style.css",
			Script:      "main.js",
			Video:       "assets/lysa-chain-preloader-web.mp4",
			VideoType:   "video/mp4",
			LoadingText: "LOADING...",
		},
		Log: LogConfig{
			Level:  "info",
			Format: logger.FormatText,
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal encodes the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yamlutil.Marshal(c)
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/logokit/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
