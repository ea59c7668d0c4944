package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lysachain/logokit"
	"github.com/lysachain/logokit/internal/assets"
	"github.com/lysachain/logokit/internal/config"
	"github.com/lysachain/logokit/internal/hints"
	"github.com/lysachain/logokit/internal/logger"
)

// commandParams groups the resolved configuration of one command.
type commandParams struct {
	cfg    *config.Config
	logger *slog.Logger
	quiet  bool
}

// resolveParams loads the config file, applies env vars then flags, and
// validates the result.
func resolveParams(f *commandFlags, env *Environment) (*commandParams, error) {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg := config.DefaultConfig()
	name := f.common.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(f, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &commandParams{
		cfg:    cfg,
		logger: newLogger(cfg, env),
		quiet:  f.common.quiet,
	}, nil
}

// mergeFlags applies CLI flags on top of cfg. Only flags that were set win.
func mergeFlags(f *commandFlags, cfg *config.Config) {
	setIf := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	setIf(&cfg.Paths.Root, f.paths.root)
	setIf(&cfg.Paths.SVG, f.paths.svg)
	setIf(&cfg.Paths.HTML, f.paths.html)
	setIf(&cfg.Paths.Assets, f.paths.assets)
	setIf(&cfg.Paths.CleanSVG, f.paths.cleanSVG)

	setIf(&cfg.Inline.Class, f.inline.class)
	setIf(&cfg.Inline.Template, f.inline.template)
	setIf(&cfg.Inline.AssetPath, f.inline.assetPath)

	setIf(&cfg.Log.Format, f.common.logFormat)
	switch {
	case f.common.verbose:
		cfg.Log.Level = "debug"
	case f.common.quiet:
		cfg.Log.Level = "error"
	}
}

// newLogger builds the stderr logger for a command.
func newLogger(cfg *config.Config, env *Environment) *slog.Logger {
	format := strings.ToLower(cfg.Log.Format)
	if format == "" {
		format = logger.FormatText
	}
	return logger.New(env.Stderr, logger.ParseLevel(cfg.Log.Level), format)
}

// libraryPaths converts the config layout to library paths.
func libraryPaths(cfg *config.Config) logokit.Paths {
	return logokit.Paths{
		Root:     cfg.Paths.Root,
		SVG:      cfg.Paths.SVG,
		HTML:     cfg.Paths.HTML,
		Assets:   cfg.Paths.Assets,
		CleanSVG: cfg.Paths.CleanSVG,
	}
}

// libraryOptions converts the resolved config to library options.
func libraryOptions(p *commandParams) []logokit.Option {
	cfg := p.cfg
	opts := []logokit.Option{
		logokit.WithPaths(libraryPaths(cfg)),
		logokit.WithLogger(p.logger),
		logokit.WithClassName(cfg.Inline.Class),
		logokit.WithPage(logokit.Page{
			Lang:        cfg.Inline.Lang,
			Title:       cfg.Inline.Title,
			Stylesheet:  cfg.Inline.Stylesheet,
			Script:      cfg.Inline.Script,
			Video:       cfg.Inline.Video,
			VideoType:   cfg.Inline.VideoType,
			LoadingText: cfg.Inline.LoadingText,
		}),
	}
	if cfg.Inline.Template != "" {
		opts = append(opts, logokit.WithTemplate(cfg.Inline.Template))
	}
	if cfg.Inline.AssetPath != "" {
		opts = append(opts, logokit.WithAssetPath(cfg.Inline.AssetPath))
	}
	return opts
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(triedPaths(err))
	case errors.Is(err, config.ErrConfigParse),
		errors.Is(err, config.ErrFieldTooLong),
		errors.Is(err, config.ErrInvalidValue):
		return hints.ForInvalidConfig()
	case errors.Is(err, logokit.ErrCleanSVGNotFound):
		var missing *logokit.MissingFileError
		if errors.As(err, &missing) {
			return hints.ForCleanSVGMissing(missing.Path)
		}
		return hints.ForCleanSVGMissing("")
	case errors.Is(err, logokit.ErrTemplateNotFound):
		return hints.ForTemplateNotFound(assets.ListTemplates())
	case errors.Is(err, logokit.ErrWriteDocument),
		errors.Is(err, logokit.ErrWriteIndex):
		return hints.ForWritePermission()
	}
	return ""
}

// triedPaths extracts the comma-separated paths of a config-not-found error.
func triedPaths(err error) []string {
	msg := err.Error()
	i := strings.Index(msg, "tried ")
	if i == -1 {
		return nil
	}
	return strings.Split(msg[i+len("tried "):], ", ")
}
