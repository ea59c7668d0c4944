package logokit

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/lysachain/logokit/internal/assets"
	"github.com/lysachain/logokit/internal/logger"
	"github.com/lysachain/logokit/internal/pipeline"
)

// DefaultClassName is the class added to the inlined root <svg> element.
const DefaultClassName = pipeline.DefaultSVGClass

// DefaultTemplate is the name of the built-in page template.
const DefaultTemplate = assets.DefaultTemplateName

// Page holds the page fields rendered around the inlined logo.
type Page struct {
	Lang        string
	Title       string
	Stylesheet  string
	Script      string
	Video       string
	VideoType   string
	LoadingText string
}

// DefaultPage returns the fields of the original landing page.
func DefaultPage() Page {
	d := pipeline.DefaultPageData()
	return Page{
		Lang:        d.Lang,
		Title:       d.Title,
		Stylesheet:  d.Stylesheet,
		Script:      d.Script,
		Video:       d.Video,
		VideoType:   d.VideoType,
		LoadingText: d.LoadingText,
	}
}

func (p Page) pageData() pipeline.PageData {
	return pipeline.PageData{
		Lang:        p.Lang,
		Title:       p.Title,
		Stylesheet:  p.Stylesheet,
		Script:      p.Script,
		Video:       p.Video,
		VideoType:   p.VideoType,
		LoadingText: p.LoadingText,
	}
}

// Option configures an Extractor or an Inliner. Options that do not apply
// to a tool are ignored by it.
type Option func(*options)

// options holds the shared configuration of both tools.
type options struct {
	paths     Paths
	logger    *slog.Logger
	className string
	template  string
	assetPath string
	page      Page
}

func defaultOptions() options {
	return options{
		paths:     DefaultPaths(),
		logger:    logger.Discard(),
		className: DefaultClassName,
		template:  DefaultTemplate,
		page:      DefaultPage(),
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPaths sets the file locations. Empty fields keep their defaults.
func WithPaths(p Paths) Option {
	return func(o *options) {
		if p.Root != "" {
			o.paths.Root = p.Root
		}
		if p.SVG != "" {
			o.paths.SVG = p.SVG
		}
		if p.HTML != "" {
			o.paths.HTML = p.HTML
		}
		if p.Assets != "" {
			o.paths.Assets = p.Assets
		}
		if p.CleanSVG != "" {
			o.paths.CleanSVG = p.CleanSVG
		}
	}
}

// WithLogger sets the logger progress and per-image outcomes are reported to.
// A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = logger.Discard()
		}
		o.logger = l
	}
}

// WithClassName sets the class injected into the root <svg> element.
func WithClassName(name string) Option {
	return func(o *options) {
		o.className = name
	}
}

// WithTemplate selects the page template by name (without .html).
func WithTemplate(name string) Option {
	return func(o *options) {
		o.template = name
	}
}

// WithAssetPath sets a directory whose templates/ subdirectory overrides
// the embedded templates.
func WithAssetPath(path string) Option {
	return func(o *options) {
		o.assetPath = path
	}
}

// WithPage sets the page fields. Empty fields keep their defaults.
func WithPage(p Page) Option {
	return func(o *options) {
		def := o.page
		o.page = Page{
			Lang:        firstNonEmpty(p.Lang, def.Lang),
			Title:       firstNonEmpty(p.Title, def.Title),
			Stylesheet:  firstNonEmpty(p.Stylesheet, def.Stylesheet),
			Script:      firstNonEmpty(p.Script, def.Script),
			Video:       firstNonEmpty(p.Video, def.Video),
			VideoType:   firstNonEmpty(p.VideoType, def.VideoType),
			LoadingText: firstNonEmpty(p.LoadingText, def.LoadingText),
		}
	}
}

// ValidateClassName rejects class values that would break out of the
// attribute they are written into.
func ValidateClassName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidClassName)
	}
	if strings.ContainsAny(name, "\"<>\x00") {
		return fmt.Errorf("%w: %q contains a quote, angle bracket or NUL", ErrInvalidClassName, name)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
