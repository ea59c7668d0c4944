package logokit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/lysachain/logokit/internal/assets"
	"github.com/lysachain/logokit/internal/fileutil"
	"github.com/lysachain/logokit/internal/pipeline"
)

var _ pipeline.PageInjector = (*pipeline.PageInjection)(nil)

// InlineReport describes a completed inline run.
type InlineReport struct {
	Source string // clean SVG read
	Output string // page written
	Bytes  int    // size of the written page
}

// Inliner renders the clean logo SVG into the page template and writes the
// finished page.
type Inliner struct {
	paths     Paths
	logger    *slog.Logger
	className string
	page      Page
	injector  pipeline.PageInjector
}

// NewInliner creates an Inliner. The page template is loaded and parsed
// here, so template errors surface before any file is read.
func NewInliner(opts ...Option) (*Inliner, error) {
	o := applyOptions(opts)
	if err := o.paths.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateClassName(o.className); err != nil {
		return nil, err
	}

	content, err := loadTemplate(o.assetPath, o.template)
	if err != nil {
		return nil, err
	}

	injector, err := pipeline.NewPageInjection(content)
	if err != nil {
		return nil, fmt.Errorf("initializing page injector: %w", err)
	}

	return &Inliner{
		paths:     o.paths.Resolve(),
		logger:    o.logger,
		className: o.className,
		page:      o.page,
		injector:  injector,
	}, nil
}

// loadTemplate resolves tmpl as a file path when it contains a separator,
// otherwise as a template name looked up in assetPath then the embedded set.
func loadTemplate(assetPath, tmpl string) (string, error) {
	if fileutil.IsFilePath(tmpl) {
		data, err := os.ReadFile(tmpl) // #nosec G304 -- user-provided template path
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, tmpl)
			}
			return "", fmt.Errorf("%w: reading %s: %v", ErrInvalidAssetPath, tmpl, err)
		}
		return string(data), nil
	}

	resolver, err := assets.NewAssetResolver(assetPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}

	content, err := resolver.LoadTemplate(tmpl)
	if err != nil {
		if errors.Is(err, assets.ErrTemplateNotFound) || errors.Is(err, assets.ErrInvalidAssetName) {
			return "", fmt.Errorf("%w: %q (available: %v)", ErrTemplateNotFound, tmpl, resolver.ListTemplates())
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	return content, nil
}

// Paths returns the resolved file locations.
func (in *Inliner) Paths() Paths {
	return in.paths
}

// Render cleans svg and returns the rendered page.
func (in *Inliner) Render(ctx context.Context, svg string) (string, error) {
	cleaned := pipeline.CleanSVG(svg, in.className)

	page, err := in.injector.InjectSVG(ctx, cleaned, in.page.pageData())
	if err != nil {
		if errors.Is(err, pipeline.ErrPageRender) {
			return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
		}
		return "", err
	}
	return page, nil
}

// Run reads the clean SVG, renders the page and overwrites the HTML file.
// A missing clean SVG returns an error matching both ErrCleanSVGNotFound
// and os.ErrNotExist, and nothing is written.
func (in *Inliner) Run(ctx context.Context) (*InlineReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := os.ReadFile(in.paths.CleanSVG)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &MissingFileError{Err: ErrCleanSVGNotFound, Path: in.paths.CleanSVG}
		}
		return nil, fmt.Errorf("%w: %v", ErrReadCleanSVG, err)
	}

	page, err := in.Render(ctx, string(src))
	if err != nil {
		return nil, err
	}

	if err := fileutil.WriteFileAtomic(in.paths.HTML, []byte(page)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteIndex, err)
	}
	in.logger.Info("Updated page with inline SVG", "path", in.paths.HTML, "source", in.paths.CleanSVG)

	return &InlineReport{Source: in.paths.CleanSVG, Output: in.paths.HTML, Bytes: len(page)}, nil
}
