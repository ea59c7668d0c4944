package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
)

// ErrPageRender is returned when the page template fails to execute.
var ErrPageRender = errors.New("page template rendering failed")

// PageData holds the values rendered into the page template.
type PageData struct {
	Lang        string
	Title       string
	Stylesheet  string
	Script      string
	Video       string
	VideoType   string
	LoadingText string
	SVG         template.HTML // cleaned SVG markup, inserted verbatim
}

// DefaultPageData returns the values of the original Lysa Chain page.
func DefaultPageData() PageData {
	return PageData{
		Lang:        "it",
		Title:       "Lysa Chain",
		Stylesheet:  "style.css",
		Script:      "main.js",
		Video:       "assets/lysa-chain-preloader-web.mp4",
		VideoType:   "video/mp4",
		LoadingText: "LOADING...",
	}
}

// PageInjector defines the contract for inlining SVG markup into a page.
type PageInjector interface {
	InjectSVG(ctx context.Context, svg string, data PageData) (string, error)
}

// PageInjection renders the page template with an inlined SVG.
type PageInjection struct {
	tmpl *template.Template
}

// NewPageInjection creates a PageInjection from template content.
// Returns error if the template cannot be parsed.
func NewPageInjection(tmplContent string) (*PageInjection, error) {
	tmpl, err := template.New("page").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	return &PageInjection{tmpl: tmpl}, nil
}

// InjectSVG renders the page with svg in the logo container. The svg is
// trusted markup produced by CleanSVG; every other field is escaped.
func (p *PageInjection) InjectSVG(ctx context.Context, svg string, data PageData) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	data.SVG = template.HTML(svg) // #nosec G203 -- local build input, inlined on purpose

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}
