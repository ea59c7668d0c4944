package logokit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lysachain/logokit/internal/fileutil"
	"github.com/lysachain/logokit/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.ImageExtractor = (*pipeline.ImageExtraction)(nil)
	_ pipeline.ImageWriter    = (*dirWriter)(nil)
)

// TargetKind identifies which document an extraction target is.
type TargetKind string

// Extraction target kinds, processed in this order.
const (
	TargetSVG  TargetKind = "svg"
	TargetHTML TargetKind = "html"
)

// Target is one document the extractor rewrites.
type Target struct {
	Kind TargetKind
	Path string
}

// ImageResult records the outcome for one embedded image.
type ImageResult = pipeline.ImageResult

// FileReport describes what happened to one target.
type FileReport struct {
	Target  Target
	Skipped bool // target file does not exist
	Changed bool // document was rewritten
	Images  []ImageResult
}

// Written returns the number of image files written.
func (r *FileReport) Written() int {
	n := 0
	for _, img := range r.Images {
		if img.Written {
			n++
		}
	}
	return n
}

// Replaced returns the number of references rewritten.
func (r *FileReport) Replaced() int {
	n := 0
	for _, img := range r.Images {
		if img.Replaced {
			n++
		}
	}
	return n
}

// Failed returns the number of images that could not be decoded or written.
func (r *FileReport) Failed() int {
	n := 0
	for _, img := range r.Images {
		if img.Err != nil {
			n++
		}
	}
	return n
}

// ExtractReport aggregates the reports of every target.
type ExtractReport struct {
	Files []*FileReport
}

// Written returns the number of image files written across all targets.
func (r *ExtractReport) Written() int {
	n := 0
	for _, f := range r.Files {
		n += f.Written()
	}
	return n
}

// Failed returns the number of per-image failures across all targets.
func (r *ExtractReport) Failed() int {
	n := 0
	for _, f := range r.Files {
		n += f.Failed()
	}
	return n
}

// Extractor moves embedded base64 PNG images out of the logo SVG and the
// page into standalone files, rewriting the references to point at them.
type Extractor struct {
	paths  Paths
	logger *slog.Logger
}

// NewExtractor creates an Extractor. Use WithPaths and WithLogger to
// customize it; other options are ignored.
func NewExtractor(opts ...Option) (*Extractor, error) {
	o := applyOptions(opts)
	if err := o.paths.Validate(); err != nil {
		return nil, err
	}
	return &Extractor{paths: o.paths.Resolve(), logger: o.logger}, nil
}

// Paths returns the resolved file locations.
func (e *Extractor) Paths() Paths {
	return e.paths
}

// Targets returns the documents Run processes, SVG first.
func (e *Extractor) Targets() []Target {
	return []Target{
		{Kind: TargetSVG, Path: e.paths.SVG},
		{Kind: TargetHTML, Path: e.paths.HTML},
	}
}

// Run extracts images from every target in order. Missing targets are
// skipped. Per-image failures are logged and reported but do not stop the
// run; document read/write failures and cancellation do.
func (e *Extractor) Run(ctx context.Context) (*ExtractReport, error) {
	report := &ExtractReport{}
	for _, target := range e.Targets() {
		fr, err := e.ExtractFile(ctx, target)
		if fr != nil {
			report.Files = append(report.Files, fr)
		}
		if err != nil {
			return report, err
		}
	}
	return report, nil
}

// ExtractFile extracts images from one target document.
func (e *Extractor) ExtractFile(ctx context.Context, target Target) (*FileReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &FileReport{Target: target}

	content, err := os.ReadFile(target.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			e.logger.Debug("target not found, skipping", "target", target.Path)
			report.Skipped = true
			return report, nil
		}
		return report, fmt.Errorf("%w: %v", ErrReadDocument, err)
	}

	refDir, err := pipeline.RefDir(filepath.Dir(target.Path), e.paths.Assets)
	if err != nil {
		return report, fmt.Errorf("%w: computing reference path: %v", ErrInvalidPaths, err)
	}

	extraction := &pipeline.ImageExtraction{
		Writer: &dirWriter{dir: e.paths.Assets},
		RefDir: refDir,
	}

	updated, results, err := extraction.ExtractImages(ctx, string(content))
	report.Images = results
	e.logResults(target, results)
	if err != nil {
		return report, err
	}

	if updated == string(content) {
		e.logger.Debug("no embedded images rewritten", "target", target.Path, "matches", len(results))
		return report, nil
	}

	if err := fileutil.WriteFileAtomic(target.Path, []byte(updated)); err != nil {
		return report, fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}
	report.Changed = true
	e.logger.Info("Updated "+string(target.Kind)+" file", "path", target.Path)
	return report, nil
}

func (e *Extractor) logResults(target Target, results []ImageResult) {
	for _, res := range results {
		switch {
		case res.Err != nil:
			e.logger.Error("Error processing image", "id", res.ID, "target", target.Path, "error", res.Err)
		case !res.Replaced:
			e.logger.Info("Saved "+res.Filename, "id", res.ID, "bytes", res.Size)
			e.logger.Warn("Could not find exact string for replacement", "id", res.ID, "target", target.Path)
		default:
			e.logger.Info("Saved "+res.Filename, "id", res.ID, "bytes", res.Size, "ref", res.Ref)
		}
	}
}

// dirWriter writes images into a directory. The directory is not created.
type dirWriter struct {
	dir string
}

func (w *dirWriter) WriteImage(filename string, data []byte) error {
	return fileutil.WriteFileAtomic(filepath.Join(w.dir, filename), data)
}
