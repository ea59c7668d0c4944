package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/lysachain/logokit"
	"github.com/lysachain/logokit/internal/fileutil"
	"github.com/lysachain/logokit/internal/hints"
	"github.com/lysachain/logokit/internal/pipeline"
)

// runExtractCmd moves embedded images out of the SVG and HTML targets.
func runExtractCmd(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseCommandFlags("extract", args, env.Stderr)
	if err != nil {
		return err
	}
	params, err := resolveParams(flags, env)
	if err != nil {
		return err
	}
	return runExtract(ctx, params, env)
}

// runExtract runs the extractor and prints a summary.
func runExtract(ctx context.Context, params *commandParams, env *Environment) error {
	ext, err := logokit.NewExtractor(libraryOptions(params)...)
	if err != nil {
		return err
	}

	report, err := ext.Run(ctx)
	if report != nil {
		printExtractReport(report, params.quiet, env)
		warnMissingAssets(report, ext.Paths().Assets, env)
	}
	if err != nil {
		return fmt.Errorf("extracting images: %w", err)
	}
	return nil
}

// printExtractReport writes one line per processed target.
func printExtractReport(report *logokit.ExtractReport, quiet bool, env *Environment) {
	if quiet {
		return
	}
	for _, f := range report.Files {
		switch {
		case f.Skipped:
			fmt.Fprintf(env.Stdout, "Skipped %s (not found)\n", f.Target.Path)
		case len(f.Images) == 0:
			fmt.Fprintf(env.Stdout, "No embedded images in %s\n", f.Target.Path)
		default:
			fmt.Fprintf(env.Stdout, "%s: %d extracted, %d rewritten, %d failed\n",
				f.Target.Path, f.Written(), f.Replaced(), f.Failed())
		}
	}
}

// warnMissingAssets points at the assets directory when images could not be
// written because it does not exist.
func warnMissingAssets(report *logokit.ExtractReport, dir string, env *Environment) {
	if report.Failed() == 0 || fileutil.DirExists(dir) {
		return
	}
	for _, f := range report.Files {
		for _, img := range f.Images {
			if errors.Is(img.Err, pipeline.ErrImageWrite) {
				fmt.Fprintf(env.Stderr, "warning: assets directory %s does not exist%s\n", dir, hints.ForAssetsDir(dir))
				return
			}
		}
	}
}
