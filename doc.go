// Package logokit prepares the Lysa Chain landing page logo.
//
// It bundles two independent build-time tools that work on the same
// project directory.
//
// # Image Extractor
//
// The Extractor finds <image> elements whose xlink:href is a base64 PNG data
// URI, writes each payload to assets/logo_part_<id>.png and rewrites the
// href to the extracted file:
//
//	ext, err := logokit.NewExtractor(logokit.WithLogger(slog.Default()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := ext.Run(ctx)
//
// The logo SVG is processed first, then index.html. Targets that do not
// exist are skipped. Failures on a single image are logged and recorded in
// the report; the remaining images are still processed. A document without
// data URIs is left untouched, so a second run is a no-op.
//
// # SVG Inliner
//
// The Inliner strips the XML declaration, DOCTYPE and comments from
// assets/logo-clean.svg, adds class="main-logo-svg" to the root element and
// renders it into the page template:
//
//	in, err := logokit.NewInliner(logokit.WithClassName("main-logo-svg"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_, err = in.Run(ctx)
//
// A missing clean SVG aborts the run before index.html is written.
//
// # Paths
//
// File locations default to the site layout and can be changed with
// WithPaths. Relative paths resolve against Paths.Root:
//
//	logokit.WithPaths(logokit.Paths{Root: "site", Assets: "static"})
//
// # Error Handling
//
// Errors are sentinel values wrapped with context and checked with errors.Is:
//
//	if errors.Is(err, logokit.ErrCleanSVGNotFound) {
//	    // export the clean logo first
//	}
package logokit
