package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lysachain/logokit"
	"github.com/lysachain/logokit/internal/fileutil"
	"github.com/lysachain/logokit/internal/pipeline"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status     string     `json:"status"` // "ready", "warnings", "errors"
	Inputs     inputsInfo `json:"inputs"`
	References []refInfo  `json:"references"`
	Warnings   []string   `json:"warnings,omitempty"`
	Errors     []string   `json:"errors,omitempty"`
}

// fileCheck records whether a configured path exists.
type fileCheck struct {
	Path  string `json:"path"`
	Found bool   `json:"found"`
}

// inputsInfo holds the checks of the configured file layout.
type inputsInfo struct {
	CleanSVG       fileCheck `json:"clean_svg"`
	SVG            fileCheck `json:"svg"`
	HTML           fileCheck `json:"html"`
	Assets         fileCheck `json:"assets_dir"`
	EmbeddedImages int       `json:"embedded_images"`
	Template       string    `json:"template"`
}

// refInfo holds one local file referenced by the page.
type refInfo struct {
	Element string `json:"element"`
	Path    string `json:"path"`
	Found   bool   `json:"found"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	flags, err := parseCommandFlags("doctor", args, env.Stderr)
	if err != nil {
		return reportCommandError(err, "doctor", env)
	}
	params, err := resolveParams(flags, env)
	if err != nil {
		return reportCommandError(err, "doctor", env)
	}

	result := runDoctor(params)

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// reportCommandError prints err the way runMain does and returns its exit code.
func reportCommandError(err error, cmd string, env *Environment) int {
	if isHelp(err) {
		printCommandUsage(env.Stdout, cmd)
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	return exitCodeFor(err)
}

// runDoctor performs all diagnostic checks.
func runDoctor(params *commandParams) *doctorResult {
	paths := libraryPaths(params.cfg).Resolve()
	result := &doctorResult{
		Inputs: inputsInfo{
			CleanSVG: fileCheck{Path: paths.CleanSVG, Found: fileutil.FileExists(paths.CleanSVG)},
			SVG:      fileCheck{Path: paths.SVG, Found: fileutil.FileExists(paths.SVG)},
			HTML:     fileCheck{Path: paths.HTML, Found: fileutil.FileExists(paths.HTML)},
			Assets:   fileCheck{Path: paths.Assets, Found: fileutil.DirExists(paths.Assets)},
			Template: params.cfg.Inline.Template,
		},
	}

	checkInputs(result)
	checkTemplate(params, result)
	checkReferences(paths.HTML, result)

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	} else {
		result.Status = "ready"
	}

	return result
}

// checkInputs verifies the inliner input and the extractor targets.
func checkInputs(result *doctorResult) {
	in := &result.Inputs

	if !in.CleanSVG.Found {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Clean SVG not found at %s; inline will fail", in.CleanSVG.Path))
	}

	for _, target := range []fileCheck{in.SVG, in.HTML} {
		if !target.Found {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s not found; extract will skip it", target.Path))
			continue
		}
		content, err := os.ReadFile(target.Path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Cannot read %s: %v", target.Path, err))
			continue
		}
		in.EmbeddedImages += len(pipeline.FindEmbeddedImages(string(content)))
	}

	if !in.Assets.Found {
		msg := fmt.Sprintf("Assets directory %s does not exist", in.Assets.Path)
		if in.EmbeddedImages > 0 {
			result.Errors = append(result.Errors, msg+"; extracted images cannot be written")
		} else {
			result.Warnings = append(result.Warnings, msg)
		}
	}
}

// checkTemplate verifies the page template loads and parses.
func checkTemplate(params *commandParams, result *doctorResult) {
	if _, err := logokit.NewInliner(libraryOptions(params)...); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Page template: %v", err))
	}
}

// checkReferences verifies that files referenced by the page exist.
func checkReferences(htmlPath string, result *doctorResult) {
	content, err := os.ReadFile(htmlPath)
	if err != nil {
		return // already reported by checkInputs
	}

	refs, err := pipeline.CollectLocalRefs(string(content))
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Cannot parse %s: %v", htmlPath, err))
		return
	}

	dir := filepath.Dir(htmlPath)
	for _, ref := range refs {
		found := fileutil.FileExists(filepath.Join(dir, filepath.FromSlash(ref.Path)))
		result.References = append(result.References, refInfo{Element: ref.Element, Path: ref.Path, Found: found})
		if !found {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("<%s> references missing file %s", ref.Element, ref.Path))
		}
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "logokit doctor")
	fmt.Fprintln(w)

	// Inputs section
	fmt.Fprintln(w, "Inputs")
	printFileCheck(w, "Clean SVG", r.Inputs.CleanSVG)
	printFileCheck(w, "Logo SVG", r.Inputs.SVG)
	printFileCheck(w, "Page", r.Inputs.HTML)
	printFileCheck(w, "Assets directory", r.Inputs.Assets)
	fmt.Fprintf(w, "  [OK] Embedded images: %d\n", r.Inputs.EmbeddedImages)
	fmt.Fprintln(w)

	// References section
	if len(r.References) > 0 {
		fmt.Fprintln(w, "References")
		for _, ref := range r.References {
			if ref.Found {
				fmt.Fprintf(w, "  [OK] %s (%s)\n", ref.Path, ref.Element)
			} else {
				fmt.Fprintf(w, "  [WARN] %s (%s): missing\n", ref.Path, ref.Element)
			}
		}
		fmt.Fprintln(w)
	}

	// Warnings
	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	// Errors
	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	// Final status
	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to build")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

func printFileCheck(w io.Writer, label string, c fileCheck) {
	if c.Found {
		fmt.Fprintf(w, "  [OK] %s: %s\n", label, c.Path)
	} else {
		fmt.Fprintf(w, "  [MISSING] %s: %s\n", label, c.Path)
	}
}
