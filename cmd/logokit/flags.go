package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// ErrUsage wraps flag parsing and argument errors.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	quiet     bool
	verbose   bool
	logFormat string
}

// pathFlags holds file location overrides.
type pathFlags struct {
	root     string
	svg      string
	html     string
	assets   string
	cleanSVG string
}

// inlineFlags holds inliner rendering flags.
type inlineFlags struct {
	class     string
	template  string // name or file path
	assetPath string // custom template directory
}

// commandFlags holds all flags for one command invocation.
type commandFlags struct {
	common commonFlags
	paths  pathFlags
	inline inlineFlags
	json   bool // doctor only
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: text, json")
}

// addPathFlags adds file location flags to a FlagSet.
func addPathFlags(fs *flag.FlagSet, f *pathFlags) {
	fs.StringVarP(&f.root, "root", "C", "", "project directory")
	fs.StringVar(&f.svg, "svg", "", "logo SVG to extract images from")
	fs.StringVar(&f.html, "html", "", "page to extract images from and write")
	fs.StringVar(&f.assets, "assets", "", "directory for extracted images")
	fs.StringVar(&f.cleanSVG, "clean-svg", "", "clean SVG to inline")
}

// addInlineFlags adds inliner flags to a FlagSet.
func addInlineFlags(fs *flag.FlagSet, f *inlineFlags) {
	fs.StringVar(&f.class, "class", "", "class added to the root <svg>")
	fs.StringVar(&f.template, "template", "", "page template name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with custom templates/")
}

// usesInlineFlags reports whether cmd renders the page.
func usesInlineFlags(cmd string) bool {
	return cmd == "inline" || cmd == "build" || cmd == "config" || cmd == "doctor"
}

// parseCommandFlags parses the flags of cmd. Positional arguments are rejected.
// Returns flag.ErrHelp unwrapped for -h/--help.
func parseCommandFlags(cmd string, args []string, stderr io.Writer) (*commandFlags, error) {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &commandFlags{}

	addCommonFlags(fs, &f.common)
	addPathFlags(fs, &f.paths)
	if usesInlineFlags(cmd) {
		addInlineFlags(fs, &f.inline)
	}
	if cmd == "doctor" {
		fs.BoolVar(&f.json, "json", false, "output JSON")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		printCommandUsage(stderr, cmd)
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if rest := fs.Args(); len(rest) > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments: %s", ErrUsage, strings.Join(rest, " "))
	}
	if f.common.quiet && f.common.verbose {
		return nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}

	return f, nil
}

// isHelp reports whether err is the -h/--help request.
func isHelp(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
