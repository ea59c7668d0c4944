package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: logokit <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  extract    Extract embedded PNG images into asset files")
	fmt.Fprintln(w, "  inline     Inline the clean SVG logo into index.html")
	fmt.Fprintln(w, "  build      Run inline, then extract")
	fmt.Fprintln(w, "  doctor     Check inputs and referenced files")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'logokit help <command>' for details on a specific command.")
}

// printCommonFlags prints the flags every command accepts.
func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Paths:")
	fmt.Fprintln(w, "  -C, --root <dir>          Project directory (default: .)")
	fmt.Fprintln(w, "      --svg <path>          Logo SVG (default: assets/lysachain-logo-scomposto.svg)")
	fmt.Fprintln(w, "      --html <path>         Page (default: index.html)")
	fmt.Fprintln(w, "      --assets <dir>        Extracted images directory (default: assets)")
	fmt.Fprintln(w, "      --clean-svg <path>    Clean SVG (default: assets/logo-clean.svg)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
	fmt.Fprintln(w, "      --log-format <s>      Log format: text, json")
}

// printInlineFlags prints the page rendering flags.
func printInlineFlags(w io.Writer) {
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --class <s>           Class added to the root <svg> (default: main-logo-svg)")
	fmt.Fprintln(w, "      --template <s>        Page template name or file path (default: index)")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with custom templates/")
	fmt.Fprintln(w)
}

// printCommandUsage prints usage for one command.
func printCommandUsage(w io.Writer, cmd string) {
	switch cmd {
	case "extract":
		fmt.Fprintln(w, "Usage: logokit extract [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Write every base64 PNG embedded in the logo SVG and the page to")
		fmt.Fprintln(w, "<assets>/logo_part_<id>.png and rewrite its href. Missing files are skipped.")
		fmt.Fprintln(w)
		printCommonFlags(w)
	case "inline":
		fmt.Fprintln(w, "Usage: logokit inline [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Strip the XML declaration and comments from the clean SVG, add the")
		fmt.Fprintln(w, "logo class and write the rendered page.")
		fmt.Fprintln(w)
		printInlineFlags(w)
		printCommonFlags(w)
	case "build":
		fmt.Fprintln(w, "Usage: logokit build [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run inline, then extract.")
		fmt.Fprintln(w)
		printInlineFlags(w)
		printCommonFlags(w)
	case "doctor":
		fmt.Fprintln(w, "Usage: logokit doctor [--json] [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Check the configured files and every local file the page references.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "      --json                Output JSON")
		fmt.Fprintln(w)
		printInlineFlags(w)
		printCommonFlags(w)
	case "config":
		fmt.Fprintln(w, "Usage: logokit config [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Print the configuration after applying the config file, LOGOKIT_*")
		fmt.Fprintln(w, "environment variables and flags.")
		fmt.Fprintln(w)
		printInlineFlags(w)
		printCommonFlags(w)
	case "version":
		fmt.Fprintln(w, "Usage: logokit version")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Show version information.")
	case "help":
		fmt.Fprintln(w, "Usage: logokit help [command]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Show help for a command.")
	}
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	if !isCommand(args[0]) {
		fmt.Fprintf(env.Stderr, "%v: %s\n", ErrUnknownCommand, args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}

	printCommandUsage(env.Stdout, args[0])
	return ExitSuccess
}
