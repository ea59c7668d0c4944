package main

import (
	"context"
	"fmt"

	"github.com/lysachain/logokit"
)

// runInlineCmd renders the clean SVG into the page.
func runInlineCmd(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseCommandFlags("inline", args, env.Stderr)
	if err != nil {
		return err
	}
	params, err := resolveParams(flags, env)
	if err != nil {
		return err
	}
	return runInline(ctx, params, env)
}

// runInline runs the inliner and prints the written page.
func runInline(ctx context.Context, params *commandParams, env *Environment) error {
	in, err := logokit.NewInliner(libraryOptions(params)...)
	if err != nil {
		return err
	}

	report, err := in.Run(ctx)
	if err != nil {
		return fmt.Errorf("inlining SVG: %w", err)
	}

	if !params.quiet {
		fmt.Fprintf(env.Stdout, "Created %s from %s\n", report.Output, report.Source)
	}
	return nil
}

// runBuildCmd inlines the clean SVG, then extracts embedded images from the
// result and the logo SVG.
func runBuildCmd(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseCommandFlags("build", args, env.Stderr)
	if err != nil {
		return err
	}
	params, err := resolveParams(flags, env)
	if err != nil {
		return err
	}

	if err := runInline(ctx, params, env); err != nil {
		return err
	}
	return runExtract(ctx, params, env)
}
