package main

import (
	"fmt"
)

// runConfigCmd prints the effective configuration as YAML.
func runConfigCmd(args []string, env *Environment) error {
	flags, err := parseCommandFlags("config", args, env.Stderr)
	if err != nil {
		return err
	}
	params, err := resolveParams(flags, env)
	if err != nil {
		return err
	}

	out, err := params.cfg.Marshal()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(out)
	return err
}
