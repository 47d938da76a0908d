package main

import (
	"fmt"
	"os"

	"git.home.luguber.info/inful/gitcreds/internal/config"
)

// runInit writes a commented starter accounts file.
func runInit() error {
	if _, err := os.Stat(CLI.Config); err == nil && !CLI.Init.Force {
		return fmt.Errorf("configuration file %s already exists (use --force to overwrite)", CLI.Config)
	}
	if err := os.WriteFile(CLI.Config, []byte(config.SampleConfig), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", CLI.Config, err)
	}
	fmt.Printf("Wrote %s\n", CLI.Config)
	return nil
}
