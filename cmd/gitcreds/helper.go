package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/gitcreds/internal/credential"
	"git.home.luguber.info/inful/gitcreds/internal/gitconfig"
)

// runHelper shows which credential helper is configured: by default via
// `git config credential.helper`, or offline from a config file when
// --gitconfig is given.
func runHelper(logger *slog.Logger) error {
	var raw string
	if CLI.Helper.Gitconfig != "" {
		value, err := gitconfig.Helper(CLI.Helper.Gitconfig)
		if err != nil {
			return err
		}
		raw = value
	} else {
		runner := &credential.ExecRunner{Logger: logger}
		out, err := runner.Run(context.Background(), []string{"git", "config", "credential.helper"}, nil)
		if err != nil {
			return err
		}
		raw = strings.TrimSpace(out)
	}

	opt, err := credential.ParseConfigOption(raw)
	if err != nil {
		return err
	}
	if opt.IsShellCommand {
		fmt.Printf("shell command: %s\n", opt.Value)
	} else {
		fmt.Printf("helper binary: git-credential-%s\n", opt.Value)
	}
	return nil
}
