package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/gitcreds/internal/config"
	"git.home.luguber.info/inful/gitcreds/internal/observability"
)

var CLI struct {
	Config    string `short:"c" help:"Accounts configuration file path" default:"gitcreds.yaml"`
	Verbose   bool   `short:"v" help:"Enable verbose logging"`
	LogFormat string `help:"Log output format (text or json)" default:"text"`

	Resolve struct {
		ShowPasswords bool `help:"Print resolved passwords instead of masking them"`
	} `cmd:"" help:"Resolve credentials for all configured accounts"`

	Helper struct {
		Gitconfig string `help:"Read the helper from a git config file instead of invoking git"`
	} `cmd:"" help:"Show the configured git credential helper"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new accounts configuration file"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := observability.Setup(logLevel, CLI.LogFormat)

	switch ctx.Command() {
	case "resolve":
		if err := runResolve(logger); err != nil {
			slog.Error("Credential resolution failed", "error", err)
			os.Exit(1)
		}
	case "helper":
		if err := runHelper(logger); err != nil {
			slog.Error("Helper inspection failed", "error", err)
			os.Exit(1)
		}
	case "init":
		if err := runInit(); err != nil {
			slog.Error("Initialization failed", "error", err)
			os.Exit(1)
		}
	default:
		slog.Error("Unknown command", "command", ctx.Command())
		os.Exit(1)
	}
}

// reconfigureLogging reinstalls the default logger from file configuration.
func reconfigureLogging(lc config.LoggingConfig) *slog.Logger {
	return observability.Setup(observability.ParseLevel(lc.Level), lc.Format)
}
