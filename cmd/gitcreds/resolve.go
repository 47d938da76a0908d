package main

import (
	"context"
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/gitcreds/internal/config"
	"git.home.luguber.info/inful/gitcreds/internal/credential"
)

// runResolve loads the accounts file, resolves every account through the
// configured credential helper and prints one tab-separated line per
// resolved credential on stdout. Passwords are masked unless explicitly
// requested.
func runResolve(logger *slog.Logger) error {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return err
	}
	if !CLI.Verbose && cfg.Logging.Level != "" {
		// Config-level verbosity applies only when the flag did not already win.
		logger = reconfigureLogging(cfg.Logging)
	}

	accounts := make([]credential.Account, 0, len(cfg.Accounts))
	for _, a := range cfg.Accounts {
		accounts = append(accounts, credential.Account{
			Realm:    a.Realm,
			Address:  a.URL,
			Username: a.Username,
		})
	}

	runner := &credential.ExecRunner{Logger: logger}
	batch := credential.NewBatchResolver(runner, logger)
	creds, err := batch.ResolveAll(context.Background(), accounts)
	if err != nil {
		return err
	}

	for _, c := range creds {
		password := "********"
		if CLI.Resolve.ShowPasswords {
			password = c.Password
		}
		fmt.Printf("%s\t%s\t%s\t%s\n", c.Realm, c.Host, c.Username, password)
	}
	logger.Info("resolved credentials", slog.Int("count", len(creds)), slog.Int("requested", len(accounts)))
	return nil
}
