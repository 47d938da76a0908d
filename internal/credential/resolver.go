package credential

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"git.home.luguber.info/inful/gitcreds/internal/logfields"
)

// Resolver resolves a single account against the git credential helper
// configured on the machine.
type Resolver struct {
	runner Runner
	logger *slog.Logger
}

// NewResolver creates a resolver using the given runner. A nil logger
// falls back to slog.Default().
func NewResolver(runner Runner, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{runner: runner, logger: logger}
}

// Resolve walks the helper pipeline for one account. Every step
// short-circuits on its first failure; no partial credential is ever
// returned. The error is always a *KeychainError.
func (r *Resolver) Resolve(ctx context.Context, account Account) (Credential, error) {
	parsed, err := url.Parse(account.Address)
	if err != nil {
		return Credential{}, Fatal(fmt.Sprintf("account address %q is not a valid URL", account.Address), err)
	}

	out, err := r.runner.Run(ctx, []string{"git", "config", "credential.helper"}, nil)
	if err != nil {
		return Credential{}, asCommandFailed("reading credential.helper from git config", err)
	}
	opt, err := ParseConfigOption(strings.TrimSpace(out))
	if err != nil {
		return Credential{}, CommandFailed("parsing credential.helper value", err)
	}

	// A shell-command value is handed to the OS as a single argv token;
	// no shell interprets it. Values with arguments therefore only work
	// when the whole string names an executable.
	helper := opt.Value
	if !opt.IsShellCommand {
		helper = "git-credential-" + opt.Value
	}
	r.logger.Debug("resolved credential helper",
		logfields.Helper(helper),
		logfields.Realm(account.Realm))

	req := Request{
		Protocol: parsed.Scheme,
		Host:     parsed.Host,
		Realm:    account.Realm,
		Username: account.Username,
	}
	out, err = r.runner.Run(ctx, []string{helper, "get"}, req.Body())
	if err != nil {
		return Credential{}, asCommandFailed(fmt.Sprintf("invoking credential helper %q", helper), err)
	}

	fields, err := ParseCredentialLines(out)
	if err != nil {
		return Credential{}, CommandFailed(fmt.Sprintf("parsing output of %q get", helper), err)
	}

	username, ok := fields["username"]
	if !ok {
		return Credential{}, AccountNotFound(
			fmt.Sprintf("helper %q returned no username for realm %q at %s", helper, account.Realm, parsed.Host))
	}
	password, ok := fields["password"]
	if !ok {
		return Credential{}, AccountNotFound(
			fmt.Sprintf("helper %q returned no password for realm %q at %s", helper, account.Realm, parsed.Host))
	}

	return Credential{
		Realm:    account.Realm,
		Host:     parsed.Host,
		Username: username,
		Password: password,
	}, nil
}

// asCommandFailed keeps an existing KeychainError untouched and wraps any
// other error as a command failure.
func asCommandFailed(message string, err error) error {
	if _, ok := AsKeychain(err); ok {
		return err
	}
	return CommandFailed(message, err)
}
