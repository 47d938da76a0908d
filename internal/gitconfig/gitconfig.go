// Package gitconfig reads credential-helper settings from git
// configuration files without invoking git. The resolution pipeline always
// discovers the helper by running `git config credential.helper`; this
// offline reader backs the `gitcreds helper --gitconfig` diagnostic.
package gitconfig

import (
	"errors"
	"fmt"
	"os"

	format "github.com/go-git/go-git/v5/plumbing/format/config"
)

// ErrHelperNotSet reports a git config file without a credential.helper entry.
var ErrHelperNotSet = errors.New("credential.helper is not set")

// Helper decodes the git configuration file at path and returns the raw
// credential.helper value, exactly as git would print it.
func Helper(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening git config: %w", err)
	}
	defer f.Close()

	cfg := format.New()
	if err := format.NewDecoder(f).Decode(cfg); err != nil {
		return "", fmt.Errorf("decoding git config %s: %w", path, err)
	}

	section := cfg.Section("credential")
	if !section.HasOption("helper") {
		return "", ErrHelperNotSet
	}
	return section.Option("helper"), nil
}
