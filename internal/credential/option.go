package credential

import (
	"fmt"
	"strings"
)

// ConfigOption is one parsed git configuration value. A leading "!" marks
// the value as an inline shell command instead of a helper binary suffix.
type ConfigOption struct {
	Value          string
	IsShellCommand bool
}

// ParseConfigOption parses a raw git configuration value as printed by
// `git config credential.helper`.
//
// The value may start with "!" (shell command marker) and the remainder is
// either a single- or double-quoted string or the rest of the line taken
// verbatim. Quote delimiters are stripped; escaped characters inside a
// quoted value are preserved verbatim, and only the same quote character
// that opened the value can close it. Whitespace around tokens is
// insignificant, whitespace inside quotes is kept. Trailing input after a
// closing quote is ignored.
func ParseConfigOption(raw string) (ConfigOption, error) {
	s := strings.TrimSpace(raw)

	var opt ConfigOption
	if strings.HasPrefix(s, "!") {
		opt.IsShellCommand = true
		s = strings.TrimSpace(s[1:])
	}

	if len(s) > 0 && (s[0] == '\'' || s[0] == '"') {
		value, err := parseQuoted(s, s[0])
		if err != nil {
			return ConfigOption{}, err
		}
		opt.Value = value
		return opt, nil
	}

	opt.Value = s
	return opt, nil
}

// parseQuoted consumes a quoted value starting at s[0] and returns its
// interior. Backslash escapes are carried through untouched so the shell
// that eventually interprets the command sees them unchanged.
func parseQuoted(s string, quote byte) (string, error) {
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			b.WriteByte(c)
			i++
			b.WriteByte(s[i])
		case c == quote:
			return b.String(), nil
		default:
			b.WriteByte(c)
		}
	}
	return "", fmt.Errorf("unterminated %c-quoted configuration value", quote)
}
