package credential

import (
	"fmt"
	"strings"
)

// Request describes one git-credential protocol request, sent on the
// helper's stdin when invoking `<helper> get`.
type Request struct {
	Protocol string
	Host     string
	Realm    string
	Username string
}

// Body encodes the request as newline-joined key=value lines in UTF-8.
// The username line is omitted entirely when no username was supplied;
// helpers treat an empty `username=` as an explicit (wrong) value.
func (r Request) Body() []byte {
	lines := []string{
		"protocol=" + r.Protocol,
		"host=" + r.Host,
		"realm=" + r.Realm,
	}
	if r.Username != "" {
		lines = append(lines, "username="+r.Username)
	}
	return []byte(strings.Join(lines, "\n"))
}

// ParseCredentialLines parses the line-oriented key=value output of a
// credential helper into a field map.
//
// Every byte of the input must match the grammar: zero or more lines of
// `<key>=<value>` where the key is one or more ASCII letters and the value
// runs to the end of the line (it may be empty and may contain any
// character, including further '=' signs). Lines end with \r\n, \n, \r or
// end of input. Nothing is trimmed. A later occurrence of a key overwrites
// an earlier one. Empty input yields an empty map.
func ParseCredentialLines(raw string) (map[string]string, error) {
	fields := make(map[string]string)
	for pos := 0; pos < len(raw); {
		line, next := nextLine(raw, pos)
		eq := strings.IndexByte(line, '=')
		if eq <= 0 || !isAlphaKey(line[:eq]) {
			return nil, fmt.Errorf("malformed credential line %q", line)
		}
		fields[line[:eq]] = line[eq+1:]
		pos = next
	}
	return fields, nil
}

// nextLine returns the line starting at pos and the offset just past its
// terminator (\r\n counts as one terminator).
func nextLine(s string, pos int) (string, int) {
	for i := pos; i < len(s); i++ {
		switch s[i] {
		case '\n':
			return s[pos:i], i + 1
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				return s[pos:i], i + 2
			}
			return s[pos:i], i + 1
		}
	}
	return s[pos:], len(s)
}

func isAlphaKey(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
