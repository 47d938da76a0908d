// Package credential resolves repository publish credentials by delegating
// to the git credential helper configured on the machine.
//
// Resolution for one account walks the full helper pipeline: discover the
// configured helper via `git config credential.helper`, parse the value
// (helper-binary suffix or inline shell command), send a protocol request to
// `<helper> get` on stdin, and parse the line-oriented key=value response
// into a username/password pair. Failures are reported as typed
// KeychainError values so the batch layer can decide whether to skip the
// account or abort the run.
package credential
