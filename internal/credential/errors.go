package credential

import (
	"errors"
	"fmt"
)

// ErrorKind classifies resolution failures for batch-level routing.
type ErrorKind string

const (
	// KindCommandFailed covers helper discovery and invocation problems:
	// launch errors, unreadable output, nonzero exits, and protocol
	// grammar violations.
	KindCommandFailed ErrorKind = "command_failed"

	// KindFatal marks an account that is not worth attempting at all
	// (unparsable address). A fatal error aborts the whole batch.
	KindFatal ErrorKind = "fatal"

	// KindAccountNotFound means the helper ran but did not supply a
	// required credential field.
	KindAccountNotFound ErrorKind = "account_not_found"

	// KindUnsupportedKeychain marks a recognized but unimplemented
	// credential backend.
	KindUnsupportedKeychain ErrorKind = "unsupported_keychain"
)

// KeychainError is the typed failure produced by credential resolution.
type KeychainError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *KeychainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *KeychainError) Unwrap() error { return e.Cause }

// CommandFailed builds a KeychainError for a failed or unparsable helper
// invocation. cause may be nil.
func CommandFailed(message string, cause error) *KeychainError {
	return &KeychainError{Kind: KindCommandFailed, Message: message, Cause: cause}
}

// Fatal builds a KeychainError that aborts the whole batch.
func Fatal(message string, cause error) *KeychainError {
	return &KeychainError{Kind: KindFatal, Message: message, Cause: cause}
}

// AccountNotFound builds a KeychainError for a helper response missing a
// required field.
func AccountNotFound(message string) *KeychainError {
	return &KeychainError{Kind: KindAccountNotFound, Message: message}
}

// UnsupportedKeychain builds a KeychainError for an unimplemented backend.
func UnsupportedKeychain(message string) *KeychainError {
	return &KeychainError{Kind: KindUnsupportedKeychain, Message: message}
}

// AsKeychain extracts a KeychainError from err's chain.
func AsKeychain(err error) (*KeychainError, bool) {
	var kerr *KeychainError
	if errors.As(err, &kerr) {
		return kerr, true
	}
	return nil, false
}

// IsFatal reports whether err must abort batch resolution.
func IsFatal(err error) bool {
	kerr, ok := AsKeychain(err)
	return ok && kerr.Kind == KindFatal
}
