package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyRealm      = "realm"
	KeyAddress    = "address"
	KeyHost       = "host"
	KeyHelper     = "helper"
	KeyCommand    = "command"
	KeyExitCode   = "exit_code"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Realm(r string) slog.Attr        { return slog.String(KeyRealm, r) }
func Address(a string) slog.Attr      { return slog.String(KeyAddress, a) }
func Host(h string) slog.Attr         { return slog.String(KeyHost, h) }
func Helper(h string) slog.Attr       { return slog.String(KeyHelper, h) }
func Command(c string) slog.Attr      { return slog.String(KeyCommand, c) }
func ExitCode(code int) slog.Attr     { return slog.Int(KeyExitCode, code) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }

// Error renders err as a string attribute; nil becomes the empty string so
// callers never need a nil guard before logging.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
