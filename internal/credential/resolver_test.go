package credential

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
)

// scriptedRunner answers `git config` lookups and helper invocations with
// canned results while recording every call.
type scriptedRunner struct {
	configValue string
	configErr   error
	helperOut   string
	helperErr   error

	calls  [][]string
	stdins []string
}

func (s *scriptedRunner) Run(_ context.Context, argv []string, stdin []byte) (string, error) {
	s.calls = append(s.calls, argv)
	s.stdins = append(s.stdins, string(stdin))
	if len(argv) >= 2 && argv[0] == "git" && argv[1] == "config" {
		return s.configValue, s.configErr
	}
	return s.helperOut, s.helperErr
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testAccount() Account {
	return Account{Realm: "r", Address: "https://example.org", Username: "bob"}
}

func expectKind(t *testing.T, err error, kind ErrorKind) *KeychainError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected a %s error, got nil", kind)
	}
	kerr, ok := AsKeychain(err)
	if !ok {
		t.Fatalf("expected a KeychainError, got %T: %v", err, err)
	}
	if kerr.Kind != kind {
		t.Fatalf("expected kind %s, got %s (%v)", kind, kerr.Kind, kerr)
	}
	return kerr
}

func TestResolveSuccess(t *testing.T) {
	runner := &scriptedRunner{
		configValue: "store\n",
		helperOut:   "username=bob\npassword=secret\n",
	}
	r := NewResolver(runner, discardLogger())

	cred, err := r.Resolve(context.Background(), testAccount())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	want := Credential{Realm: "r", Host: "example.org", Username: "bob", Password: "secret"}
	if cred != want {
		t.Errorf("expected %+v, got %+v", want, cred)
	}

	if len(runner.calls) != 2 {
		t.Fatalf("expected 2 command invocations, got %d", len(runner.calls))
	}
	if got := strings.Join(runner.calls[0], " "); got != "git config credential.helper" {
		t.Errorf("unexpected config lookup: %q", got)
	}
	if got := strings.Join(runner.calls[1], " "); got != "git-credential-store get" {
		t.Errorf("unexpected helper invocation: %q", got)
	}
	wantBody := "protocol=https\nhost=example.org\nrealm=r\nusername=bob"
	if runner.stdins[1] != wantBody {
		t.Errorf("expected request body %q, got %q", wantBody, runner.stdins[1])
	}
}

func TestResolveOmitsUsernameLineWhenUnset(t *testing.T) {
	runner := &scriptedRunner{
		configValue: "store",
		helperOut:   "username=alice\npassword=secret\n",
	}
	r := NewResolver(runner, discardLogger())

	account := Account{Realm: "r", Address: "https://example.org"}
	if _, err := r.Resolve(context.Background(), account); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	wantBody := "protocol=https\nhost=example.org\nrealm=r"
	if runner.stdins[1] != wantBody {
		t.Errorf("expected request body %q, got %q", wantBody, runner.stdins[1])
	}
}

// A shell-command helper value is passed to the runner as one argv token.
// Nothing splits it or hands it to a shell, so values carrying arguments
// reach the OS as a (likely nonexistent) executable name.
func TestResolveShellCommandHelperIsSingleArgvToken(t *testing.T) {
	runner := &scriptedRunner{
		configValue: "!/usr/local/bin/myhelper --verbose",
		helperOut:   "username=bob\npassword=secret\n",
	}
	r := NewResolver(runner, discardLogger())

	if _, err := r.Resolve(context.Background(), testAccount()); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	helperCall := runner.calls[1]
	if len(helperCall) != 2 || helperCall[1] != "get" {
		t.Fatalf("unexpected helper argv: %v", helperCall)
	}
	if helperCall[0] != "/usr/local/bin/myhelper --verbose" {
		t.Errorf("expected literal shell-command token, got %q", helperCall[0])
	}
}

func TestResolveUnparsableAddressIsFatal(t *testing.T) {
	runner := &scriptedRunner{}
	r := NewResolver(runner, discardLogger())

	_, err := r.Resolve(context.Background(), Account{Realm: "r", Address: ":not-a-url"})
	expectKind(t, err, KindFatal)
	if len(runner.calls) != 0 {
		t.Errorf("expected no command invocations for an unparsable address, got %d", len(runner.calls))
	}
}

func TestResolveConfigLookupFailure(t *testing.T) {
	runner := &scriptedRunner{configErr: CommandFailed("command \"git config credential.helper\" exited with code 1", nil)}
	r := NewResolver(runner, discardLogger())

	_, err := r.Resolve(context.Background(), testAccount())
	expectKind(t, err, KindCommandFailed)
}

func TestResolveConfigValueGrammarFailure(t *testing.T) {
	runner := &scriptedRunner{configValue: "'unterminated"}
	r := NewResolver(runner, discardLogger())

	_, err := r.Resolve(context.Background(), testAccount())
	expectKind(t, err, KindCommandFailed)
}

func TestResolveHelperExitFailure(t *testing.T) {
	runner := &scriptedRunner{
		configValue: "store",
		helperErr:   CommandFailed("command \"git-credential-store get\" exited with code 1", nil),
	}
	r := NewResolver(runner, discardLogger())

	cred, err := r.Resolve(context.Background(), testAccount())
	expectKind(t, err, KindCommandFailed)
	if cred != (Credential{}) {
		t.Errorf("expected zero credential on failure, got %+v", cred)
	}
}

func TestResolveMalformedHelperOutput(t *testing.T) {
	runner := &scriptedRunner{
		configValue: "store",
		helperOut:   "username=bob\ngarbage-line",
	}
	r := NewResolver(runner, discardLogger())

	_, err := r.Resolve(context.Background(), testAccount())
	expectKind(t, err, KindCommandFailed)
}

func TestResolveMissingPassword(t *testing.T) {
	runner := &scriptedRunner{
		configValue: "store",
		helperOut:   "username=bob\n",
	}
	r := NewResolver(runner, discardLogger())

	_, err := r.Resolve(context.Background(), testAccount())
	kerr := expectKind(t, err, KindAccountNotFound)
	if !strings.Contains(kerr.Message, "password") {
		t.Errorf("expected message to mention the missing password, got %q", kerr.Message)
	}
}

func TestResolveMissingUsernameReportedFirst(t *testing.T) {
	runner := &scriptedRunner{
		configValue: "store",
		helperOut:   "", // neither username nor password
	}
	r := NewResolver(runner, discardLogger())

	_, err := r.Resolve(context.Background(), testAccount())
	kerr := expectKind(t, err, KindAccountNotFound)
	if !strings.Contains(kerr.Message, "username") {
		t.Errorf("expected the username absence to be reported first, got %q", kerr.Message)
	}
}

func TestKeychainLookupIsUnsupported(t *testing.T) {
	_, err := KeychainLookup{}.Lookup(testAccount())
	expectKind(t, err, KindUnsupportedKeychain)
}
