package credential

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"

	"git.home.luguber.info/inful/gitcreds/internal/logfields"
)

// Runner executes an external command, optionally feeding bytes to its
// stdin, and returns the captured stdout. Implementations report every
// failure mode (launch, read, nonzero exit) as an error; partial output is
// never returned alongside one.
type Runner interface {
	Run(ctx context.Context, argv []string, stdin []byte) (string, error)
}

// ExecRunner runs commands via os/exec.
//
// Stderr is inherited from the parent process so helper diagnostics stay
// visible to the operator without ever perturbing the parsed result. Stdin
// is written by a dedicated goroutine so a helper whose output outgrows the
// pipe buffer before it finishes reading its input cannot deadlock the
// call; a failed stdin write is logged at warn level and does not fail the
// run, since the helper may already have read everything it needs. No
// timeout is enforced: a hung helper blocks the caller until the context
// is canceled.
type ExecRunner struct {
	Logger *slog.Logger
}

func (r *ExecRunner) Run(ctx context.Context, argv []string, stdin []byte) (string, error) {
	if len(argv) == 0 {
		return "", CommandFailed("no command to run", nil)
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stderr = os.Stderr

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	var in io.WriteCloser
	if stdin != nil {
		pipe, err := cmd.StdinPipe()
		if err != nil {
			return "", CommandFailed(fmt.Sprintf("opening stdin pipe for %q", argv[0]), err)
		}
		in = pipe
	}

	if err := cmd.Start(); err != nil {
		if in != nil {
			_ = in.Close()
		}
		return "", CommandFailed(fmt.Sprintf("launching %q", strings.Join(argv, " ")), err)
	}

	var writer sync.WaitGroup
	if in != nil {
		writer.Add(1)
		go func() {
			defer writer.Done()
			defer func() { _ = in.Close() }()
			if _, err := in.Write(stdin); err != nil {
				r.logger().Warn("writing to command stdin failed",
					logfields.Command(argv[0]),
					logfields.Error(err))
			}
		}()
	}

	err := cmd.Wait()
	writer.Wait()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", CommandFailed(
				fmt.Sprintf("command %q exited with code %d", strings.Join(argv, " "), exitErr.ExitCode()), err)
		}
		return "", CommandFailed(fmt.Sprintf("reading output of %q", strings.Join(argv, " ")), err)
	}
	return stdout.String(), nil
}

func (r *ExecRunner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}
