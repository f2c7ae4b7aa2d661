// Package shell reads command lines, splits them into argv with shell
// quoting rules and dispatches them through the command registry.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/kballard/go-shellquote"

	"treectl/internal/commands"
	"treectl/internal/logger"
	"treectl/internal/session"
)

// CommentPrefix starts a line that is ignored.
const CommentPrefix = "#"

// SplitLine splits one command line into argv. Blank lines and comments
// yield an empty argv.
func SplitLine(line string) ([]string, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, CommentPrefix) {
		return nil, nil
	}
	argv, err := shellquote.Split(trimmed)
	if err != nil {
		return nil, fmt.Errorf("cannot split %q: %w", trimmed, err)
	}
	return argv, nil
}

// ProcessLine executes a single command line. Blank lines and comments are
// no-ops.
func ProcessLine(line string, registry *commands.Registry, sess *session.Session) error {
	argv, err := SplitLine(line)
	if err != nil {
		return err
	}
	if len(argv) == 0 {
		return nil
	}
	return registry.Execute(argv, sess)
}

// Run executes lines from r until EOF, ctx cancellation or a quit request.
// Failing lines are reported on the session's printer and do not stop the
// loop. The returned status is that of the last executed command; blank and
// comment lines leave it unchanged. Cancelling ctx returns immediately, even
// while a read is blocked.
func Run(ctx context.Context, r io.Reader, registry *commands.Registry, sess *session.Session) (int, error) {
	log := logger.NewStyledLogger("Shell")
	status := commands.StatusSuccess

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, readErr := readLines(ctx, r)

	for !sess.AboutToQuit() {
		select {
		case <-ctx.Done():
			return status, ctx.Err()
		case line, ok := <-lines:
			if err := ctx.Err(); err != nil {
				return status, err
			}
			if !ok {
				if err := <-readErr; err != nil {
					return status, fmt.Errorf("failed to read input: %w", err)
				}
				return status, nil
			}

			argv, err := SplitLine(line)
			if err == nil && len(argv) == 0 {
				continue
			}
			if err == nil {
				err = registry.Execute(argv, sess)
			}
			status = commands.ExitStatus(err)
			if err != nil {
				log.Debug("Line failed", "input", line, "error", err)
				sess.Out().Error(err.Error())
			}
		}
	}
	return status, nil
}

// readLines scans r in its own goroutine so a blocked read cannot delay
// cancellation. The error channel receives exactly one value before lines
// is closed.
func readLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- ctx.Err()
				return
			}
		}
		readErr <- scanner.Err()
	}()

	return lines, readErr
}

// RunLines executes each line in order and stops at the first failure.
// It is used for autostart commands from the configuration.
func RunLines(lines []string, registry *commands.Registry, sess *session.Session) error {
	for _, line := range lines {
		if err := ProcessLine(line, registry, sess); err != nil {
			return fmt.Errorf("autostart %q: %w", line, err)
		}
	}
	return nil
}
