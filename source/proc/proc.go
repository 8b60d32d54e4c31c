// Package proc implements a byte source that runs an external command and
// streams its standard output.
package proc

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/google/shlex"

	"github.com/allada/pconcat/source"
)

// DefaultGracePeriod is how long a canceled command gets between SIGTERM
// and SIGKILL.
const DefaultGracePeriod = 5 * time.Second

// Source runs one command and exposes its stdout as a byte stream.
// The command's stderr passes through to the parent's stderr; its stdin is
// attached to the null device.
type Source struct {
	record string
	binary string
	args   []string
	grace  time.Duration
}

// Parse builds a Source from a shell-style command line. Quoting follows
// POSIX shell word-splitting rules; no shell is actually invoked.
func Parse(record string) (source.Source, error) {
	parts, err := shlex.Split(record)
	if err != nil {
		return nil, fmt.Errorf("proc: split command: %w", err)
	}
	if len(parts) == 0 {
		return nil, stderrors.New("proc: empty command")
	}
	return &Source{
		record: record,
		binary: parts[0],
		args:   parts[1:],
		grace:  DefaultGracePeriod,
	}, nil
}

// String returns the original command line.
func (s *Source) String() string { return s.record }

// Open starts the command and returns its stdout stream. The stream's Close
// joins the process and reports a non-zero exit as an error.
//
// If ctx is canceled while the command runs, SIGTERM is sent to the process
// group first, then SIGKILL after the grace period.
func (s *Source) Open(ctx context.Context) (source.Stream, error) {
	c := exec.CommandContext(ctx, s.binary, s.args...) //nolint:gosec // running caller-supplied commands is the purpose of this tool
	c.Stderr = os.Stderr

	stdout, err := c.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("proc: stdout pipe: %w", err)
	}

	// Use a process group so the whole tree is killed on cancellation.
	c.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	c.Cancel = func() error {
		if c.Process == nil {
			return nil
		}
		return syscall.Kill(-c.Process.Pid, syscall.SIGTERM)
	}
	c.WaitDelay = s.grace

	if err := c.Start(); err != nil {
		return nil, fmt.Errorf("proc: start %q: %w", s.binary, err)
	}
	return &stream{cmd: c, stdout: stdout}, nil
}

type stream struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
}

func (st *stream) Read(p []byte) (int, error) {
	return st.stdout.Read(p)
}

// Close joins the process. A non-zero exit status is the source's failure
// outcome.
func (st *stream) Close() error {
	if err := st.cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			return fmt.Errorf("proc: command failed: %w", err)
		}
		return fmt.Errorf("proc: wait: %w", err)
	}
	return nil
}
