//go:build unix

package shellenv

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/creack/pty"
)

// Capture runs the shell as a login shell, has it print its exported
// environment, and parses the result. The shell runs on a pty so that
// profile scripts which probe for a terminal still execute. The wait is
// bounded: a shell that hangs in its startup files is killed and reported
// rather than blocking the caller.
func Capture(shell []string, timeout time.Duration) (map[string]string, error) {
	if len(shell) == 0 {
		return nil, errors.New("no shell to run")
	}
	argv := append(append([]string{}, shell[1:]...), "-l", "-c", "env")
	cmd := exec.Command(shell[0], argv...)

	f, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("starting %s: %w", shell[0], err)
	}
	defer f.Close()

	// The copy ends when the child's side of the pty closes. Linux reports
	// that as EIO rather than EOF, so the error is not meaningful.
	out := make(chan []byte, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, f)
		out <- buf.Bytes()
	}()

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		raw := <-out
		if err != nil {
			return nil, fmt.Errorf("shell exited abnormally: %w", err)
		}
		return parseEnv(raw), nil
	case <-time.After(timeout):
		_ = cmd.Process.Kill()
		<-done
		return nil, fmt.Errorf("timed out after %s waiting for %s to print its environment", timeout, shell[0])
	}
}
