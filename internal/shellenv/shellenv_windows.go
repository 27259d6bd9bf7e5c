//go:build windows

package shellenv

import (
	"errors"
	"time"
)

// Capture has no pty to work with on Windows.
func Capture(shell []string, timeout time.Duration) (map[string]string, error) {
	return nil, errors.New("shell environment capture is not supported on this platform")
}
