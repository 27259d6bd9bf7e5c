// Package shellenv reads the environment a user's login shell would set up,
// for processes launched outside any shell (desktop launchers, service
// managers).
package shellenv

import (
	"os"
	"strings"
	"time"
)

// DefaultTimeout bounds how long Capture waits for the shell to start,
// run its profile scripts, and print the environment.
const DefaultTimeout = 1500 * time.Millisecond

// ResolvedShell turns a configured shell value into argv form. The value
// "." or the empty string defers to $SHELL, and /bin/sh is the last resort.
func ResolvedShell(configured string) []string {
	if configured == "" || configured == "." {
		if sh := os.Getenv("SHELL"); sh != "" {
			return []string{sh}
		}
		return []string{"/bin/sh"}
	}
	return strings.Fields(configured)
}

// parseEnv extracts KEY=value lines, dropping anything else the shell's
// startup files may have printed.
func parseEnv(raw []byte) map[string]string {
	env := make(map[string]string)
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimRight(line, "\r")
		k, v, ok := strings.Cut(line, "=")
		if ok && k != "" && v != "" {
			env[k] = v
		}
	}
	return env
}
