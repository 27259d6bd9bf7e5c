//go:build unix

// Package sockdir enumerates directories eligible to host the coordination
// socket and lock file, most preferred first. Enumeration is cheap and
// restartable; the only side effect is an access check against each
// candidate, so callers may re-enumerate freely.
package sockdir

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// Candidates returns the ordered sequence of directories to try. Candidates
// that are not writable, readable and searchable by the current user at
// enumeration time are skipped. A directory can still become unusable
// between enumeration and use; callers treat that as a recoverable race.
func Candidates() []string {
	var out []string
	for _, dir := range candidateDirs() {
		if dir == "" {
			continue
		}
		if unix.Access(dir, unix.W_OK|unix.R_OK|unix.X_OK) == nil {
			out = append(out, dir)
		}
	}
	return out
}

// LockPaths joins each candidate directory with the lock file name for the
// given coordination name. The file is hidden with a leading dot only when
// the directory is the user's home, to avoid cluttering it.
func LockPaths(name string) []string {
	home, _ := os.UserHomeDir()
	var out []string
	for _, dir := range Candidates() {
		base := name + ".lock"
		if dir == home {
			base = "." + base
		}
		out = append(out, filepath.Join(dir, base))
	}
	return out
}

// SocketPath derives the rendezvous socket path from a lock path by suffix
// substitution.
func SocketPath(lockPath string) string {
	return strings.TrimSuffix(lockPath, ".lock") + ".sock"
}
