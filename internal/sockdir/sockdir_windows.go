//go:build windows

package sockdir

import "strings"

// Filesystem socket coordination has no Windows backend; enumeration is
// empty so callers fail over to their unsupported-platform paths.

func Candidates() []string { return nil }

func LockPaths(name string) []string { return nil }

// SocketPath derives the rendezvous socket path from a lock path by suffix
// substitution.
func SocketPath(lockPath string) string {
	return strings.TrimSuffix(lockPath, ".lock") + ".sock"
}
