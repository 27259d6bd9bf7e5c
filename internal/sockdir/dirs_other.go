//go:build unix && !darwin

package sockdir

import "os"

// candidateDirs prefers the system temporary directory, then the user's home.
func candidateDirs() []string {
	dirs := []string{os.TempDir()}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}
