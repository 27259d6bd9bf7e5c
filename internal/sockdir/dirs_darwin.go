package sockdir

import "os"

// candidateDirs prefers the user cache directory, then the system-wide one.
func candidateDirs() []string {
	var dirs []string
	if cache, err := os.UserCacheDir(); err == nil {
		dirs = append(dirs, cache)
	}
	return append(dirs, "/Library/Caches")
}
