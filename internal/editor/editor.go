// Package editor picks the text editor to launch for the current user.
package editor

import (
	"os"
	"os/exec"
	"strings"
	"sync"
)

// candidates are probed in order when neither VISUAL nor EDITOR names a
// runnable command.
var candidates = []string{"vim", "nvim", "vi", "emacs", "kak", "micro", "nano", "vis"}

var (
	resolveOnce sync.Once
	resolved    []string
)

// Resolve returns the editor command split into argv form. VISUAL wins over
// EDITOR; either may carry arguments ("code --wait"). A candidate counts only
// if its executable is on PATH. When nothing resolves the fallback is vim,
// whether or not it exists, so the caller gets a sensible error from exec.
// The result is computed once per process.
func Resolve() []string {
	resolveOnce.Do(func() {
		resolved = resolve(os.Getenv("VISUAL"), os.Getenv("EDITOR"))
	})
	return resolved
}

func resolve(visual, editorEnv string) []string {
	for _, spec := range append([]string{visual, editorEnv}, candidates...) {
		argv := strings.Fields(spec)
		if len(argv) == 0 {
			continue
		}
		if _, err := exec.LookPath(argv[0]); err == nil {
			return argv
		}
	}
	return []string{"vim"}
}
