//go:build unix

package single

import (
	"net"

	"github.com/solohq/soloist/internal/sockdir"
)

// Probe reports whether a primary instance is currently reachable for id,
// and the address it answered on, without joining the coordination itself.
// It only ever connects; it takes no locks and binds nothing.
func Probe(id Identity) (bool, string) {
	name := id.Name()
	if conn, err := dialAbstract(name); err == nil {
		conn.Close()
		return true, "@" + name
	}
	for _, lockPath := range sockdir.LockPaths(name) {
		socketPath := sockdir.SocketPath(lockPath)
		if conn, err := net.Dial("unix", socketPath); err == nil {
			conn.Close()
			return true, socketPath
		}
	}
	return false, ""
}
