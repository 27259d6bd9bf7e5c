package single

import (
	"net"
	"os"
	"sync"
)

// Handle owns the live coordination socket: the bound listener when this
// process is primary, the connection to the primary otherwise. A filesystem
// primary additionally owns the lock file descriptor and the socket path.
//
// The caller must keep the handle referenced for the life of the process
// and release it exactly once on the way out; nothing else may close the
// underlying socket.
type Handle struct {
	role        Role
	listener    net.Listener
	conn        net.Conn
	lockFile    *os.File
	cleanupPath string

	releaseOnce sync.Once
}

// Role reports whether this process is primary or secondary.
func (h *Handle) Role() Role { return h.role }

// Listener returns the bound listening socket. Nil unless primary.
func (h *Handle) Listener() net.Listener { return h.listener }

// Conn returns the connection to the primary. Nil unless secondary.
func (h *Handle) Conn() net.Conn { return h.conn }

// CleanupPath returns the socket path Release will remove, or "" when the
// handle left nothing on the filesystem.
func (h *Handle) CleanupPath() string { return h.cleanupPath }

// Release closes the held socket and removes the socket path this process
// created as primary. It is idempotent and never fails during teardown:
// already-closed descriptors and already-removed paths are not errors. The
// lock file path itself is left in place; closing its descriptor drops the
// advisory lock, and unlinking it could race a newer primary's lock file.
func (h *Handle) Release() {
	h.releaseOnce.Do(func() {
		if h.listener != nil {
			if ul, ok := h.listener.(*net.UnixListener); ok {
				// Removal happens explicitly below so a double unlink
				// cannot occur.
				ul.SetUnlinkOnClose(false)
			}
			_ = h.listener.Close()
		}
		if h.conn != nil {
			_ = h.conn.Close()
		}
		if h.cleanupPath != "" {
			// The path may already be gone; teardown stays silent.
			_ = os.Remove(h.cleanupPath)
		}
		if h.lockFile != nil {
			_ = h.lockFile.Close()
		}
	})
}
