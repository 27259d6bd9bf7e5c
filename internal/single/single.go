// Package single guarantees that at most one primary process of an
// application runs per effective user, optionally per logical group. Later
// invocations detect the primary and connect to it instead of starting a
// redundant instance.
//
// Mutual exclusion rests entirely on two kernel-atomic operations: binding
// a unix socket address and taking a non-blocking exclusive advisory lock.
// No application-level consensus, polling or timeouts are involved; every
// acquisition is a single decision point that either succeeds or fails
// immediately.
//
// The preferred rendezvous is an abstract-namespace socket, which needs no
// filesystem cleanup. On platforms whose kernel cannot address the abstract
// namespace, coordination falls back to a lock file plus rendezvous socket
// in the first workable candidate directory (see the sockdir package).
package single

import (
	"fmt"
	"os"
)

// Role is the outcome of an acquisition.
type Role int

const (
	// Primary means this process holds the exclusively bound, listening
	// coordination socket for its identity.
	Primary Role = iota

	// Secondary means another process was primary first; the handle holds
	// a live connection to it.
	Secondary
)

// String returns the lowercase role name.
func (r Role) String() string {
	switch r {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// Identity names one coordination domain. Processes with equal identities
// contend for the same primary slot; a differing group qualifier separates
// them into independent domains.
type Identity struct {
	App   string
	UID   int
	Group string
}

// CurrentIdentity builds the identity for the current effective user.
func CurrentIdentity(app, group string) Identity {
	return Identity{App: app, UID: os.Geteuid(), Group: group}
}

// Name returns the coordination name, "<app>-ipc-<uid>" with an optional
// "-<group>" suffix. It doubles as the abstract socket name and as the
// basename of the fallback lock/socket files.
func (id Identity) Name() string {
	name := fmt.Sprintf("%s-ipc-%d", id.App, id.UID)
	if id.Group != "" {
		name += "-" + id.Group
	}
	return name
}
