//go:build unix

package single

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"syscall"

	"github.com/solohq/soloist/internal/logging"
	"github.com/solohq/soloist/internal/sockdir"
	"golang.org/x/sys/unix"
)

// errDirUnusable marks a candidate directory that stopped being usable
// between enumeration and use. Recoverable: the next candidate is tried.
var errDirUnusable = errors.New("candidate directory unusable")

// acquireFilesystem coordinates through an advisory lock file plus a
// rendezvous socket when abstract addressing is unavailable. Candidate
// directories are tried in enumeration order; because every process
// enumerates the same order, the first directory whose lock is held decides
// the coordination for the whole identity.
func acquireFilesystem(log *logging.Logger, name string) (*Handle, error) {
	lockPaths := sockdir.LockPaths(name)
	if len(lockPaths) == 0 {
		return nil, &AcquisitionError{Name: name, Err: ErrNoUsableDirectory}
	}

	var dirErrs []error
	for _, lockPath := range lockPaths {
		h, err := acquireAt(log, lockPath)
		if err != nil {
			// Only a directory that raced away between enumeration and
			// use moves acquisition on to the next candidate. Any failure
			// after the lock decision is fatal: the first directory whose
			// lock is held decides the coordination for the whole
			// identity, and retrying elsewhere could elect a second
			// primary.
			if errors.Is(err, errDirUnusable) {
				log.Debug("candidate directory unusable", "lock", lockPath, "error", err)
				dirErrs = append(dirErrs, err)
				continue
			}
			return nil, &AcquisitionError{Name: name, Err: err}
		}
		return h, nil
	}
	return nil, &AcquisitionError{Name: name, Err: fmt.Errorf("%w: %w", ErrNoUsableDirectory, errors.Join(dirErrs...))}
}

// acquireAt runs the lock-then-bind sequence against one candidate
// directory's lock path.
func acquireAt(log *logging.Logger, lockPath string) (*Handle, error) {
	socketPath := sockdir.SocketPath(lockPath)

	lockFile, err := os.OpenFile(lockPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		// Permission or path trouble before any lock decision was made.
		return nil, fmt.Errorf("%w: open lock file %s: %w", errDirUnusable, lockPath, err)
	}
	unix.CloseOnExec(int(lockFile.Fd()))

	switch err := unix.Flock(int(lockFile.Fd()), unix.LOCK_EX|unix.LOCK_NB); {
	case err == nil:

	case errors.Is(err, unix.EAGAIN), errors.Is(err, unix.EACCES):
		// A live primary holds the lock. Its socket is authoritative for
		// the whole identity, so this is not retried against further
		// candidate directories.
		lockFile.Close()
		conn, derr := net.Dial("unix", socketPath)
		if derr != nil {
			return nil, fmt.Errorf("connect to primary at %s: %w", socketPath, derr)
		}
		log.Debug("connected to running primary", "transport", "socket", "socket", socketPath)
		return &Handle{role: Secondary, conn: conn}, nil

	default:
		lockFile.Close()
		return nil, fmt.Errorf("lock %s: %w", lockPath, err)
	}

	ln, err := listenAt(socketPath)
	if err != nil {
		lockFile.Close()
		return nil, err
	}
	log.Debug("bound coordination socket", "socket", socketPath, "lock", lockPath)
	return &Handle{role: Primary, listener: ln, lockFile: lockFile, cleanupPath: socketPath}, nil
}

// listenAt binds the rendezvous socket, replacing at most one stale socket
// left behind by a crashed prior primary. Holding the advisory lock proves
// nobody is listening, so an existing path at this point is stale by
// definition.
func listenAt(socketPath string) (net.Listener, error) {
	ln, err := net.Listen("unix", socketPath)
	if err == nil {
		return ln, nil
	}
	if !errors.Is(err, syscall.EADDRINUSE) && !errors.Is(err, fs.ErrExist) {
		return nil, fmt.Errorf("bind %s: %w", socketPath, err)
	}

	if rmErr := os.Remove(socketPath); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
		return nil, fmt.Errorf("remove stale socket %s: %w", socketPath, rmErr)
	}
	ln, err = net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("bind %s after stale socket removal: %w", socketPath, err)
	}
	return ln, nil
}
