//go:build unix

package single

import (
	"errors"
	"fmt"
	"net"
	"os"

	"github.com/solohq/soloist/internal/logging"
	"golang.org/x/sys/unix"
)

// errAbstractUnsupported reports that the kernel rejected the
// abstract-namespace bind outright. This is the only condition that sends
// acquisition down the filesystem path.
var errAbstractUnsupported = errors.New("abstract socket namespace not supported")

// abstractAddr builds the reserved zero-width-prefix address for name. The
// leading NUL byte asks the kernel for an abstract-namespace binding where
// that exists; elsewhere it names an empty path and the bind call reports
// ENOENT, which is exactly the non-support signal the fallback keys on.
func abstractAddr(name string) *unix.SockaddrUnix {
	return &unix.SockaddrUnix{Name: "\x00" + name}
}

// acquireAbstract attempts the fast path: bind a kernel-namespaced socket
// address that needs no filesystem cleanup. The kernel arbitrates; exactly
// one concurrent bind for a given name succeeds.
func acquireAbstract(log *logging.Logger, name string) (*Handle, error) {
	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, fmt.Errorf("create socket: %w", err)
	}
	unix.CloseOnExec(fd)

	addr := abstractAddr(name)
	switch err := unix.Bind(fd, addr); {
	case err == nil:

	case errors.Is(err, unix.EADDRINUSE):
		// A primary already holds the name; become its client.
		if cerr := unix.Connect(fd, addr); cerr != nil {
			unix.Close(fd)
			return nil, fmt.Errorf("connect to primary at abstract address %q: %w", name, cerr)
		}
		conn, cerr := connFromFd(fd, name)
		if cerr != nil {
			return nil, cerr
		}
		log.Debug("connected to running primary", "transport", "abstract")
		return &Handle{role: Secondary, conn: conn}, nil

	case errors.Is(err, unix.ENOENT):
		unix.Close(fd)
		return nil, errAbstractUnsupported

	default:
		unix.Close(fd)
		return nil, fmt.Errorf("bind abstract address %q: %w", name, err)
	}

	if err := unix.Listen(fd, unix.SOMAXCONN); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("listen on abstract address %q: %w", name, err)
	}
	ln, err := listenerFromFd(fd, name)
	if err != nil {
		return nil, err
	}
	log.Debug("bound abstract coordination socket")
	return &Handle{role: Primary, listener: ln}, nil
}

// dialAbstract connects to the abstract address for name.
func dialAbstract(name string) (net.Conn, error) {
	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, fmt.Errorf("create socket: %w", err)
	}
	unix.CloseOnExec(fd)
	if err := unix.Connect(fd, abstractAddr(name)); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("connect to abstract address %q: %w", name, err)
	}
	return connFromFd(fd, name)
}

// listenerFromFd wraps a bound-and-listening descriptor in a net.Listener.
// The net package duplicates the descriptor, so the original is closed here
// regardless of outcome.
func listenerFromFd(fd int, name string) (net.Listener, error) {
	f := os.NewFile(uintptr(fd), "@"+name)
	defer f.Close()
	ln, err := net.FileListener(f)
	if err != nil {
		return nil, fmt.Errorf("adopt abstract listener for %q: %w", name, err)
	}
	return ln, nil
}

// connFromFd wraps a connected descriptor in a net.Conn, closing the
// original descriptor.
func connFromFd(fd int, name string) (net.Conn, error) {
	f := os.NewFile(uintptr(fd), "@"+name)
	defer f.Close()
	conn, err := net.FileConn(f)
	if err != nil {
		return nil, fmt.Errorf("adopt connection for %q: %w", name, err)
	}
	return conn, nil
}
