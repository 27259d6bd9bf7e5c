// Package addrspec parses textual endpoint specifications of the form
// "<protocol>:<rest>" into structured endpoints that can be listened on or
// dialed. The same grammar serves both the single-instance coordination
// socket and general listen-address configuration:
//
//	unix:/path/to/socket     filesystem-backed unix socket
//	unix:@name               abstract-namespace unix socket (no filesystem path)
//	tcp:host:port            IPv4 TCP
//	tcp6:host:port           IPv6 TCP (host may contain colons; the port is
//	                         split off at the last one)
package addrspec

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// InvalidSpecError reports a specification string that does not match the
// endpoint grammar. The offending spec is carried for error messages.
type InvalidSpecError struct {
	Spec   string
	Reason string
}

// Error returns the formatted error message.
func (e *InvalidSpecError) Error() string {
	return fmt.Sprintf("invalid address spec %q: %s", e.Spec, e.Reason)
}

// Endpoint is a parsed address specification.
type Endpoint struct {
	// Network is a net package network name: "unix", "tcp4" or "tcp6".
	Network string

	// Path is the unix socket address. Abstract-namespace addresses keep
	// their "@" prefix. Empty for TCP endpoints.
	Path string

	// Host and Port are set for TCP endpoints only.
	Host string
	Port int

	// CleanupPath is the filesystem path that must be removed when the
	// endpoint's listener shuts down. Set only for filesystem-backed unix
	// endpoints; abstract and TCP addresses leave nothing behind.
	CleanupPath string
}

// Parse parses a specification string into an Endpoint. It is pure: no
// filesystem or network access happens until Listen or Dial is called.
func Parse(spec string) (Endpoint, error) {
	protocol, rest, ok := strings.Cut(spec, ":")
	if !ok {
		return Endpoint{}, &InvalidSpecError{Spec: spec, Reason: "missing ':' separator"}
	}

	switch protocol {
	case "unix":
		if rest == "" {
			return Endpoint{}, &InvalidSpecError{Spec: spec, Reason: "empty unix address"}
		}
		if strings.HasPrefix(rest, "@") && len(rest) > 1 {
			return Endpoint{Network: "unix", Path: rest}, nil
		}
		return Endpoint{Network: "unix", Path: rest, CleanupPath: rest}, nil

	case "tcp", "tcp6":
		// Split on the last colon so IPv6 literals with embedded colons
		// keep working for tcp6.
		idx := strings.LastIndex(rest, ":")
		if idx < 0 {
			return Endpoint{}, &InvalidSpecError{Spec: spec, Reason: "missing port"}
		}
		host, portStr := rest[:idx], rest[idx+1:]
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Endpoint{}, &InvalidSpecError{Spec: spec, Reason: fmt.Sprintf("port %q is not a number", portStr)}
		}
		network := "tcp4"
		if protocol == "tcp6" {
			network = "tcp6"
		}
		return Endpoint{Network: network, Host: host, Port: port}, nil

	default:
		return Endpoint{}, &InvalidSpecError{Spec: spec, Reason: fmt.Sprintf("unknown protocol %q", protocol)}
	}
}

// Abstract reports whether the endpoint addresses the kernel's abstract
// socket namespace rather than a filesystem path.
func (e Endpoint) Abstract() bool {
	return e.Network == "unix" && strings.HasPrefix(e.Path, "@")
}

// Addr returns the address string passed to the net package.
func (e Endpoint) Addr() string {
	if e.Network == "unix" {
		return e.Path
	}
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// Listen binds and listens on the endpoint.
func (e Endpoint) Listen() (net.Listener, error) {
	return net.Listen(e.Network, e.Addr())
}

// Dial connects to the endpoint.
func (e Endpoint) Dial() (net.Conn, error) {
	return net.Dial(e.Network, e.Addr())
}
