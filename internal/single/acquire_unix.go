//go:build unix

package single

import (
	"errors"

	"github.com/solohq/soloist/internal/logging"
)

// Acquire decides, race-free against any number of concurrently starting
// processes, whether this process is the primary instance for id. It
// returns a Primary handle holding the bound listener, or a Secondary
// handle holding a live connection to the primary.
//
// The abstract-namespace fast path is tried first. Only the kernel's
// definitive "no such address family member" verdict triggers the
// filesystem fallback; any other bind failure is a genuine error and is
// surfaced, so a broken environment is not papered over.
func Acquire(log *logging.Logger, id Identity) (*Handle, error) {
	name := id.Name()
	log = log.WithComponent("single").With("name", name)

	h, err := acquireAbstract(log, name)
	if err == nil {
		return h, nil
	}
	if errors.Is(err, errAbstractUnsupported) {
		log.Debug("abstract socket namespace unavailable, falling back to filesystem coordination")
		return acquireFilesystem(log, name)
	}
	return nil, &AcquisitionError{Name: name, Err: err}
}
