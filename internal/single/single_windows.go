//go:build windows

package single

import (
	"errors"

	"github.com/solohq/soloist/internal/logging"
)

// ErrUnsupportedPlatform indicates that single-instance coordination has no
// backend on this platform.
var ErrUnsupportedPlatform = errors.New("single-instance coordination is not supported on this platform")

// Acquire is unsupported on Windows.
func Acquire(log *logging.Logger, id Identity) (*Handle, error) {
	return nil, &AcquisitionError{Name: id.Name(), Err: ErrUnsupportedPlatform}
}

// Probe is unsupported on Windows; it always reports no primary.
func Probe(id Identity) (bool, string) {
	return false, ""
}
