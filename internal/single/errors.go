package single

import (
	"errors"
	"fmt"
)

// ErrNoUsableDirectory indicates that every candidate directory was
// exhausted without a successful acquisition.
var ErrNoUsableDirectory = errors.New("no usable directory for coordination socket")

// AcquisitionError is the fatal failure mode of Acquire: the process could
// not determine whether it is primary or secondary and must treat this as a
// startup failure.
type AcquisitionError struct {
	Name string
	Err  error
}

// Error returns the formatted error message.
func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("acquire single instance %q: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *AcquisitionError) Unwrap() error {
	return e.Err
}
