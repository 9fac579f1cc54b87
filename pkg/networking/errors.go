package networking

import "fmt"

// ResolutionError indicates a resolution step found zero or more than one
// candidate for a value the pipeline needs. The message names the flag the
// caller should supply to disambiguate, so callers can print it as-is.
type ResolutionError struct {
	message string
}

func (e *ResolutionError) Error() string {
	return e.message
}

// NewResolutionErrorf constructs a ResolutionError with a formatted message.
func NewResolutionErrorf(format string, args ...interface{}) *ResolutionError {
	return &ResolutionError{
		message: fmt.Sprintf(format, args...),
	}
}
