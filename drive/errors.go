package drive

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

// StatusError carries the HTTP status returned by the Drive API so callers
// can distinguish an expired session (401) from a permission problem (403).
type StatusError struct {
	StatusCode int
	Op         string
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("drive: %s failed with status %d: %v", e.Op, e.StatusCode, e.Err)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// wrapAPIError normalizes errors from the Drive client into StatusError.
func wrapAPIError(op string, err error) error {
	if err == nil {
		return nil
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &StatusError{StatusCode: gerr.Code, Op: op, Err: err}
	}
	return &StatusError{StatusCode: 0, Op: op, Err: err}
}

// StatusOf returns the upstream HTTP status of err, or 0 when err did not
// originate from the Drive API.
func StatusOf(err error) int {
	var serr *StatusError
	if errors.As(err, &serr) {
		return serr.StatusCode
	}
	return 0
}
