package apierror

import (
	"errors"
	"fmt"
)

// HTTPError is a response the server answered with a non-2xx status
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status code: %d, body: %s", e.StatusCode, string(e.Body))
}

// TransportError is a call that never produced an HTTP response
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to send request: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Error carries a classified failure back to the caller
type Error struct {
	Result Result
	Err    error
}

func (e *Error) Error() string {
	if e.Result.Reason != "" {
		return fmt.Sprintf("%s: %s (%s): %v", e.Result.Op, e.Result.Kind, e.Result.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Result.Op, e.Result.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AsResult extracts the classification from err if it holds an *Error
func AsResult(err error) (Result, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Result, true
	}
	return Result{}, false
}

// IsKind reports whether err was classified as kind
func IsKind(err error, kind Kind) bool {
	res, ok := AsResult(err)
	return ok && res.Kind == kind
}
