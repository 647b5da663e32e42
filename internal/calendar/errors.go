package calendar

import "errors"

var (
	// ErrInvalidInput reports a missing or malformed field in a request.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOperationFailed reports an update whose target does not exist under the given date.
	ErrOperationFailed = errors.New("operation failed")

	// ErrInternal reports an unexpected failure while handling a request.
	ErrInternal = errors.New("internal error")
)
