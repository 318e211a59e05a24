package apierr

import (
	"fmt"

	"github.com/go-faster/errors"
)

// TransportError is an error produced by a failed API call (non-2xx status
// or network failure) for which a user-facing message mapping exists. Has
// two tracks for error information: the user message which is safe to show
// in the console, and the internal error which should be constrained to
// logs.
type TransportError struct {
	Status  int
	UserMsg string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.UserMsg != "" {
		return e.UserMsg
	}

	return fmt.Sprintf("api responded with status %d", e.Status)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// userMessageForStatus is the static mapping from HTTP status to the
// message shown to the analyst. Statuses without an entry are not mapped;
// their original error is surfaced unchanged.
var userMessageForStatus = map[int]string{
	400: "The request was rejected by the review service.",
	401: "Your session is no longer authorized. Sign in again to continue.",
	403: "You do not have access to this review queue.",
	404: "The requested record no longer exists.",
	409: "The record was changed by another analyst. Refresh and try again.",
	429: "The review service is throttling requests. Wait a moment and retry.",
	500: "The review service hit an internal error.",
	502: "The review service is unreachable.",
	503: "The review service is temporarily unavailable.",
	504: "The review service took too long to respond.",
}

// NewTransportError wraps the error for a failed API response. When the
// status has a user-facing mapping a TransportError carrying that message
// is returned; otherwise the original error is returned unchanged.
func NewTransportError(status int, err error) error {
	msg, ok := userMessageForStatus[status]
	if !ok {
		return err
	}

	return &TransportError{
		Status:  status,
		UserMsg: msg,
		Err:     err,
	}
}

// ParseError is an error produced when a 2xx response could not be mapped
// into its view model (unexpected shape, malformed field). The continuation
// token stored for the page is deliberately not rolled back when this is
// raised.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse response while %s: %s", e.Op, e.Err.Error())
	}

	return fmt.Sprintf("failed to parse response while %s", e.Op)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError wraps a mapping failure for the named operation.
func NewParseError(op string, err error) error {
	return &ParseError{
		Op:  op,
		Err: err,
	}
}

// IsParseError reports whether the error chain contains a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsStatusCode checks if the error chain contains a TransportError with the
// passed status code. This is intended to be used in unit tests.
func IsStatusCode(err error, status int) bool {
	var te *TransportError
	return errors.As(err, &te) && te.Status == status
}

// UserMessage returns the user-facing message for the error, falling back
// to the raw error text when the error carries no mapped message.
func UserMessage(err error) string {
	var te *TransportError
	if errors.As(err, &te) && te.UserMsg != "" {
		return te.UserMsg
	}

	return err.Error()
}
