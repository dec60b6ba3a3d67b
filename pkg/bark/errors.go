package bark

import "fmt"

// ValidationError reports caller-supplied input that violates a
// precondition. It is returned before any network activity, so the
// caller can fix the input and retry safely.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Common validation failures. They are *ValidationError values, so
// errors.Is matches the exact condition and errors.As the kind.
var (
	ErrEmptyKey  = &ValidationError{Reason: "bark key cannot be empty"}
	ErrEmptyBody = &ValidationError{Reason: "notification body cannot be empty"}

	ErrInvalidLevel = &ValidationError{Reason: "invalid level value, must be one of: active, timeSensitive, passive, critical"}
)

// NetworkError reports a transport-level failure: DNS, refused
// connection, timeout. The underlying cause is available via Unwrap.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network error: %v", e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError reports that the Bark server rejected or failed to process
// the request: a non-200 HTTP status, an unparseable body, or a parsed
// body whose code field is not 200.
type ServerError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Message describes the failure; for API-level errors it carries the
	// server's message field.
	Message string

	// RawBody is the response text as received.
	RawBody string

	// Response is the parsed body when parsing succeeded, nil otherwise.
	Response Response
}

func (e *ServerError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status code: %d)", e.Message, e.StatusCode)
	}
	return e.Message
}
