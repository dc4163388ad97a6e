package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "title", "error": "must not exceed 255 characters" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the error type returned by handlers and services.
//
// It implements `error` and is serialized as-is by the global error handler:
//   - Code: machine-friendly error code (e.g. "SWEET_NOT_FOUND").
//   - Message: human-friendly message, serialized as "msg".
//   - Status: HTTP status code.
//   - Override: the message is safe to show to end users verbatim.
//   - Errors: optional per-field errors.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"msg"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
// It does not compare Code or Status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
