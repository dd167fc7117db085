package response

import (
	"encoding/json"
	"errors"
	"net/http"
)

// HTTPError is an error that carries its own HTTP status and public reason text.
// Its body is rendered as {"status": Message, "statusCode": Code}.
type HTTPError struct {
	Code    int    // HTTP status code
	Message string // Public reason text, safe to show to clients
	cause   error
}

// NewHTTPError creates an HTTPError. An empty message falls back to the
// standard status text.
func NewHTTPError(code int, message string) HTTPError {
	if message == "" {
		message = http.StatusText(code)
	}
	return HTTPError{Code: code, Message: message}
}

// Error implements the error interface. The cause, if any, is included for logs.
func (e HTTPError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// StatusCode returns the HTTP status code. This method is the marker the
// error builder looks for, so any error type can opt in by implementing it.
func (e HTTPError) StatusCode() int {
	return e.Code
}

// StatusText returns the public reason text.
func (e HTTPError) StatusText() string {
	return e.Message
}

// Unwrap returns the attached cause.
func (e HTTPError) Unwrap() error {
	return e.cause
}

// WithMessage returns a copy of the error with a custom public message.
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

// WithError returns a copy of the error with an attached cause. The cause is
// only visible to server-side logs, never to the response body.
func (e HTTPError) WithError(err error) HTTPError {
	e.cause = err
	return e
}

// Predefined HTTP errors using http.StatusText for default messages.
var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "")
	ErrForbidden           = NewHTTPError(http.StatusForbidden, "")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "")
	ErrMethodNotAllowed    = NewHTTPError(http.StatusMethodNotAllowed, "")
	ErrConflict            = NewHTTPError(http.StatusConflict, "")
	ErrGone                = NewHTTPError(http.StatusGone, "")
	ErrUnprocessableEntity = NewHTTPError(http.StatusUnprocessableEntity, "")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "")
	ErrNotImplemented      = NewHTTPError(http.StatusNotImplemented, "")
	ErrBadGateway          = NewHTTPError(http.StatusBadGateway, "")
	ErrServiceUnavailable  = NewHTTPError(http.StatusServiceUnavailable, "")
	ErrGatewayTimeout      = NewHTTPError(http.StatusGatewayTimeout, "")
)

// statusCoder is the stable marker for errors that know their status. Matching
// by method rather than concrete type keeps detection working across wrapped
// and independently declared error types.
type statusCoder interface {
	StatusCode() int
}

type statusTexter interface {
	StatusText() string
}

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
}

// FromError converts an error into a structured error response. Errors that
// implement StatusCode() keep their status and reason; everything else becomes
// a 500 with the generic status text.
func FromError(err error) *Response {
	return FromErrorWithFallback(err, "")
}

// FromErrorWithFallback is like FromError but uses message as the public text
// for errors that do not carry their own status.
func FromErrorWithFallback(err error, message string) *Response {
	code, text := Classified(err)
	var sc statusCoder
	if message != "" && !errors.As(err, &sc) {
		text = message
	}
	return errorResponse(code, text)
}

// Classified returns the status code and public text FromError would use for err.
func Classified(err error) (int, string) {
	var sc statusCoder
	if err == nil || !errors.As(err, &sc) {
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}

	code := sc.StatusCode()
	if code < 400 || code > 599 {
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}

	text := http.StatusText(code)
	var st statusTexter
	if errors.As(err, &st) && st.StatusText() != "" {
		text = st.StatusText()
	}
	return code, text
}

// FromStatus creates an error response for a status code with its standard text.
func FromStatus(code int) *Response {
	return FromStatusWithMessage(code, "")
}

// FromStatusWithMessage creates an error response for a status code with a custom message.
func FromStatusWithMessage(code int, message string) *Response {
	if message == "" {
		message = http.StatusText(code)
	}
	return errorResponse(code, message)
}

func errorResponse(code int, text string) *Response {
	data, err := json.Marshal(ErrorBody{Status: text, StatusCode: code})
	if err != nil {
		// ErrorBody only holds a string and an int.
		panic(err)
	}
	return BytesWithStatus(data, contentTypeJSON, code)
}

// FromPanic converts a recovered panic value into a response. Errors that
// carry a status keep it; any other value becomes a generic 500.
func FromPanic(v any) *Response {
	if err, ok := v.(error); ok {
		return FromError(err)
	}
	return FromStatus(http.StatusInternalServerError)
}
