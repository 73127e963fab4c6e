package types

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies a request failure so handlers can pick the HTTP
// status deliberately instead of collapsing everything to 500.
type ErrorKind int

const (
	ErrMissingField ErrorKind = iota
	ErrUnsupportedFormat
	ErrDecode
	ErrParse
	ErrProvider
	ErrMail
)

func (k ErrorKind) String() string {
	switch k {
	case ErrMissingField:
		return "missing_field"
	case ErrUnsupportedFormat:
		return "unsupported_format"
	case ErrDecode:
		return "decode_error"
	case ErrParse:
		return "parse_error"
	case ErrProvider:
		return "provider_error"
	case ErrMail:
		return "mail_error"
	default:
		return "unknown"
	}
}

// AppError carries the failure kind alongside the user-facing message.
// Message is what the client sees; Err is the underlying cause kept for
// logging.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func NewAppError(kind ErrorKind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error kind to a response status. Unreadable client
// input (bad encoding, malformed document) counts as a client error.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case ErrMissingField, ErrUnsupportedFormat, ErrDecode, ErrParse:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
