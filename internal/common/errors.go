package common

import "errors"

// Error kinds. Wrapped errors carry one of these so callers can branch with errors.Is.
var (
	// ErrInvalidInput is a user-correctable request problem (HTTP 400).
	ErrInvalidInput = errors.New("invalid input")
	// ErrUpstream is a failure of the language model, encyclopedia or NLP pipeline (HTTP 500).
	ErrUpstream = errors.New("upstream failure")
	// ErrConfig is a startup problem that prevents the process from serving.
	ErrConfig = errors.New("configuration error")
)

// Error pairs an error kind with a human-readable message and optional cause.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewInputError returns an ErrInvalidInput error with the given message.
func NewInputError(msg string) error {
	return &Error{Kind: ErrInvalidInput, Msg: msg}
}

// NewUpstreamError wraps err as an ErrUpstream failure.
func NewUpstreamError(msg string, err error) error {
	return &Error{Kind: ErrUpstream, Msg: msg, Err: err}
}

// NewConfigError wraps err as an ErrConfig failure.
func NewConfigError(msg string, err error) error {
	return &Error{Kind: ErrConfig, Msg: msg, Err: err}
}
