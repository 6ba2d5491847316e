package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation       = errors.New("booker: validation failed")
	ErrAuth             = errors.New("booker: not authorised")
	ErrNotFound         = errors.New("booker: not found")
	ErrConflict         = errors.New("booker: conflict")
	ErrUnexpectedStatus = errors.New("booker: unexpected status")
)

// TransportError means no usable HTTP response was received.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError maps a response status onto the error taxonomy; 2xx yields nil.
func StatusError(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusBadRequest:
		return fmt.Errorf("%w (status %d)", ErrValidation, code)
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%w (status %d)", ErrAuth, code)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w (status %d)", ErrNotFound, code)
	case code == http.StatusConflict:
		return fmt.Errorf("%w (status %d)", ErrConflict, code)
	default:
		return fmt.Errorf("%w %d", ErrUnexpectedStatus, code)
	}
}
