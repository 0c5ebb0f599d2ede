// Package dto defines the typed result pages, media items and errors.
//
// PageSchema describes the decoded page as JSON Schema, for callers that
// persist or forward pages and want to validate them downstream.
package dto

import (
	"errors"
	"fmt"

	"github.com/YspCoder/pixabay/validation"
)

// ErrorKind classifies a failed call.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindValidation marks a *validation.ValidationError.
	KindValidation
	KindUnsupportedParameter
	KindRateLimited
	KindInvalidCredentials
	KindUnexpectedResponse
	// KindTransport covers network failures, timeouts and undecodable bodies.
	KindTransport
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnsupportedParameter:
		return "unsupported_parameter"
	case KindRateLimited:
		return "rate_limited"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindUnexpectedResponse:
		return "unexpected_response"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is; matching is by Kind only.
var (
	ErrUnsupportedParameter = &Error{Kind: KindUnsupportedParameter}
	ErrRateLimited          = &Error{Kind: KindRateLimited}
	ErrInvalidCredentials   = &Error{Kind: KindInvalidCredentials}
	ErrUnexpectedResponse   = &Error{Kind: KindUnexpectedResponse}
	ErrTransport            = &Error{Kind: KindTransport}
)

// Error represents every non-validation failure of a fetch.
type Error struct {
	Kind       ErrorKind         `json:"kind"`
	StatusCode int               `json:"status_code,omitempty"`
	Message    string            `json:"message,omitempty"`
	Param      string            `json:"param,omitempty"`
	Body       string            `json:"body,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
	Err        error             `json:"-"`
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// RateLimit returns the limits reported alongside the error, if any.
func (e *Error) RateLimit() (RateLimit, bool) {
	if e == nil {
		return RateLimit{}, false
	}
	return ParseRateLimit(e.Headers)
}

// KindOf reports the kind of err, or KindUnknown.
func KindOf(err error) ErrorKind {
	var verr *validation.ValidationError
	if errors.As(err, &verr) {
		return KindValidation
	}
	var derr *Error
	if errors.As(err, &derr) {
		return derr.Kind
	}
	return KindUnknown
}
