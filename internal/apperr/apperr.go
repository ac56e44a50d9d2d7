// Package apperr defines the closed set of application error kinds that handlers
// translate to HTTP statuses.
package apperr

import "errors"

// Kind classifies an application error.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindUnauthenticated
	KindUnauthorized
	KindInvalidState
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindUnauthorized:
		return "unauthorized"
	case KindInvalidState:
		return "invalid_state"
	default:
		return "unknown"
	}
}

// Error is a domain error. Domain names the vertical (member, post, ...),
// Code is the machine-readable code returned to clients.
type Error struct {
	Kind    Kind
	Domain  string
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Domain + ": " + e.Message
}

func Validation(domain, code, message string) *Error {
	return &Error{Kind: KindValidation, Domain: domain, Code: code, Message: message}
}

func NotFound(domain, code, message string) *Error {
	return &Error{Kind: KindNotFound, Domain: domain, Code: code, Message: message}
}

func Unauthenticated(domain, code, message string) *Error {
	return &Error{Kind: KindUnauthenticated, Domain: domain, Code: code, Message: message}
}

func Unauthorized(domain, code, message string) *Error {
	return &Error{Kind: KindUnauthorized, Domain: domain, Code: code, Message: message}
}

func InvalidState(domain, code, message string) *Error {
	return &Error{Kind: KindInvalidState, Domain: domain, Code: code, Message: message}
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err carries an *Error of kind k.
func IsKind(err error, k Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == k
}
