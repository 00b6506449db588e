// Package apperr holds the error taxonomy shared by services and controllers.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindAuthentication
	KindAuthorization
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindStorage:
		return "storage"
	default:
		return "internal"
	}
}

// Error is a classified error. Msg is safe to return to clients.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches two *Error values by kind and message so that wrapped copies of a
// sentinel still compare equal with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Msg == t.Msg
}

func New(kind Kind, msg string) *Error { return &Error{Kind: kind, Msg: msg} }

func Wrap(kind Kind, msg string, err error) *Error { return &Error{Kind: kind, Msg: msg, Err: err} }

func Validation(msg string) *Error { return New(KindValidation, msg) }

func NotFound(msg string) *Error { return New(KindNotFound, msg) }

func Conflict(msg string) *Error { return New(KindConflict, msg) }

func Storage(msg string, err error) *Error { return Wrap(KindStorage, msg, err) }

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the client-facing message of err. Storage and unclassified
// errors collapse to a generic message.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindStorage && e.Kind != KindInternal {
		return e.Msg
	}
	return "internal server error"
}

// Status maps an error to its HTTP status code.
func Status(err error) int {
	switch KindOf(err) {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

var (
	ErrWeakPassword = Validation("password must be 8 to 72 characters long and contain an uppercase letter, " +
		"a lowercase letter, a digit and a special character (@$!%*?&)")
	ErrMissingUsername    = Validation("username is required")
	ErrInvalidRole        = Validation("role must be admin or user")
	ErrInvalidPokemonID   = Validation("invalid pokemon id")
	ErrDuplicateUser      = Conflict("user already exists")
	ErrAlreadyFavorited   = Conflict("pokemon is already in favorites")
	ErrDuplicatePokemon   = Conflict("pokemon already exists")
	ErrUserNotFound       = NotFound("user not found")
	ErrPokemonNotFound    = NotFound("pokemon not found")
	ErrInvalidCredentials = New(KindAuthentication, "invalid credentials")
	ErrMissingToken       = New(KindAuthentication, "missing token")
	ErrInvalidToken       = New(KindAuthorization, "invalid token")
	ErrForbidden          = New(KindAuthorization, "access denied: administrator rights required")
)
