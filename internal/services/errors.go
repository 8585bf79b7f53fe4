package services

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

func (k Kind) HTTPStatus() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a failure the client is allowed to see. Message is safe to
// return verbatim; Err, when set, is only logged.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string][]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func BadRequest(message string, fields map[string][]string) *Error {
	return &Error{Kind: KindBadRequest, Message: message, Fields: fields}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

const InternalMessage = "Something went wrong on the server"

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: InternalMessage, Err: err}
}

// AsError returns the domain error carried by err, wrapping anything else
// as Internal.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err)
}

var (
	ErrInvalidCredentials = Unauthorized("Invalid email or password")
	ErrInvalidToken       = Unauthorized("Unauthorized, please login")
	ErrAdminRequired      = Unauthorized("Access denied, you need to be admin to get access")
	ErrInvalidRole        = BadRequest("Invalid role", map[string][]string{"role": {"must be one of: user, admin"}})
	ErrPasswordTooLong    = BadRequest("Invalid request", map[string][]string{"password": {"must be at most 72 bytes"}})
	ErrInvalidRating      = BadRequest("Invalid request", map[string][]string{"rating": {"must be between 1 and 5"}})
	ErrEmailTaken         = Conflict("user email already exist")
	ErrUserNotFound       = NotFound("User not found")
	ErrBookExists         = Conflict("Book already exists")
	ErrBookNotFound       = NotFound("book does not exist")
	ErrReviewNotFound     = NotFound("Review not found")
	ErrReviewUpdateDenied = Forbidden("You are not authorized to update this review")
	ErrReviewDeleteDenied = Forbidden("You are not authorized to delete this review")
)
