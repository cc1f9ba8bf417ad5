package services

import (
	"errors"
	"net/http"
)

// Kind classifies a service failure. Each kind maps to one HTTP status.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindAuth
)

func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Error is a failure whose message is safe to return to the caller.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrMissingFields         = &Error{Kind: KindValidation, Message: "Missing required fields"}
	ErrInvalidGender         = &Error{Kind: KindValidation, Message: "Invalid gender"}
	ErrInvalidRole           = &Error{Kind: KindValidation, Message: "Invalid role"}
	ErrDuplicateEmail        = &Error{Kind: KindConflict, Message: "Email already exists"}
	ErrPasswordTooLong       = &Error{Kind: KindValidation, Message: "Password too long"}
	ErrMissingLawyerFields   = &Error{Kind: KindValidation, Message: "Missing lawyer fields"}
	ErrDuplicateBarNumber    = &Error{Kind: KindConflict, Message: "Bar number already exists"}
	ErrMissingCredentials    = &Error{Kind: KindValidation, Message: "Missing email or password"}
	ErrInvalidCredentials    = &Error{Kind: KindAuth, Message: "Invalid credentials"}
	ErrMissingSpecialization = &Error{Kind: KindValidation, Message: "Missing specialization"}
	ErrMissingRateFields     = &Error{Kind: KindValidation, Message: "Missing fields"}
	ErrInvalidRating         = &Error{Kind: KindValidation, Message: "Rating must be between 1 and 5"}
	ErrMissingUserID         = &Error{Kind: KindValidation, Message: "Missing user_id"}
	ErrLawyerNotFound        = &Error{Kind: KindNotFound, Message: "Lawyer not found"}
	ErrMissingCaseFields     = &Error{Kind: KindValidation, Message: "Missing fields"}
)

func invalidField(field string) *Error {
	return &Error{Kind: KindValidation, Message: "Invalid " + field}
}

// KindOf reports the kind of err. Errors that are not *Error are internal.
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}
