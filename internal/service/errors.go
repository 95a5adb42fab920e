package service

import "errors"

var (
	// ErrInvalidInput indicates missing or malformed request fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials is returned for both unknown emails and wrong
	// passwords so callers cannot probe for accounts.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrConflict indicates a duplicate email or post title.
	ErrConflict = errors.New("conflict")
	// ErrUnauthorized indicates the operation needs an authenticated caller.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden indicates the caller is authenticated but does not own the resource.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is also used for drafts hidden from non-owners.
	ErrNotFound = errors.New("not found")
)

// Error pairs one of the sentinel kinds above with a caller-facing message.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

var (
	errPostNotFound  = newError(ErrNotFound, "Post not found")
	errTitleTaken    = newError(ErrConflict, "A post with this title already exists")
	errEmailTaken    = newError(ErrConflict, "Email is already in use.")
	errShortPassword = newError(ErrInvalidInput, "Password must contain at least 6 characters.")
)
