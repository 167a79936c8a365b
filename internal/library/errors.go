package library

import (
	"errors"
	"strings"

	"librarycatalog/internal/validation"
)

// Error classes. Specific errors below wrap exactly one of them, so callers
// can branch with errors.Is on either level.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

var (
	ErrAuthorNotFound = classified("author not found", ErrNotFound)
	ErrBookNotFound   = classified("book not found", ErrNotFound)
	ErrMemberNotFound = classified("member not found", ErrNotFound)

	ErrAuthorHasBooks  = classified("cannot delete author with associated books", ErrConflict)
	ErrMemberHasBooks  = classified("cannot delete member with borrowed books", ErrConflict)
	ErrBookUnavailable = classified("book is not available", ErrConflict)
	ErrNotBorrower     = classified("book not borrowed by this member", ErrConflict)
	ErrBorrowLimit     = classified("member has reached borrowing limit", ErrConflict)
	ErrStatusLocked    = classified("book status can only change to or from borrowed through borrow and return", ErrConflict)
)

type classifiedError struct {
	msg   string
	class error
}

func classified(msg string, class error) error {
	return &classifiedError{msg: msg, class: class}
}

func (e *classifiedError) Error() string { return e.msg }

func (e *classifiedError) Unwrap() error { return e.class }

// ValidationError lists every field rejected by a create or update call.
type ValidationError struct {
	Fields []validation.FieldError
}

func newValidationError(fields ...validation.FieldError) error {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func isDomainError(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict)
}
