package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrWindowClosed          = errors.New("prediction window closed")
	ErrNotFound              = errors.New("resource not found")
	ErrConflict              = errors.New("resource already exists")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
