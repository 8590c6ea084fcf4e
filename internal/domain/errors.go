package domain

import "errors"

var (
	// ErrActivityNotFound is returned when the named activity is not in the registry.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrAlreadyRegistered is returned when the email is already on the roster.
	ErrAlreadyRegistered = errors.New("student already signed up for this activity")

	// ErrNotRegistered is returned when the email is not on the roster.
	ErrNotRegistered = errors.New("student not signed up for this activity")

	ErrInvalidInput = errors.New("invalid input")
)
