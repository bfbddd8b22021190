package domain

import "errors"

var (
	// ErrNotFound is returned when the target record of an operation does not exist
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when an explicit create collides with an existing record
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidArgument is returned when an identifier or required field is malformed
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrStoreUnavailable is returned when the backing store could not serve the request
	ErrStoreUnavailable = errors.New("store unavailable")
)
