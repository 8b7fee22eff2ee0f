package services

import "errors"

var (
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrFutureDate        = errors.New("cannot log future dates")
	ErrDateTooOld        = errors.New("cannot log dates more than 365 days in the past")
	ErrNotesTooLong      = errors.New("notes must be 500 characters or fewer")
	ErrLogNotFound       = errors.New("log not found")

	// ErrDuplicateConflict is only possible if the storage layer loses its
	// atomic upsert guarantee. Callers may retry once; it must not be
	// retried automatically beyond that.
	ErrDuplicateConflict = errors.New("duplicate log for day")
)
