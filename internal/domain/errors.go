package domain

import "errors"

var (
	// ErrInvalidOption is returned when a mutation references an option id that is
	// not offered by its group, or uses the wrong selection mode for the group
	ErrInvalidOption = errors.New("invalid option")

	// ErrNotFound is returned when a lookup references a family, group or option
	// that is absent from the catalog
	ErrNotFound = errors.New("not found in catalog")

	// ErrSelectionDiscarded is returned when a discarded selection is used again
	ErrSelectionDiscarded = errors.New("selection has been discarded")

	// ErrSessionNotFound is returned when a customizer session does not exist or has expired
	ErrSessionNotFound = errors.New("customizer session not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
