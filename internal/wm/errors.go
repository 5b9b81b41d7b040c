package wm

import "errors"

var (
	// ErrWindowNotFound is returned when no live window has the requested title.
	ErrWindowNotFound = errors.New("window not found")
	// ErrDuplicateWindow is returned when a title is already registered to a live window.
	ErrDuplicateWindow = errors.New("window already exists")
	// ErrEmptyTitle is returned for operations that require a non-empty title.
	ErrEmptyTitle = errors.New("empty title")
	// ErrDuplicateProvider is returned when a title already has a content provider.
	ErrDuplicateProvider = errors.New("provider already registered")
	// ErrMissingProvider is returned by Providers.Verify for titles without a provider.
	ErrMissingProvider = errors.New("no provider registered")
)
