package models

import "errors"

// Sentinel errors shared by repositories, storage and handlers.
// Callers match them with errors.Is.
var (
	// Repository / store lookup misses.
	ErrNotFound = errors.New("not found")

	// Rejected uploads (empty file, over the size policy, not an image).
	ErrValidation = errors.New("validation error")

	// Backing store unreachable or refusing writes.
	ErrStorage = errors.New("storage error")
)
