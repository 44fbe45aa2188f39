package store

import "errors"

var (
	// ErrNotFound is returned when a product or account lookup misses.
	ErrNotFound = errors.New("record not found")

	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateProduct  = errors.New("product ID already exists")
)
