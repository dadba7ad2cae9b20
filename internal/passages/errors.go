package passages

import "errors"

var (
	// ErrEmptyText indicates document text produced no storable chunks.
	ErrEmptyText = errors.New("no passage content in document text")

	// ErrNotFound indicates no passages exist for the requested documents.
	ErrNotFound = errors.New("passages not found")
)
