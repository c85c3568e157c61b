// Package apperr defines the error taxonomy shared by services and handlers.
// Errors are wrapped with %w and matched with errors.Is; nothing is retried
// or recovered internally.
package apperr

import "errors"

var (
	// ErrValidation marks malformed or missing caller input.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a reference to a record that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized marks a credential mismatch.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrStorage marks a blob store failure.
	ErrStorage = errors.New("blob storage failure")
	// ErrMetadataStore marks a metadata store connectivity or query failure.
	ErrMetadataStore = errors.New("metadata store failure")
)
