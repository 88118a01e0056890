// Package catalog provides the use cases of the magazine catalog: creating
// authors, magazines and articles, updating magazines, and building reports
// from the derived relationship queries. It wraps the domain registry with
// logging, metrics and tracing.
package catalog

import "errors"

// Sentinel errors for catalog use case operations.
var (
	// ErrAuthorNotFound indicates that no author with the requested name is registered.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrMagazineNotFound indicates that no magazine with the requested name is registered.
	ErrMagazineNotFound = errors.New("magazine not found")
)
