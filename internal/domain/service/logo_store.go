// Package service defines infrastructure contracts consumed by the use cases.
package service

import (
	"context"
	"io"
)

// LogoStore persists uploaded logo assets and serves them by public path.
// Keys are derived from content, never from the client-supplied filename, so
// concurrent uploads cannot clobber each other.
type LogoStore interface {
	// Save writes the logo content and returns its public path
	// (e.g. /uploads/3f6b0a... .png). Saving identical content twice is
	// idempotent and yields the same path.
	Save(ctx context.Context, filename string, content io.Reader) (string, error)

	// Delete removes a previously saved logo by its public path. Deleting a
	// path that no longer exists is not an error.
	Delete(ctx context.Context, publicPath string) error
}
