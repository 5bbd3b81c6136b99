// Package storage abstracts where attendance selfies end up. The app only
// ever writes evidence, resolves a URL to hand to WhatsApp, and deletes on
// failed uploads, so the interface stays that narrow.
package storage

import (
	"context"
	"io"
	"time"
)

type FileStorage interface {
	// Upload stores a file and returns the file path/key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// GetURL resolves a stored path to a fetchable URL
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}
