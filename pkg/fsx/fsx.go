// Package fsx abstracts the object store holding the original resume PDFs.
// The ranking engine never touches it; only the seeder (writes) and the
// candidate API (presigned reads) do.
package fsx

import (
	"context"
	"time"
)

// FileReader is the minimal read-side capability.
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// URLResolver turns an opaque object key into a retrievable URL.
type URLResolver interface {
	PresignURL(ctx context.Context, path string, ttl time.Duration) (string, error)
}

// FileSystem is the full object-store surface used by the service.
type FileSystem interface {
	FileReader
	URLResolver

	WriteFile(ctx context.Context, path string, data []byte, contentType string) error
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)

	// List returns all object keys under the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}
