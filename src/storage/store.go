// Package storage maps stored image names to raw bytes. Names are generated
// server-side so that two uploads with the same original filename cannot
// clobber each other; the returned name is what gets embedded in the post.
package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type ImageStore interface {
	// Put writes data under a freshly generated name derived from the
	// suggested one and returns that name.
	Put(ctx context.Context, suggestedName string, data []byte) (string, error)

	// Open returns the stored bytes, or models.ErrNotFound.
	Open(ctx context.Context, storedName string) (io.ReadCloser, error)

	Remove(ctx context.Context, storedName string) error
}

// storedName keeps only the extension of the uploaded filename and prefixes
// it with a random uuid.
func storedName(suggested string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(suggested)))
	return uuid.New().String() + ext
}
