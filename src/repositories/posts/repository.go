// Package posts persists feed posts. The Postgres implementation backs the
// server; the in-memory implementation stands in for it in tests.
package posts

import (
	"context"

	m "github.com/Alan-oliveir/Instalike/src/models"
)

type Repository interface {
	// Insert assigns the id and creation time and stores the record.
	Insert(ctx context.Context, imgURL string, descricao string, alt string) (*m.Post, error)

	// GetAll returns every post in insertion order. Display ordering is
	// the caller's responsibility.
	GetAll(ctx context.Context) ([]m.Post, error)

	GetByID(ctx context.Context, id string) (*m.Post, error)

	// UpdateDescription overwrites descricao unconditionally and returns
	// the updated record, or models.ErrNotFound for an unknown id.
	UpdateDescription(ctx context.Context, id string, descricao string) (*m.Post, error)

	// Search returns the posts whose descricao or alt contains lookup,
	// case-insensitively.
	Search(ctx context.Context, lookup string) ([]m.Post, error)
}
