package service

import (
	"context"
	"strings"

	m "github.com/Alan-oliveir/Instalike/src/models"
)

// DescriptionGenerator produces a caption for a post. The real generation
// backend is an external collaborator; the service only persists its output.
type DescriptionGenerator interface {
	Generate(ctx context.Context, post *m.Post, hint string) (string, error)
}

const defaultDescription = "Imagem compartilhada no Instalike"

// StaticGenerator echoes the caller-supplied hint, falling back to a fixed
// caption. It stands in where no generation backend is configured.
type StaticGenerator struct{}

func (StaticGenerator) Generate(ctx context.Context, post *m.Post, hint string) (string, error) {
	if strings.TrimSpace(hint) != "" {
		return hint, nil
	}
	return defaultDescription, nil
}
