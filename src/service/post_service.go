// Package service binds the image store and the post repository into the
// two compound operations of the feed: creating a post from an upload and
// enriching an existing post with a generated description.
package service

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	m "github.com/Alan-oliveir/Instalike/src/models"
	"github.com/Alan-oliveir/Instalike/src/repositories/posts"
	"github.com/Alan-oliveir/Instalike/src/storage"
)

// MaxUploadBytes is the upload size policy: anything larger is rejected.
const MaxUploadBytes = 10 << 20

type PostService struct {
	repo      posts.Repository
	store     storage.ImageStore
	generator DescriptionGenerator
}

func NewPostService(repo posts.Repository, store storage.ImageStore, generator DescriptionGenerator) *PostService {
	return &PostService{repo: repo, store: store, generator: generator}
}

// CreatePost validates the upload, stores the image and inserts the post
// record referencing the stored name. If the insert fails after the image
// was stored, the image is removed again so no dangling file is left behind.
func (s *PostService) CreatePost(ctx context.Context, imageBytes []byte, filename string, descricao string, alt string) (*m.Post, error) {
	if err := validateImage(imageBytes); err != nil {
		return nil, err
	}

	imgURL, err := s.store.Put(ctx, filename, imageBytes)
	if err != nil {
		return nil, err
	}

	post, err := s.repo.Insert(ctx, imgURL, descricao, alt)
	if err != nil {
		if removeErr := s.store.Remove(ctx, imgURL); removeErr != nil {
			log.Printf("Unable to remove image %v after failed insert: %v", imgURL, removeErr)
		}
		return nil, err
	}

	return post, nil
}

// EnrichDescription runs the description generator for the post and persists
// whatever text it produces. The record is untouched when generation fails.
func (s *PostService) EnrichDescription(ctx context.Context, postID string, hint string) (*m.Post, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	descricao, err := s.generator.Generate(ctx, post, hint)
	if err != nil {
		return nil, fmt.Errorf("generating description for post %v: %w", postID, err)
	}

	return s.repo.UpdateDescription(ctx, postID, descricao)
}

func validateImage(imageBytes []byte) error {
	if len(imageBytes) == 0 {
		return fmt.Errorf("%w: empty image file", m.ErrValidation)
	}
	if len(imageBytes) > MaxUploadBytes {
		return fmt.Errorf("%w: image exceeds %d bytes", m.ErrValidation, MaxUploadBytes)
	}

	sniffed := http.DetectContentType(imageBytes)
	if !strings.HasPrefix(sniffed, "image/") {
		return fmt.Errorf("%w: unsupported content type %v", m.ErrValidation, sniffed)
	}

	return nil
}
