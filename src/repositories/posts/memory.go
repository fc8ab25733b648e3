package posts

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	m "github.com/Alan-oliveir/Instalike/src/models"
)

// MemoryRepository keeps posts in insertion order behind a mutex.
type MemoryRepository struct {
	mu    sync.Mutex
	posts []m.Post
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Insert(ctx context.Context, imgURL string, descricao string, alt string) (*m.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post := m.Post{
		ID:        uuid.New().String(),
		ImgURL:    imgURL,
		Descricao: descricao,
		Alt:       alt,
		CreatedAt: time.Now().UTC(),
	}
	r.posts = append(r.posts, post)

	return &post, nil
}

func (r *MemoryRepository) GetAll(ctx context.Context) ([]m.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]m.Post, len(r.posts))
	copy(result, r.posts)
	return result, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*m.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, post := range r.posts {
		if post.ID == id {
			found := post
			return &found, nil
		}
	}
	return nil, m.ErrNotFound
}

func (r *MemoryRepository) UpdateDescription(ctx context.Context, id string, descricao string) (*m.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts[i].Descricao = descricao
			updated := r.posts[i]
			return &updated, nil
		}
	}
	return nil, m.ErrNotFound
}

func (r *MemoryRepository) Search(ctx context.Context, lookup string) ([]m.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	needle := strings.ToLower(lookup)
	var result []m.Post
	for _, post := range r.posts {
		if strings.Contains(strings.ToLower(post.Descricao), needle) ||
			strings.Contains(strings.ToLower(post.Alt), needle) {
			result = append(result, post)
		}
	}
	return result, nil
}
