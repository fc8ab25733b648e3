package posts

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	m "github.com/Alan-oliveir/Instalike/src/models"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Insert(ctx context.Context, imgURL string, descricao string, alt string) (*m.Post, error) {
	post := m.Post{
		ID:        uuid.New().String(),
		ImgURL:    imgURL,
		Descricao: descricao,
		Alt:       alt,
	}

	query := `INSERT INTO posts (post_id, img_url, descricao, alt)
			  VALUES ($1, $2, $3, $4)
			  RETURNING created_at`

	err := r.pool.QueryRow(ctx, query, post.ID, post.ImgURL, post.Descricao, post.Alt).Scan(&post.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: inserting post: %v", m.ErrStorage, err)
	}

	return &post, nil
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]m.Post, error) {
	query := `SELECT post_id, img_url, descricao, alt, created_at
			  FROM posts
			  ORDER BY created_at, post_id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying posts: %v", m.ErrStorage, err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*m.Post, error) {
	var post m.Post

	query := `SELECT post_id, img_url, descricao, alt, created_at
			  FROM posts WHERE post_id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(&post.ID, &post.ImgURL, &post.Descricao, &post.Alt, &post.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, m.ErrNotFound
		}
		return nil, fmt.Errorf("%w: querying post: %v", m.ErrStorage, err)
	}

	return &post, nil
}

func (r *PostgresRepository) UpdateDescription(ctx context.Context, id string, descricao string) (*m.Post, error) {
	post := m.Post{ID: id, Descricao: descricao}

	query := `UPDATE posts SET descricao = $1
			  WHERE post_id = $2
			  RETURNING img_url, alt, created_at`

	err := r.pool.QueryRow(ctx, query, descricao, id).Scan(&post.ImgURL, &post.Alt, &post.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, m.ErrNotFound
		}
		return nil, fmt.Errorf("%w: updating post: %v", m.ErrStorage, err)
	}

	return &post, nil
}

func (r *PostgresRepository) Search(ctx context.Context, lookup string) ([]m.Post, error) {
	query := `SELECT post_id, img_url, descricao, alt, created_at
			  FROM posts
			  WHERE descricao ILIKE '%' || $1 || '%' OR alt ILIKE '%' || $1 || '%'
			  ORDER BY created_at, post_id`

	rows, err := r.pool.Query(ctx, query, lookup)
	if err != nil {
		return nil, fmt.Errorf("%w: searching posts: %v", m.ErrStorage, err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

func scanPosts(rows pgx.Rows) ([]m.Post, error) {
	var result []m.Post
	for rows.Next() {
		var post m.Post
		err := rows.Scan(&post.ID, &post.ImgURL, &post.Descricao, &post.Alt, &post.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning post: %v", m.ErrStorage, err)
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading posts: %v", m.ErrStorage, err)
	}
	return result, nil
}
