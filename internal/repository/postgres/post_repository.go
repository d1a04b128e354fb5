package postgres

import (
	"context"

	"github.com/gdugdh24/lifestyle-connect/internal/domain"
	"github.com/gdugdh24/lifestyle-connect/internal/repository"
	"github.com/jmoiron/sqlx"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) repository.PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO community_posts (author_id, kind, body)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query, post.AuthorID, post.Kind, post.Body).
		Scan(&post.ID, &post.CreatedAt)
}

func (r *postRepository) List(ctx context.Context, kind domain.PostKind, limit, offset int) ([]*domain.Post, error) {
	posts := []*domain.Post{}
	query := `
		SELECT id, author_id, kind, body, created_at
		FROM community_posts
		WHERE kind = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &posts, query, kind, limit, offset)
	return posts, err
}
