package repository

import (
	"context"

	"github.com/gdugdh24/lifestyle-connect/internal/domain"
)

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	List(ctx context.Context, kind domain.PostKind, limit, offset int) ([]*domain.Post, error)
}
