package repository

import (
	"context"
	"time"

	"github.com/gdugdh24/lifestyle-connect/internal/domain"
)

// PoolCache keeps the candidate pool fetched at the start of a feed session.
// A miss is reported as (nil, false, nil).
type PoolCache interface {
	Get(ctx context.Context, viewerID int) ([]domain.Candidate, bool, error)
	Set(ctx context.Context, viewerID int, pool []domain.Candidate, ttl time.Duration) error
	Delete(ctx context.Context, viewerID int) error
	// DeleteAll ends every feed session, e.g. after a profile is hidden.
	DeleteAll(ctx context.Context) error
}

// PostNotifier is the realtime channel for new community posts.
type PostNotifier interface {
	Publish(ctx context.Context, post *domain.Post) error
	Subscribe(ctx context.Context) (<-chan domain.Post, error)
}
