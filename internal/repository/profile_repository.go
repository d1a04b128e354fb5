package repository

import (
	"context"

	"github.com/gdugdh24/lifestyle-connect/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id int) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	UpdateTier(ctx context.Context, id int, tier domain.Tier) error
	SetHidden(ctx context.Context, id int, hidden bool) error
	// ListCandidates returns up to limit visible profiles other than excludeID.
	// No other filtering happens server side.
	ListCandidates(ctx context.Context, excludeID int, limit int) ([]*domain.Profile, error)
}
