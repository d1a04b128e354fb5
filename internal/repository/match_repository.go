package repository

import (
	"context"

	"github.com/gdugdh24/lifestyle-connect/internal/domain"
)

type SwipeRepository interface {
	Create(ctx context.Context, swipe *domain.Swipe) error
	GetByUsers(ctx context.Context, swiperID, swipedID int) (*domain.Swipe, error)
	CheckMutualLike(ctx context.Context, user1ID, user2ID int) (bool, error)
}

type MatchRepository interface {
	Create(ctx context.Context, match *domain.Match) error
	GetByUsers(ctx context.Context, user1ID, user2ID int) (*domain.Match, error)
	GetUserMatches(ctx context.Context, userID int, limit, offset int) ([]*domain.Match, error)
}
