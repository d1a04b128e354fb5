package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/gdugdh24/lifestyle-connect/internal/domain"
	"github.com/gdugdh24/lifestyle-connect/internal/matching"
	"github.com/gdugdh24/lifestyle-connect/internal/repository"
	"go.uber.org/zap"
)

type FeedUseCase struct {
	profileRepo repository.ProfileRepository
	poolCache   repository.PoolCache
	poolLimit   int
	sessionTTL  time.Duration
	logger      *zap.Logger
}

func NewFeedUseCase(
	profileRepo repository.ProfileRepository,
	poolCache repository.PoolCache,
	poolLimit int,
	sessionTTL time.Duration,
	logger *zap.Logger,
) *FeedUseCase {
	return &FeedUseCase{
		profileRepo: profileRepo,
		poolCache:   poolCache,
		poolLimit:   poolLimit,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

// FeedResponse is the rendered feed page
type FeedResponse struct {
	Candidates   []domain.Candidate  `json:"candidates"`
	Entitlements domain.Entitlements `json:"entitlements"`
	Locks        []matching.Outcome  `json:"locks"`
	State        matching.UIState    `json:"state"`
	Tier         string              `json:"tier"`
	Residency    domain.Residency    `json:"residency"`
}

// GetFeed returns the candidates visible to the viewer under state
func (uc *FeedUseCase) GetFeed(ctx context.Context, viewerID int, state matching.UIState) (*FeedResponse, error) {
	profile, err := uc.profileRepo.GetByID(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get viewer profile: %w", err)
	}
	viewer := domain.NewViewer(profile)

	pool, err := uc.pool(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	locks := matching.Locks(viewer)
	if locks == nil {
		locks = []matching.Outcome{}
	}

	return &FeedResponse{
		Candidates:   matching.SelectVisibleCandidates(viewer, pool, state),
		Entitlements: domain.DeriveEntitlements(viewer),
		Locks:        locks,
		State:        state,
		Tier:         viewer.Tier.String(),
		Residency:    viewer.Residency(),
	}, nil
}

// ResetSession drops the cached pool so the next feed request fetches a fresh one
func (uc *FeedUseCase) ResetSession(ctx context.Context, viewerID int) error {
	if uc.poolCache == nil {
		return nil
	}
	if err := uc.poolCache.Delete(ctx, viewerID); err != nil {
		return fmt.Errorf("failed to reset feed session: %w", err)
	}
	return nil
}

// pool returns the session's candidate pool, fetching it once per session.
// Cache failures degrade to a direct fetch.
func (uc *FeedUseCase) pool(ctx context.Context, viewerID int) ([]domain.Candidate, error) {
	if uc.poolCache != nil {
		pool, ok, err := uc.poolCache.Get(ctx, viewerID)
		if err != nil {
			uc.logger.Warn("feed pool cache read failed", zap.Int("viewer_id", viewerID), zap.Error(err))
		} else if ok {
			return pool, nil
		}
	}

	profiles, err := uc.profileRepo.ListCandidates(ctx, viewerID, uc.poolLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate pool: %w", err)
	}

	pool := make([]domain.Candidate, 0, len(profiles))
	for _, p := range profiles {
		pool = append(pool, domain.NewCandidate(p))
	}

	if uc.poolCache != nil {
		if err := uc.poolCache.Set(ctx, viewerID, pool, uc.sessionTTL); err != nil {
			uc.logger.Warn("feed pool cache write failed", zap.Int("viewer_id", viewerID), zap.Error(err))
		}
	}

	uc.logger.Debug("fetched candidate pool", zap.Int("viewer_id", viewerID), zap.Int("size", len(pool)))
	return pool, nil
}
