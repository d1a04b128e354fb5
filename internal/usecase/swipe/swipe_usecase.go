package swipe

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdugdh24/lifestyle-connect/internal/domain"
	"github.com/gdugdh24/lifestyle-connect/internal/matching"
	"github.com/gdugdh24/lifestyle-connect/internal/repository"
	"go.uber.org/zap"
)

type SwipeUseCase struct {
	swipeRepo   repository.SwipeRepository
	matchRepo   repository.MatchRepository
	profileRepo repository.ProfileRepository
	logger      *zap.Logger
}

func NewSwipeUseCase(
	swipeRepo repository.SwipeRepository,
	matchRepo repository.MatchRepository,
	profileRepo repository.ProfileRepository,
	logger *zap.Logger,
) *SwipeUseCase {
	return &SwipeUseCase{
		swipeRepo:   swipeRepo,
		matchRepo:   matchRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// SwipeRequest represents a swipe action. State is the feed selection the
// candidate was shown under.
type SwipeRequest struct {
	SwipedUserID int              `json:"swiped_user_id" binding:"required"`
	IsLike       bool             `json:"is_like"`
	State        matching.UIState `json:"state"`
}

// SwipeResponse represents swipe result
type SwipeResponse struct {
	IsMatch     bool              `json:"is_match"`
	Swipe       *domain.Swipe     `json:"swipe,omitempty"`
	Match       *domain.Match     `json:"match,omitempty"`
	MatchedUser *domain.Candidate `json:"matched_user,omitempty"`
}

// CreateSwipe records a swipe on a candidate the swiper is allowed to see and
// creates a match on a mutual like.
func (uc *SwipeUseCase) CreateSwipe(ctx context.Context, swiperID int, req *SwipeRequest) (*SwipeResponse, error) {
	if swiperID == req.SwipedUserID {
		return nil, domain.ErrCannotSwipeSelf
	}

	existing, err := uc.swipeRepo.GetByUsers(ctx, swiperID, req.SwipedUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check swipe: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrSwipeAlreadyExists
	}

	swiperProfile, err := uc.profileRepo.GetByID(ctx, swiperID)
	if err != nil {
		return nil, fmt.Errorf("failed to get swiper profile: %w", err)
	}
	targetProfile, err := uc.profileRepo.GetByID(ctx, req.SwipedUserID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, domain.ErrCandidateNotVisible
		}
		return nil, fmt.Errorf("failed to get swiped profile: %w", err)
	}

	viewer := domain.NewViewer(swiperProfile)
	target := domain.NewCandidate(targetProfile)
	if len(matching.SelectVisibleCandidates(viewer, []domain.Candidate{target}, req.State)) == 0 {
		return nil, domain.ErrCandidateNotVisible
	}

	swipe := &domain.Swipe{
		SwiperID: swiperID,
		SwipedID: req.SwipedUserID,
		IsLike:   req.IsLike,
	}
	if err := uc.swipeRepo.Create(ctx, swipe); err != nil {
		if errors.Is(err, domain.ErrSwipeAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create swipe: %w", err)
	}

	response := &SwipeResponse{Swipe: swipe}
	if !req.IsLike {
		return response, nil
	}

	isMutual, err := uc.swipeRepo.CheckMutualLike(ctx, swiperID, req.SwipedUserID)
	if err != nil {
		// The swipe is stored; the match can be picked up on the other side's like.
		uc.logger.Warn("mutual like check failed", zap.Int("swiper_id", swiperID), zap.Error(err))
		return response, nil
	}
	if !isMutual {
		return response, nil
	}

	match, err := uc.createMatch(ctx, swiperID, req.SwipedUserID)
	if err != nil {
		uc.logger.Error("match creation failed", zap.Int("swiper_id", swiperID), zap.Int("swiped_id", req.SwipedUserID), zap.Error(err))
		return response, nil
	}

	uc.logger.Info("match created", zap.Int("match_id", match.ID))
	response.IsMatch = true
	response.Match = match
	response.MatchedUser = &target
	return response, nil
}

// createMatch creates a match between two users
func (uc *SwipeUseCase) createMatch(ctx context.Context, user1ID, user2ID int) (*domain.Match, error) {
	if user1ID > user2ID {
		user1ID, user2ID = user2ID, user1ID
	}

	existing, err := uc.matchRepo.GetByUsers(ctx, user1ID, user2ID)
	if err == nil && existing != nil {
		return existing, nil
	}
	if err != nil && !errors.Is(err, domain.ErrMatchNotFound) {
		return nil, err
	}

	match := &domain.Match{
		User1ID:  user1ID,
		User2ID:  user2ID,
		IsActive: true,
	}
	if err := uc.matchRepo.Create(ctx, match); err != nil {
		// Both sides liked at the same moment and the other request won the insert.
		if errors.Is(err, domain.ErrMatchAlreadyExists) {
			return uc.matchRepo.GetByUsers(ctx, user1ID, user2ID)
		}
		return nil, err
	}
	return match, nil
}

// GetMatches returns the user's active matches
func (uc *SwipeUseCase) GetMatches(ctx context.Context, userID int, limit, offset int) ([]*domain.Match, error) {
	matches, err := uc.matchRepo.GetUserMatches(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}
	if matches == nil {
		matches = []*domain.Match{}
	}
	return matches, nil
}
