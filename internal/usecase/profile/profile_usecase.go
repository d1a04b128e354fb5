package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdugdh24/lifestyle-connect/internal/domain"
	"github.com/gdugdh24/lifestyle-connect/internal/repository"
	"go.uber.org/zap"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	poolCache   repository.PoolCache
	logger      *zap.Logger
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	poolCache repository.PoolCache,
	logger *zap.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		poolCache:   poolCache,
		logger:      logger,
	}
}

// CreateProfileRequest represents the onboarding form
type CreateProfileRequest struct {
	DisplayName   string           `json:"display_name" binding:"required,min=2,max=100"`
	Residency     domain.Residency `json:"residency" binding:"required,residency"`
	Gender        domain.Gender    `json:"gender" binding:"required,gender"`
	Age           int              `json:"age" binding:"required,min=18,max=100"`
	City          *string          `json:"city" binding:"omitempty,max=100"`
	Country       *string          `json:"country" binding:"omitempty,max=100"`
	ChurchName    *string          `json:"church_name" binding:"omitempty,max=200"`
	MaritalStatus *string          `json:"marital_status" binding:"omitempty,max=32"`
	HasChildren   *bool            `json:"has_children"`
	Bio           *string          `json:"bio" binding:"omitempty,max=500"`
}

// UpdateProfileRequest represents a partial profile update. Residency and tier are not editable here.
type UpdateProfileRequest struct {
	DisplayName   *string        `json:"display_name" binding:"omitempty,min=2,max=100"`
	Gender        *domain.Gender `json:"gender" binding:"omitempty,gender"`
	Age           *int           `json:"age" binding:"omitempty,min=18,max=100"`
	City          *string        `json:"city" binding:"omitempty,max=100"`
	Country       *string        `json:"country" binding:"omitempty,max=100"`
	ChurchName    *string        `json:"church_name" binding:"omitempty,max=200"`
	MaritalStatus *string        `json:"marital_status" binding:"omitempty,max=32"`
	HasChildren   *bool          `json:"has_children"`
	Bio           *string        `json:"bio" binding:"omitempty,max=500"`
}

// GetMyProfile returns current user's profile
func (uc *ProfileUseCase) GetMyProfile(ctx context.Context, userID int) (*domain.Profile, error) {
	return uc.profileRepo.GetByID(ctx, userID)
}

// GetProfile returns another user's profile. Hidden profiles are not found.
func (uc *ProfileUseCase) GetProfile(ctx context.Context, targetID int) (*domain.Candidate, error) {
	profile, err := uc.profileRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if profile.IsHidden {
		return nil, domain.ErrProfileNotFound
	}
	candidate := domain.NewCandidate(profile)
	return &candidate, nil
}

// GetProfileAsAdmin returns any profile, hidden or not
func (uc *ProfileUseCase) GetProfileAsAdmin(ctx context.Context, targetID int) (*domain.Profile, error) {
	return uc.profileRepo.GetByID(ctx, targetID)
}

// CreateProfile completes onboarding. New members start on the free tier of their ladder.
func (uc *ProfileUseCase) CreateProfile(ctx context.Context, userID int, req *CreateProfileRequest) (*domain.Profile, error) {
	existing, err := uc.profileRepo.GetByID(ctx, userID)
	if err == nil && existing != nil {
		return nil, domain.ErrProfileAlreadyExists
	}
	if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, fmt.Errorf("failed to check profile: %w", err)
	}

	if !req.Residency.Valid() {
		return nil, domain.ErrInvalidInput
	}

	profile := &domain.Profile{
		ID:                   userID,
		DisplayName:          req.DisplayName,
		Residency:            req.Residency,
		Tier:                 domain.FreeTier(req.Residency).String(),
		Gender:               req.Gender,
		Age:                  req.Age,
		City:                 req.City,
		Country:              req.Country,
		ChurchName:           req.ChurchName,
		MaritalStatus:        req.MaritalStatus,
		HasChildren:          req.HasChildren,
		Bio:                  req.Bio,
		IsOnboardingComplete: true,
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	uc.logger.Info("profile onboarded",
		zap.Int("user_id", userID),
		zap.String("residency", string(profile.Residency)),
	)
	return profile, nil
}

// UpdateProfile updates user profile
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID int, req *UpdateProfileRequest) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		profile.DisplayName = *req.DisplayName
	}
	if req.Gender != nil {
		profile.Gender = *req.Gender
	}
	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.City != nil {
		profile.City = req.City
	}
	if req.Country != nil {
		profile.Country = req.Country
	}
	if req.ChurchName != nil {
		profile.ChurchName = req.ChurchName
	}
	if req.MaritalStatus != nil {
		profile.MaritalStatus = req.MaritalStatus
	}
	if req.HasChildren != nil {
		profile.HasChildren = req.HasChildren
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return profile, nil
}

// SetHidden hides or restores a profile in every candidate pool. Used by the admin dashboard.
func (uc *ProfileUseCase) SetHidden(ctx context.Context, profileID int, hidden bool) error {
	if err := uc.profileRepo.SetHidden(ctx, profileID, hidden); err != nil {
		return err
	}
	if hidden && uc.poolCache != nil {
		if err := uc.poolCache.DeleteAll(ctx); err != nil {
			uc.logger.Warn("failed to flush feed sessions", zap.Int("profile_id", profileID), zap.Error(err))
		}
	}
	uc.logger.Info("profile visibility changed", zap.Int("profile_id", profileID), zap.Bool("hidden", hidden))
	return nil
}
