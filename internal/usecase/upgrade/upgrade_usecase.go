package upgrade

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/avast/retry-go"
	"github.com/gdugdh24/lifestyle-connect/internal/domain"
	"github.com/gdugdh24/lifestyle-connect/internal/matching"
	"github.com/gdugdh24/lifestyle-connect/internal/repository"
	"go.uber.org/zap"
)

type PaymentGateway interface {
	Charge(ctx context.Context, charge domain.Charge) (*domain.Receipt, error)
}

type UpgradeUseCase struct {
	profileRepo repository.ProfileRepository
	payments    PaymentGateway
	logger      *zap.Logger
	retryDelay  time.Duration
	attempts    uint
	inFlight    viewerLocks
}

func NewUpgradeUseCase(
	profileRepo repository.ProfileRepository,
	payments PaymentGateway,
	logger *zap.Logger,
) *UpgradeUseCase {
	return &UpgradeUseCase{
		profileRepo: profileRepo,
		payments:    payments,
		logger:      logger,
		retryDelay:  200 * time.Millisecond,
		attempts:    3,
	}
}

// ToggleRequest is a feed control the viewer tried to switch on
type ToggleRequest struct {
	Toggle      matching.Toggle  `json:"toggle" binding:"required,toggle"`
	State       matching.UIState `json:"state"`
	ChurchQuery string           `json:"church_query" binding:"omitempty,max=200"`
}

// ToggleResult tells the client whether the toggle is now on
type ToggleResult struct {
	Applied bool             `json:"applied"`
	Outcome matching.Outcome `json:"outcome"`
	State   matching.UIState `json:"state"`
	Tier    string           `json:"tier"`
	Receipt *domain.Receipt  `json:"receipt,omitempty"`
}

// Attempt applies the toggle when the viewer is entitled, otherwise returns the
// upgrade offer and leaves the state untouched.
func (uc *UpgradeUseCase) Attempt(ctx context.Context, viewerID int, req *ToggleRequest) (*ToggleResult, error) {
	axis, ok := req.Toggle.Axis()
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	viewer, err := uc.loadViewer(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	outcome := matching.AttemptGatedAction(axis, viewer)
	result := &ToggleResult{
		Outcome: outcome,
		State:   req.State,
		Tier:    viewer.Tier.String(),
	}
	if outcome.Kind == matching.OutcomeAllowed {
		result.Applied = true
		result.State = matching.ApplyToggle(req.State, req.Toggle, req.ChurchQuery)
	}
	return result, nil
}

// Complete runs the upgrade for a gated toggle. The steps are strictly
// ordered: charge, persist the tier, re-read it from the store, re-derive
// entitlements, and only then apply the toggle. Completions for the same
// viewer are serialized and the tier is read under the lock, so a second
// request that races the first finds the toggle allowed and is not charged.
func (uc *UpgradeUseCase) Complete(ctx context.Context, viewerID int, req *ToggleRequest) (*ToggleResult, error) {
	axis, ok := req.Toggle.Axis()
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	unlock := uc.inFlight.lock(viewerID)
	defer unlock()

	viewer, err := uc.loadViewer(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	outcome := matching.AttemptGatedAction(axis, viewer)
	switch outcome.Kind {
	case matching.OutcomeAllowed:
		return &ToggleResult{
			Applied: true,
			Outcome: outcome,
			State:   matching.ApplyToggle(req.State, req.Toggle, req.ChurchQuery),
			Tier:    viewer.Tier.String(),
		}, nil
	case matching.OutcomeNotOffered:
		return nil, domain.ErrAxisNotOffered
	}

	offer := outcome.Offer
	receipt, err := uc.payments.Charge(ctx, domain.Charge{
		UserID:      viewerID,
		AmountUSD:   offer.AmountUSD,
		Title:       offer.Title,
		Description: offer.Description,
	})
	if err != nil {
		uc.logger.Error("upgrade payment failed", zap.Int("viewer_id", viewerID), zap.String("axis", string(axis)), zap.Error(err))
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	err = retry.Do(
		func() error {
			return uc.profileRepo.UpdateTier(ctx, viewerID, offer.TargetTier)
		},
		retry.Context(ctx),
		retry.Attempts(uc.attempts),
		retry.Delay(uc.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, domain.ErrProfileNotFound)
		}),
		retry.OnRetry(func(n uint, err error) {
			uc.logger.Warn("retrying tier update", zap.Int("viewer_id", viewerID), zap.Uint("attempt", n+1), zap.Error(err))
		}),
	)
	if err != nil {
		uc.logger.Error("paid upgrade not persisted",
			zap.Int("viewer_id", viewerID),
			zap.String("reference", receipt.Reference),
			zap.String("target_tier", offer.Tier),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to persist tier: %w", err)
	}

	refreshed, err := uc.loadViewer(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	after := matching.AttemptGatedAction(axis, refreshed)
	if after.Kind != matching.OutcomeAllowed {
		return nil, domain.ErrUpgradeNotApplied
	}

	uc.logger.Info("tier upgraded",
		zap.Int("viewer_id", viewerID),
		zap.String("from", viewer.Tier.String()),
		zap.String("to", refreshed.Tier.String()),
		zap.String("reference", receipt.Reference),
	)

	return &ToggleResult{
		Applied: true,
		Outcome: after,
		State:   matching.ApplyToggle(req.State, req.Toggle, req.ChurchQuery),
		Tier:    refreshed.Tier.String(),
		Receipt: receipt,
	}, nil
}

func (uc *UpgradeUseCase) loadViewer(ctx context.Context, viewerID int) (domain.Viewer, error) {
	profile, err := uc.profileRepo.GetByID(ctx, viewerID)
	if err != nil {
		return domain.Viewer{}, fmt.Errorf("failed to get viewer profile: %w", err)
	}
	return domain.NewViewer(profile), nil
}

// viewerLocks hands out one mutex per viewer and forgets it once nobody holds
// or waits on it.
type viewerLocks struct {
	mu    sync.Mutex
	locks map[int]*viewerLock
}

type viewerLock struct {
	sync.Mutex
	refs int
}

func (l *viewerLocks) lock(viewerID int) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = map[int]*viewerLock{}
	}
	vl, ok := l.locks[viewerID]
	if !ok {
		vl = &viewerLock{}
		l.locks[viewerID] = vl
	}
	vl.refs++
	l.mu.Unlock()

	vl.Lock()
	return func() {
		vl.Unlock()
		l.mu.Lock()
		vl.refs--
		if vl.refs == 0 {
			delete(l.locks, viewerID)
		}
		l.mu.Unlock()
	}
}
