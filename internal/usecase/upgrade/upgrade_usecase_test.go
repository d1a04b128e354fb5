package upgrade

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gdugdh24/lifestyle-connect/internal/domain"
	"github.com/gdugdh24/lifestyle-connect/internal/matching"
)

type stubProfileRepo struct {
	mu            sync.Mutex
	profiles      map[int]*domain.Profile
	updateTierErr []error
	calls         []string
	// staleReads makes GetByID ignore persisted tier updates.
	staleReads bool
	stored     map[int]string
}

func newStubProfileRepo(profiles ...*domain.Profile) *stubProfileRepo {
	r := &stubProfileRepo{profiles: map[int]*domain.Profile{}, stored: map[int]string{}}
	for _, p := range profiles {
		r.profiles[p.ID] = p
	}
	return r
}

func (r *stubProfileRepo) Create(ctx context.Context, profile *domain.Profile) error { return nil }
func (r *stubProfileRepo) Update(ctx context.Context, profile *domain.Profile) error { return nil }
func (r *stubProfileRepo) SetHidden(ctx context.Context, id int, hidden bool) error  { return nil }
func (r *stubProfileRepo) ListCandidates(ctx context.Context, excludeID int, limit int) ([]*domain.Profile, error) {
	return nil, nil
}

func (r *stubProfileRepo) GetByID(ctx context.Context, id int) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "get")
	p, ok := r.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	cp := *p
	if tier, ok := r.stored[id]; ok && !r.staleReads {
		cp.Tier = tier
	}
	return &cp, nil
}

func (r *stubProfileRepo) UpdateTier(ctx context.Context, id int, tier domain.Tier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "update_tier")
	if len(r.updateTierErr) > 0 {
		err := r.updateTierErr[0]
		r.updateTierErr = r.updateTierErr[1:]
		if err != nil {
			return err
		}
	}
	r.stored[id] = tier.String()
	return nil
}

type stubGateway struct {
	mu      sync.Mutex
	charges []domain.Charge
	err     error
	repo    *stubProfileRepo
	// hold, when set, keeps each charge pending until it is closed.
	hold chan struct{}
}

func (g *stubGateway) Charge(ctx context.Context, charge domain.Charge) (*domain.Receipt, error) {
	if g.repo != nil {
		g.repo.mu.Lock()
		g.repo.calls = append(g.repo.calls, "charge")
		g.repo.mu.Unlock()
	}
	g.mu.Lock()
	g.charges = append(g.charges, charge)
	g.mu.Unlock()
	if g.hold != nil {
		<-g.hold
	}
	if g.err != nil {
		return nil, g.err
	}
	return &domain.Receipt{Reference: "ref-1", AmountUSD: charge.AmountUSD, PaidAt: time.Now()}, nil
}

func localProfile(tier domain.LocalTier) *domain.Profile {
	city := "Harare"
	return &domain.Profile{ID: 1, Residency: domain.ResidencyLocal, Tier: tier.String(), Gender: domain.GenderMale, Age: 30, City: &city}
}

func newTestUseCase(repo *stubProfileRepo, gw *stubGateway) *UpgradeUseCase {
	uc := NewUpgradeUseCase(repo, gw, zap.NewNop())
	uc.retryDelay = time.Millisecond
	return uc
}

func TestAttempt_AllowedAppliesToggle(t *testing.T) {
	repo := newStubProfileRepo(localProfile(domain.LocalTier2))
	uc := newTestUseCase(repo, &stubGateway{})

	res, err := uc.Attempt(context.Background(), 1, &ToggleRequest{Toggle: matching.ToggleChurchFilter, ChurchQuery: "celebration"})
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Equal(t, matching.OutcomeAllowed, res.Outcome.Kind)
	assert.Equal(t, "celebration", res.State.ChurchQuery)
}

func TestAttempt_GatedReturnsOfferWithoutToggling(t *testing.T) {
	repo := newStubProfileRepo(localProfile(domain.LocalFree))
	gw := &stubGateway{}
	uc := newTestUseCase(repo, gw)

	state := matching.UIState{Scope: matching.ScopeHomeCity}
	res, err := uc.Attempt(context.Background(), 1, &ToggleRequest{Toggle: matching.ToggleNeverMarried, State: state})
	require.NoError(t, err)
	assert.False(t, res.Applied)
	require.Equal(t, matching.OutcomeRequiresUpgrade, res.Outcome.Kind)
	assert.Equal(t, "tier3", res.Outcome.Offer.Tier)
	assert.Equal(t, 20, res.Outcome.Offer.AmountUSD)
	assert.False(t, res.State.MaritalOnly)
	assert.Empty(t, gw.charges)
}

func TestAttempt_UnknownToggle(t *testing.T) {
	uc := newTestUseCase(newStubProfileRepo(localProfile(domain.LocalFree)), &stubGateway{})

	_, err := uc.Attempt(context.Background(), 1, &ToggleRequest{Toggle: "dark_mode"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComplete_OrderedUpgradeThenToggle(t *testing.T) {
	repo := newStubProfileRepo(localProfile(domain.LocalFree))
	gw := &stubGateway{repo: repo}
	uc := newTestUseCase(repo, gw)

	res, err := uc.Complete(context.Background(), 1, &ToggleRequest{Toggle: matching.ToggleConnectOtherClass})
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Equal(t, "tier2", res.Tier)
	assert.Equal(t, matching.OriginOtherClass, res.State.TargetOrigin)
	require.NotNil(t, res.Receipt)
	assert.Equal(t, 10, res.Receipt.AmountUSD)

	require.Len(t, gw.charges, 1)
	assert.Equal(t, 10, gw.charges[0].AmountUSD)
	assert.Equal(t, []string{"get", "charge", "update_tier", "get"}, repo.calls)
}

func TestComplete_LocalMaritalBuysTier3(t *testing.T) {
	repo := newStubProfileRepo(localProfile(domain.LocalTier2))
	gw := &stubGateway{}
	uc := newTestUseCase(repo, gw)

	res, err := uc.Complete(context.Background(), 1, &ToggleRequest{Toggle: matching.ToggleNoChildren})
	require.NoError(t, err)
	assert.Equal(t, "tier3", res.Tier)
	assert.True(t, res.State.NoChildrenOnly)
	assert.Equal(t, 20, gw.charges[0].AmountUSD)
}

func TestComplete_AlreadyEntitledSkipsPayment(t *testing.T) {
	repo := newStubProfileRepo(localProfile(domain.LocalTier3))
	gw := &stubGateway{}
	uc := newTestUseCase(repo, gw)

	res, err := uc.Complete(context.Background(), 1, &ToggleRequest{Toggle: matching.ToggleNeverMarried})
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Nil(t, res.Receipt)
	assert.Empty(t, gw.charges)
}

func TestComplete_NotOffered(t *testing.T) {
	uc := newTestUseCase(newStubProfileRepo(localProfile(domain.LocalTier3)), &stubGateway{})

	_, err := uc.Complete(context.Background(), 1, &ToggleRequest{Toggle: matching.ToggleGlobalScope})
	assert.ErrorIs(t, err, domain.ErrAxisNotOffered)
}

func TestComplete_PaymentFailureLeavesTier(t *testing.T) {
	repo := newStubProfileRepo(localProfile(domain.LocalFree))
	uc := newTestUseCase(repo, &stubGateway{err: domain.ErrPaymentDeclined})

	_, err := uc.Complete(context.Background(), 1, &ToggleRequest{Toggle: matching.ToggleChurchFilter})
	assert.ErrorIs(t, err, domain.ErrPaymentDeclined)
	assert.NotContains(t, repo.calls, "update_tier")
}

func TestComplete_RetriesTierPersistence(t *testing.T) {
	repo := newStubProfileRepo(localProfile(domain.LocalFree))
	repo.updateTierErr = []error{errors.New("connection reset"), nil}
	uc := newTestUseCase(repo, &stubGateway{})

	res, err := uc.Complete(context.Background(), 1, &ToggleRequest{Toggle: matching.ToggleChurchFilter, ChurchQuery: "zaoga"})
	require.NoError(t, err)
	assert.Equal(t, "tier2", res.Tier)
	assert.Equal(t, []string{"get", "update_tier", "update_tier", "get"}, repo.calls)
}

func TestComplete_PersistenceGivesUp(t *testing.T) {
	repo := newStubProfileRepo(localProfile(domain.LocalFree))
	boom := errors.New("database down")
	repo.updateTierErr = []error{boom, boom, boom}
	uc := newTestUseCase(repo, &stubGateway{})

	_, err := uc.Complete(context.Background(), 1, &ToggleRequest{Toggle: matching.ToggleChurchFilter})
	assert.ErrorIs(t, err, boom)
}

func TestComplete_StaleReadIsNotTrusted(t *testing.T) {
	repo := newStubProfileRepo(localProfile(domain.LocalFree))
	repo.staleReads = true
	uc := newTestUseCase(repo, &stubGateway{})

	_, err := uc.Complete(context.Background(), 1, &ToggleRequest{Toggle: matching.ToggleConnectOtherClass})
	assert.ErrorIs(t, err, domain.ErrUpgradeNotApplied)
}

func TestComplete_DiasporaPremiumUnlocksGlobal(t *testing.T) {
	country := "United Kingdom"
	repo := newStubProfileRepo(&domain.Profile{ID: 7, Residency: domain.ResidencyDiaspora, Tier: "diaspora_free", Gender: domain.GenderFemale, Age: 29, Country: &country})
	gw := &stubGateway{}
	uc := newTestUseCase(repo, gw)

	res, err := uc.Complete(context.Background(), 7, &ToggleRequest{Toggle: matching.ToggleGlobalScope})
	require.NoError(t, err)
	assert.Equal(t, "diaspora_premium", res.Tier)
	assert.Equal(t, matching.ScopeGlobal, res.State.Scope)
	assert.Equal(t, 20, gw.charges[0].AmountUSD)
}

func TestComplete_ConcurrentRequestsChargeOnce(t *testing.T) {
	repo := newStubProfileRepo(localProfile(domain.LocalFree))
	gw := &stubGateway{hold: make(chan struct{})}
	uc := newTestUseCase(repo, gw)

	results := make([]*ToggleResult, 2)
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = uc.Complete(context.Background(), 1, &ToggleRequest{Toggle: matching.ToggleChurchFilter})
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(gw.hold)
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.True(t, results[i].Applied)
		assert.Equal(t, "tier2", results[i].Tier)
	}
	assert.Len(t, gw.charges, 1)
	assert.Empty(t, uc.inFlight.locks)
}

func TestComplete_OtherViewersAreNotSerialized(t *testing.T) {
	country := "United Kingdom"
	repo := newStubProfileRepo(localProfile(domain.LocalFree), &domain.Profile{ID: 7, Residency: domain.ResidencyDiaspora, Tier: "diaspora_free", Gender: domain.GenderFemale, Age: 29, Country: &country})
	gw := &stubGateway{hold: make(chan struct{})}
	uc := newTestUseCase(repo, gw)

	var wg sync.WaitGroup
	for _, id := range []int{1, 7} {
		id := id
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = uc.Complete(context.Background(), id, &ToggleRequest{Toggle: matching.ToggleChurchFilter})
		}()
	}
	assert.Eventually(t, func() bool {
		gw.mu.Lock()
		defer gw.mu.Unlock()
		return len(gw.charges) == 2
	}, time.Second, 5*time.Millisecond)
	close(gw.hold)
	wg.Wait()
}
