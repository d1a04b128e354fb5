package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdugdh24/lifestyle-connect/internal/domain"
)

func TestAttemptGatedAction_LocalPricing(t *testing.T) {
	free := harareViewer(domain.LocalFree)

	out := AttemptGatedAction(domain.AxisMaritalFilters, free)
	require.Equal(t, OutcomeRequiresUpgrade, out.Kind)
	assert.Equal(t, domain.LocalTier3, out.Offer.TargetTier)
	assert.Equal(t, 20, out.Offer.AmountUSD)

	out = AttemptGatedAction(domain.AxisOppositeClass, free)
	require.Equal(t, OutcomeRequiresUpgrade, out.Kind)
	assert.Equal(t, domain.LocalTier2, out.Offer.TargetTier)
	assert.Equal(t, 10, out.Offer.AmountUSD)

	out = AttemptGatedAction(domain.AxisChurchFilter, free)
	require.Equal(t, OutcomeRequiresUpgrade, out.Kind)
	assert.Equal(t, domain.LocalTier2, out.Offer.TargetTier)
	assert.Equal(t, 10, out.Offer.AmountUSD)

	out = AttemptGatedAction(domain.AxisOtherCountries, free)
	assert.Equal(t, OutcomeNotOffered, out.Kind)
	assert.Nil(t, out.Offer)

	out = AttemptGatedAction(domain.AxisBeyondHomeCity, free)
	assert.Equal(t, OutcomeAllowed, out.Kind)
}

func TestAttemptGatedAction_LocalTier2StillNeedsTier3ForMarital(t *testing.T) {
	v := harareViewer(domain.LocalTier2)

	assert.Equal(t, OutcomeAllowed, AttemptGatedAction(domain.AxisChurchFilter, v).Kind)
	assert.Equal(t, OutcomeAllowed, AttemptGatedAction(domain.AxisOppositeClass, v).Kind)

	out := AttemptGatedAction(domain.AxisMaritalFilters, v)
	require.Equal(t, OutcomeRequiresUpgrade, out.Kind)
	assert.Equal(t, domain.LocalTier3, out.Offer.TargetTier)
}

func TestAttemptGatedAction_DiasporaPricing(t *testing.T) {
	free := londonViewer(domain.DiasporaFree)
	for _, axis := range domain.GatedAxes {
		out := AttemptGatedAction(axis, free)
		require.Equal(t, OutcomeRequiresUpgrade, out.Kind, axis)
		assert.Equal(t, domain.DiasporaPremium, out.Offer.TargetTier, axis)
		assert.Equal(t, 20, out.Offer.AmountUSD, axis)
		assert.NotEmpty(t, out.Offer.Title, axis)
		assert.NotEmpty(t, out.Offer.Description, axis)
	}

	for _, tier := range []domain.Tier{domain.DiasporaPremium, domain.DiasporaVetted} {
		for _, axis := range domain.GatedAxes {
			assert.Equal(t, OutcomeAllowed, AttemptGatedAction(axis, londonViewer(tier)).Kind)
		}
	}
}

func TestAttemptGatedAction_OfferIsACopy(t *testing.T) {
	out := AttemptGatedAction(domain.AxisChurchFilter, harareViewer(domain.LocalFree))
	out.Offer.AmountUSD = 999

	again := AttemptGatedAction(domain.AxisChurchFilter, harareViewer(domain.LocalFree))
	assert.Equal(t, 10, again.Offer.AmountUSD)
}

func TestLocks(t *testing.T) {
	locks := Locks(harareViewer(domain.LocalFree))
	axes := make([]domain.Axis, 0, len(locks))
	for _, l := range locks {
		axes = append(axes, l.Axis)
	}
	assert.Equal(t, []domain.Axis{domain.AxisOppositeClass, domain.AxisChurchFilter, domain.AxisMaritalFilters}, axes)

	assert.Empty(t, Locks(harareViewer(domain.LocalTier3)))
	assert.Len(t, Locks(londonViewer(domain.DiasporaFree)), 4)
}

func TestApplyToggle(t *testing.T) {
	base := UIState{Scope: ScopeHomeCity, TargetOrigin: OriginSameClass}

	assert.Equal(t, OriginOtherClass, ApplyToggle(base, ToggleConnectOtherClass, "").TargetOrigin)
	assert.Equal(t, ScopeGlobal, ApplyToggle(base, ToggleGlobalScope, "").Scope)
	assert.Equal(t, "celebration", ApplyToggle(base, ToggleChurchFilter, "celebration").ChurchQuery)
	assert.True(t, ApplyToggle(base, ToggleNeverMarried, "").MaritalOnly)
	assert.True(t, ApplyToggle(base, ToggleNoChildren, "").NoChildrenOnly)

	// The input is not mutated.
	assert.Equal(t, OriginSameClass, base.TargetOrigin)
}

func TestToggleAxis(t *testing.T) {
	axis, ok := ToggleNoChildren.Axis()
	require.True(t, ok)
	assert.Equal(t, domain.AxisMaritalFilters, axis)

	_, ok = Toggle("dark_mode").Axis()
	assert.False(t, ok)
}
