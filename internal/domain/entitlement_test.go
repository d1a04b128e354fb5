package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTier(t *testing.T) {
	tier, err := ParseTier(ResidencyLocal, "tier2")
	require.NoError(t, err)
	assert.Equal(t, LocalTier2, tier)
	assert.Equal(t, ResidencyLocal, tier.Residency())

	tier, err = ParseTier(ResidencyDiaspora, "diaspora_vetted")
	require.NoError(t, err)
	assert.Equal(t, DiasporaVetted, tier)

	_, err = ParseTier(ResidencyLocal, "diaspora_premium")
	assert.ErrorIs(t, err, ErrInvalidTier)

	_, err = ParseTier(ResidencyDiaspora, "tier3")
	assert.ErrorIs(t, err, ErrInvalidTier)

	_, err = ParseTier(Residency("martian"), "free")
	assert.ErrorIs(t, err, ErrInvalidTier)
}

func TestNewViewer_FallsBackToFreeTier(t *testing.T) {
	v := NewViewer(&Profile{ID: 1, Residency: ResidencyDiaspora, Tier: "tier3"})
	assert.Equal(t, DiasporaFree, v.Tier)
	assert.Equal(t, ResidencyDiaspora, v.Residency())

	v = NewViewer(&Profile{ID: 2, Residency: "", Tier: "diaspora_premium"})
	assert.Equal(t, LocalFree, v.Tier)
	assert.Equal(t, ResidencyLocal, v.Residency())
}

func TestDeriveEntitlements(t *testing.T) {
	tests := []struct {
		tier Tier
		want Entitlements
	}{
		{LocalFree, Entitlements{BeyondHomeCity: true}},
		{LocalTier2, Entitlements{BeyondHomeCity: true, OppositeClass: true, ChurchFilter: true}},
		{LocalTier3, Entitlements{BeyondHomeCity: true, OppositeClass: true, ChurchFilter: true, MaritalFilters: true}},
		{DiasporaFree, Entitlements{BeyondHomeCity: true}},
		{DiasporaPremium, Entitlements{BeyondHomeCity: true, OtherCountries: true, OppositeClass: true, ChurchFilter: true, MaritalFilters: true}},
		{DiasporaVetted, Entitlements{BeyondHomeCity: true, OtherCountries: true, OppositeClass: true, ChurchFilter: true, MaritalFilters: true}},
	}

	for _, tt := range tests {
		t.Run(tt.tier.String(), func(t *testing.T) {
			got := DeriveEntitlements(Viewer{Tier: tt.tier})
			assert.Equal(t, tt.want, got)
			for _, axis := range GatedAxes {
				assert.Equal(t, got.Entitled(axis), entitledByField(tt.want, axis), axis)
			}
		})
	}
}

func TestEntitlements_UnknownAxis(t *testing.T) {
	e := DeriveEntitlements(Viewer{Tier: DiasporaVetted})
	assert.False(t, e.Entitled(Axis("teleport")))
	assert.True(t, e.Entitled(AxisBeyondHomeCity))
}

func entitledByField(e Entitlements, axis Axis) bool {
	switch axis {
	case AxisOtherCountries:
		return e.OtherCountries
	case AxisOppositeClass:
		return e.OppositeClass
	case AxisChurchFilter:
		return e.ChurchFilter
	case AxisMaritalFilters:
		return e.MaritalFilters
	}
	return e.BeyondHomeCity
}
