package matching

import (
	"strings"

	"github.com/gdugdh24/lifestyle-connect/internal/domain"
)

type Scope string

const (
	ScopeHomeCity    Scope = "home-city"
	ScopeHomeCountry Scope = "home-country"
	ScopeGlobal      Scope = "global"
)

type TargetOrigin string

const (
	OriginSameClass  TargetOrigin = "same-class"
	OriginOtherClass TargetOrigin = "other-class"
)

const (
	MinAllowedAge = 18
	MaxAllowedAge = 100
)

type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// UIState is the viewer's current selection on the feed page.
type UIState struct {
	Scope          Scope        `json:"scope"`
	TargetOrigin   TargetOrigin `json:"target_origin"`
	AgeRange       *AgeRange    `json:"age_range,omitempty"`
	ChurchQuery    string       `json:"church_query,omitempty"`
	MaritalOnly    bool         `json:"marital_only"`
	NoChildrenOnly bool         `json:"no_children_only"`

	// noAges is set by normalize when the requested range lies wholly outside
	// the allowed ages.
	noAges bool
}

// normalize resolves unset or unknown values to the narrowest interpretation.
func (s UIState) normalize() UIState {
	switch s.Scope {
	case ScopeHomeCity, ScopeHomeCountry, ScopeGlobal:
	default:
		s.Scope = ScopeHomeCity
	}
	if s.TargetOrigin != OriginOtherClass {
		s.TargetOrigin = OriginSameClass
	}

	r := AgeRange{Min: MinAllowedAge, Max: MaxAllowedAge}
	if s.AgeRange != nil {
		r = *s.AgeRange
		if r.Min > r.Max {
			r.Min, r.Max = r.Max, r.Min
		}
		if r.Max < MinAllowedAge || r.Min > MaxAllowedAge {
			s.noAges = true
		}
		r.Min = clamp(r.Min, MinAllowedAge, MaxAllowedAge)
		r.Max = clamp(r.Max, MinAllowedAge, MaxAllowedAge)
	}
	s.AgeRange = &r

	s.ChurchQuery = strings.TrimSpace(s.ChurchQuery)
	return s
}

// SelectVisibleCandidates returns the candidates of pool the viewer may see
// under state. It is pure: entitlements are derived once per call and every
// clause the viewer is not entitled to is treated as not applied.
func SelectVisibleCandidates(viewer domain.Viewer, pool []domain.Candidate, state UIState) []domain.Candidate {
	ent := domain.DeriveEntitlements(viewer)
	state = state.normalize()
	if state.noAges {
		return []domain.Candidate{}
	}

	visible := make([]domain.Candidate, 0, len(pool))
	for _, c := range pool {
		if c.ID == viewer.ID || c.Hidden {
			continue
		}
		if c.Gender == viewer.Gender {
			continue
		}
		if c.Age < state.AgeRange.Min || c.Age > state.AgeRange.Max {
			continue
		}
		if !matchesResidency(viewer, ent, c, state) {
			continue
		}
		if state.ChurchQuery != "" && ent.ChurchFilter && !containsFold(c.ChurchName, state.ChurchQuery) {
			continue
		}
		if state.MaritalOnly && ent.MaritalFilters &&
			(c.MaritalStatus == nil || *c.MaritalStatus != domain.MaritalNeverMarried) {
			continue
		}
		if state.NoChildrenOnly && ent.MaritalFilters && (c.HasChildren == nil || *c.HasChildren) {
			continue
		}
		visible = append(visible, c)
	}

	return visible
}

func matchesResidency(viewer domain.Viewer, ent domain.Entitlements, c domain.Candidate, state UIState) bool {
	if viewer.Residency() == domain.ResidencyLocal {
		if state.TargetOrigin == OriginOtherClass {
			return ent.OppositeClass && c.IsDiaspora()
		}
		if c.IsDiaspora() {
			return false
		}
		if state.Scope == ScopeHomeCity {
			return equalField(c.City, viewer.City)
		}
		return ent.BeyondHomeCity
	}

	if state.TargetOrigin == OriginOtherClass {
		return ent.OppositeClass && !c.IsDiaspora()
	}
	if !c.IsDiaspora() {
		return false
	}

	scope := state.Scope
	if scope == ScopeGlobal && !ent.OtherCountries {
		scope = ScopeHomeCountry
	}
	switch scope {
	case ScopeHomeCity:
		return equalField(c.City, viewer.City) && equalField(c.Country, viewer.Country)
	case ScopeHomeCountry:
		return equalField(c.Country, viewer.Country)
	}
	return true
}

// equalField reports whether two optional values are both set and equal.
func equalField(a, b *string) bool {
	return a != nil && b != nil && *a != "" && *a == *b
}

func containsFold(field *string, query string) bool {
	if field == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*field), strings.ToLower(query))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
