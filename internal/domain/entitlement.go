package domain

// Axis is one independently gated feature of the match feed.
type Axis string

const (
	AxisBeyondHomeCity Axis = "beyond_home_city"
	AxisOtherCountries Axis = "other_countries"
	AxisOppositeClass  Axis = "opposite_class"
	AxisChurchFilter   Axis = "church_filter"
	AxisMaritalFilters Axis = "marital_filters"
)

// GatedAxes lists the axes a viewer can be locked out of, in display order.
var GatedAxes = []Axis{AxisOppositeClass, AxisOtherCountries, AxisChurchFilter, AxisMaritalFilters}

func (a Axis) Valid() bool {
	switch a {
	case AxisBeyondHomeCity, AxisOtherCountries, AxisOppositeClass, AxisChurchFilter, AxisMaritalFilters:
		return true
	}
	return false
}

type Entitlements struct {
	BeyondHomeCity bool `json:"beyond_home_city"`
	OtherCountries bool `json:"other_countries"`
	OppositeClass  bool `json:"opposite_class"`
	ChurchFilter   bool `json:"church_filter"`
	MaritalFilters bool `json:"marital_filters"`
}

func (e Entitlements) Entitled(axis Axis) bool {
	switch axis {
	case AxisBeyondHomeCity:
		return e.BeyondHomeCity
	case AxisOtherCountries:
		return e.OtherCountries
	case AxisOppositeClass:
		return e.OppositeClass
	case AxisChurchFilter:
		return e.ChurchFilter
	case AxisMaritalFilters:
		return e.MaritalFilters
	}
	return false
}

// DeriveEntitlements computes the viewer's access rights from its tier alone.
// Axes do not unlock monotonically: local marital filters need tier3 while
// every other local axis opens at tier2.
func DeriveEntitlements(v Viewer) Entitlements {
	e := Entitlements{BeyondHomeCity: true}

	switch t := v.Tier.(type) {
	case LocalTier:
		paid := t == LocalTier2 || t == LocalTier3
		e.OppositeClass = paid
		e.ChurchFilter = paid
		e.MaritalFilters = t == LocalTier3
	case DiasporaTier:
		paid := t == DiasporaPremium || t == DiasporaVetted
		e.OtherCountries = paid
		e.OppositeClass = paid
		e.ChurchFilter = paid
		e.MaritalFilters = paid
	}

	return e
}
