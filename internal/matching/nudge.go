package matching

import "github.com/gdugdh24/lifestyle-connect/internal/domain"

type OutcomeKind string

const (
	OutcomeAllowed         OutcomeKind = "allowed"
	OutcomeRequiresUpgrade OutcomeKind = "requires_upgrade"
	OutcomeNotOffered      OutcomeKind = "not_offered"
)

// Offer is the priced upgrade presented instead of a gated toggle.
type Offer struct {
	TargetTier  domain.Tier `json:"-"`
	Tier        string      `json:"target_tier"`
	AmountUSD   int         `json:"amount_usd"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
}

type Outcome struct {
	Kind  OutcomeKind `json:"kind"`
	Axis  domain.Axis `json:"axis"`
	Offer *Offer      `json:"offer,omitempty"`
}

func newOffer(tier domain.Tier, amount int, title, description string) *Offer {
	return &Offer{
		TargetTier:  tier,
		Tier:        tier.String(),
		AmountUSD:   amount,
		Title:       title,
		Description: description,
	}
}

var (
	localOffers = map[domain.Axis]*Offer{
		domain.AxisOppositeClass:  newOffer(domain.LocalTier2, 10, "Connect with the Diaspora", "Meet Zimbabweans living abroad who are looking to connect back home."),
		domain.AxisChurchFilter:   newOffer(domain.LocalTier2, 10, "Church Filter", "Search for matches by the church they attend."),
		domain.AxisMaritalFilters: newOffer(domain.LocalTier3, 20, "Marital History Filters", "Only show members who have never married or have no children."),
	}
	diasporaOffers = map[domain.Axis]*Offer{
		domain.AxisOppositeClass:  newOffer(domain.DiasporaPremium, 20, "Connect Back Home", "Meet members living in Zimbabwe."),
		domain.AxisOtherCountries: newOffer(domain.DiasporaPremium, 20, "Global Diaspora Search", "Meet diaspora members in every country, not only your own."),
		domain.AxisChurchFilter:   newOffer(domain.DiasporaPremium, 20, "Church Filter", "Search for matches by the church they attend."),
		domain.AxisMaritalFilters: newOffer(domain.DiasporaPremium, 20, "Marital History Filters", "Only show members who have never married or have no children."),
	}
)

// AttemptGatedAction decides whether the viewer may use axis right away or
// must first buy the tier in the returned offer. Local and diaspora pricing
// differ on purpose: local marital filters need tier3.
func AttemptGatedAction(axis domain.Axis, viewer domain.Viewer) Outcome {
	if domain.DeriveEntitlements(viewer).Entitled(axis) {
		return Outcome{Kind: OutcomeAllowed, Axis: axis}
	}

	offers := localOffers
	if viewer.Residency() == domain.ResidencyDiaspora {
		offers = diasporaOffers
	}
	offer, ok := offers[axis]
	if !ok {
		return Outcome{Kind: OutcomeNotOffered, Axis: axis}
	}

	cp := *offer
	return Outcome{Kind: OutcomeRequiresUpgrade, Axis: axis, Offer: &cp}
}

// Locks lists an upgrade outcome for every gated axis the viewer cannot use yet.
func Locks(viewer domain.Viewer) []Outcome {
	var locks []Outcome
	for _, axis := range domain.GatedAxes {
		if out := AttemptGatedAction(axis, viewer); out.Kind == OutcomeRequiresUpgrade {
			locks = append(locks, out)
		}
	}
	return locks
}

// Toggle is a feed control guarded by an axis.
type Toggle string

const (
	ToggleConnectOtherClass Toggle = "connect_other_class"
	ToggleGlobalScope       Toggle = "global_scope"
	ToggleChurchFilter      Toggle = "church_filter"
	ToggleNeverMarried      Toggle = "never_married"
	ToggleNoChildren        Toggle = "no_children"
)

func (t Toggle) Axis() (domain.Axis, bool) {
	switch t {
	case ToggleConnectOtherClass:
		return domain.AxisOppositeClass, true
	case ToggleGlobalScope:
		return domain.AxisOtherCountries, true
	case ToggleChurchFilter:
		return domain.AxisChurchFilter, true
	case ToggleNeverMarried, ToggleNoChildren:
		return domain.AxisMaritalFilters, true
	}
	return "", false
}

// ApplyToggle returns state with the toggle switched on.
func ApplyToggle(state UIState, toggle Toggle, churchQuery string) UIState {
	switch toggle {
	case ToggleConnectOtherClass:
		state.TargetOrigin = OriginOtherClass
	case ToggleGlobalScope:
		state.Scope = ScopeGlobal
	case ToggleChurchFilter:
		state.ChurchQuery = churchQuery
	case ToggleNeverMarried:
		state.MaritalOnly = true
	case ToggleNoChildren:
		state.NoChildrenOnly = true
	}
	return state
}
