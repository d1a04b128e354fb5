package domain

type Residency string

const (
	ResidencyLocal    Residency = "local"
	ResidencyDiaspora Residency = "diaspora"
)

func (r Residency) Valid() bool {
	return r == ResidencyLocal || r == ResidencyDiaspora
}

// Tier is a paid subscription level. It is implemented only by LocalTier and
// DiasporaTier, so every tier value belongs to exactly one residency ladder.
type Tier interface {
	Residency() Residency
	String() string
	tier()
}

// LocalTier is a step on the local ladder: free -> tier2 -> tier3.
type LocalTier string

const (
	LocalFree  LocalTier = "free"
	LocalTier2 LocalTier = "tier2"
	LocalTier3 LocalTier = "tier3"
)

func (t LocalTier) Residency() Residency { return ResidencyLocal }
func (t LocalTier) String() string       { return string(t) }
func (LocalTier) tier()                  {}

// DiasporaTier is a step on the diaspora ladder: diaspora_free -> diaspora_premium -> diaspora_vetted.
type DiasporaTier string

const (
	DiasporaFree    DiasporaTier = "diaspora_free"
	DiasporaPremium DiasporaTier = "diaspora_premium"
	DiasporaVetted  DiasporaTier = "diaspora_vetted"
)

func (t DiasporaTier) Residency() Residency { return ResidencyDiaspora }
func (t DiasporaTier) String() string       { return string(t) }
func (DiasporaTier) tier()                  {}

var (
	localLadder    = []LocalTier{LocalFree, LocalTier2, LocalTier3}
	diasporaLadder = []DiasporaTier{DiasporaFree, DiasporaPremium, DiasporaVetted}
)

// ParseTier resolves raw against the ladder of residency. A value from the
// other ladder is rejected with ErrInvalidTier.
func ParseTier(residency Residency, raw string) (Tier, error) {
	switch residency {
	case ResidencyLocal:
		for _, t := range localLadder {
			if string(t) == raw {
				return t, nil
			}
		}
	case ResidencyDiaspora:
		for _, t := range diasporaLadder {
			if string(t) == raw {
				return t, nil
			}
		}
	}
	return nil, ErrInvalidTier
}

// FreeTier returns the entry step of the residency's ladder.
func FreeTier(residency Residency) Tier {
	if residency == ResidencyDiaspora {
		return DiasporaFree
	}
	return LocalFree
}
