package domain

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

const MaritalNeverMarried = "Never Married"

type Profile struct {
	ID                   int       `json:"id" db:"id"`
	DisplayName          string    `json:"display_name" db:"display_name"`
	Residency            Residency `json:"residency" db:"residency"`
	Tier                 string    `json:"tier" db:"tier"`
	Gender               Gender    `json:"gender" db:"gender"`
	Age                  int       `json:"age" db:"age"`
	City                 *string   `json:"city" db:"city"`
	Country              *string   `json:"country" db:"country"`
	ChurchName           *string   `json:"church_name" db:"church_name"`
	MaritalStatus        *string   `json:"marital_status" db:"marital_status"`
	HasChildren          *bool     `json:"has_children" db:"has_children"`
	Bio                  *string   `json:"bio" db:"bio"`
	IsHidden             bool      `json:"is_hidden" db:"is_hidden"`
	IsOnboardingComplete bool      `json:"is_onboarding_complete" db:"is_onboarding_complete"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time `json:"updated_at" db:"updated_at"`
}

// Viewer is the acting user of a feed request. Its residency class is taken
// from the tier ladder, never stored separately.
type Viewer struct {
	ID      int
	Tier    Tier
	Gender  Gender
	Age     int
	City    *string
	Country *string
}

func (v Viewer) Residency() Residency {
	if v.Tier == nil {
		return ResidencyLocal
	}
	return v.Tier.Residency()
}

// NewViewer builds a Viewer from a stored profile. A tier that does not belong
// to the profile's ladder falls back to that ladder's free tier.
func NewViewer(p *Profile) Viewer {
	residency := p.Residency
	if !residency.Valid() {
		residency = ResidencyLocal
	}
	tier, err := ParseTier(residency, p.Tier)
	if err != nil {
		tier = FreeTier(residency)
	}
	return Viewer{
		ID:      p.ID,
		Tier:    tier,
		Gender:  p.Gender,
		Age:     p.Age,
		City:    p.City,
		Country: p.Country,
	}
}

type Candidate struct {
	ID            int       `json:"id"`
	DisplayName   string    `json:"display_name"`
	Hidden        bool      `json:"-"`
	Age           int       `json:"age"`
	Gender        Gender    `json:"gender"`
	City          *string   `json:"city,omitempty"`
	Country       *string   `json:"country,omitempty"`
	Residency     Residency `json:"residency"`
	ChurchName    *string   `json:"church_name,omitempty"`
	MaritalStatus *string   `json:"marital_status,omitempty"`
	HasChildren   *bool     `json:"has_children,omitempty"`
	Bio           *string   `json:"bio,omitempty"`
}

func (c Candidate) IsDiaspora() bool {
	return c.Residency == ResidencyDiaspora
}

func NewCandidate(p *Profile) Candidate {
	return Candidate{
		ID:            p.ID,
		DisplayName:   p.DisplayName,
		Hidden:        p.IsHidden,
		Age:           p.Age,
		Gender:        p.Gender,
		City:          p.City,
		Country:       p.Country,
		Residency:     p.Residency,
		ChurchName:    p.ChurchName,
		MaritalStatus: p.MaritalStatus,
		HasChildren:   p.HasChildren,
		Bio:           p.Bio,
	}
}
