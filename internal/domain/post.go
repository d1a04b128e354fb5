package domain

import "time"

type PostKind string

const (
	PostKindPrayer      PostKind = "prayer"
	PostKindTestimonial PostKind = "testimonial"
)

func (k PostKind) Valid() bool {
	return k == PostKindPrayer || k == PostKindTestimonial
}

// Post is an entry on the community prayer board or testimonial wall.
type Post struct {
	ID        int       `json:"id" db:"id"`
	AuthorID  int       `json:"author_id" db:"author_id"`
	Kind      PostKind  `json:"kind" db:"kind"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
