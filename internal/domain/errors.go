package domain

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidToken = errors.New("invalid token")
	ErrForbidden    = errors.New("forbidden")

	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
	ErrInvalidTier          = errors.New("invalid tier for residency")

	ErrAxisNotOffered    = errors.New("feature is not offered for this residency")
	ErrUpgradeNotApplied = errors.New("upgrade was not applied")
	ErrPaymentDeclined   = errors.New("payment declined")

	ErrCandidateNotVisible = errors.New("candidate is not visible")
	ErrCannotSwipeSelf     = errors.New("cannot swipe yourself")
	ErrSwipeAlreadyExists  = errors.New("swipe already exists")
	ErrMatchNotFound       = errors.New("match not found")
	ErrMatchAlreadyExists  = errors.New("match already exists")

	ErrPostNotFound = errors.New("post not found")
)
