package domain

import "time"

// Charge is what the payment flow presents to the user: an amount and the
// strings describing what is being bought.
type Charge struct {
	UserID      int
	AmountUSD   int
	Title       string
	Description string
}

type Receipt struct {
	Reference string    `json:"reference"`
	AmountUSD int       `json:"amount_usd"`
	PaidAt    time.Time `json:"paid_at"`
}
