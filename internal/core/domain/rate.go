package domain

import "time"

// RateSource tells where an exchange rate came from.
type RateSource string

const (
	RateLive     RateSource = "live"
	RateCached   RateSource = "cache"
	RateFallback RateSource = "fallback"
)

// Rate is one currency conversion factor.
type Rate struct {
	From      string     `json:"from"`
	To        string     `json:"to"`
	Value     float64    `json:"rate"`
	Source    RateSource `json:"source"`
	FetchedAt time.Time  `json:"fetched_at"`
}
