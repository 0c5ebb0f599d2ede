package dto

import (
	"strconv"
	"time"
)

const (
	HeaderRateLimit     = "X-Ratelimit-Limit"
	HeaderRateRemaining = "X-Ratelimit-Remaining"
	HeaderRateReset     = "X-Ratelimit-Reset"
)

// RateLimit is the request budget reported by the API.
type RateLimit struct {
	Limit     int
	Remaining int
	// Reset is the time left until the budget is fully restored.
	Reset time.Duration
}

// ParseRateLimit reads the rate limit headers. It reports false when the
// limit header is missing or malformed.
func ParseRateLimit(headers map[string]string) (RateLimit, bool) {
	limit, err := strconv.Atoi(headers[HeaderRateLimit])
	if err != nil {
		return RateLimit{}, false
	}
	rl := RateLimit{Limit: limit}
	if remaining, err := strconv.Atoi(headers[HeaderRateRemaining]); err == nil {
		rl.Remaining = remaining
	}
	if reset, err := strconv.ParseFloat(headers[HeaderRateReset], 64); err == nil {
		rl.Reset = time.Duration(reset * float64(time.Second))
	}
	return rl, true
}
