// Package ratelimit throttles abuse-prone public endpoints per client IP with a
// sliding window.
package ratelimit

import (
	"context"
	"time"
)

// Class groups endpoints that share a limit.
type Class string

const (
	ClassAuth   Class = "auth"
	ClassPublic Class = "public"
)

// Limit admits Requests per Window.
type Limit struct {
	Requests int
	Window   time.Duration
}

// Result is the outcome of one Allow call.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Store counts requests per key. Denied requests are not counted.
type Store interface {
	Allow(ctx context.Context, key string, limit Limit) (*Result, error)
}
