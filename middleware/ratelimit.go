// Copyright (c) 2026 Hatpick.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// maxTrackedIPs caps the per-IP limiter map. When the cap is reached the
// map is reset rather than evicted entry by entry; buckets start full, so
// a reset briefly re-grants each returning client one burst.
const maxTrackedIPs = 10000

// RateLimiter applies a per-client-IP token bucket to all wrapped routes.
type RateLimiter struct {
	mu    sync.Mutex
	perIP map[string]*rate.Limiter
	rps   rate.Limit
	burst int
}

// NewRateLimiter allows rps sustained requests per second per client IP,
// with a burst of twice that. rps <= 0 disables limiting.
func NewRateLimiter(rps float64) *RateLimiter {
	burst := int(rps * 2)
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		perIP: make(map[string]*rate.Limiter),
		rps:   rate.Limit(rps),
		burst: burst,
	}
}

func (rl *RateLimiter) limiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	l, ok := rl.perIP[ip]
	if !ok {
		if len(rl.perIP) >= maxTrackedIPs {
			rl.perIP = make(map[string]*rate.Limiter)
		}
		l = rate.NewLimiter(rl.rps, rl.burst)
		rl.perIP[ip] = l
	}
	return l
}

// Wrap rejects requests over the limit with 429 and code "rate_limited".
func (rl *RateLimiter) Wrap(next http.Handler) http.Handler {
	if rl.rps <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.limiter(GetClientIP(r)).Allow() {
			ErrorResponse(w, http.StatusTooManyRequests, "rate_limited", "Too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}
