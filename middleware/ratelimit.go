// Copyright (c) 2025 4mubarak.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig holds configuration for the rate limiter middleware.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit (tokens added per second).
	RequestsPerSecond float64
	// Burst is the maximum number of requests allowed in a burst.
	Burst int
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit returns a middleware enforcing a per-client token-bucket rate
// limit, keyed by client IP. Over-limit requests get 429 Too Many Requests.
// Applied to the sign-in, sign-up, and vote endpoints.
func RateLimit(cfg RateLimitConfig) func(http.HandlerFunc) http.HandlerFunc {
	var (
		mu      sync.Mutex
		clients = make(map[string]*clientLimiter)
	)

	getLimiter := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		// Evict entries idle for 10 minutes so the map stays bounded.
		now := time.Now()
		for key, cl := range clients {
			if now.Sub(cl.lastSeen) > 10*time.Minute {
				delete(clients, key)
			}
		}

		if cl, ok := clients[ip]; ok {
			cl.lastSeen = now
			return cl.limiter
		}
		limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
		clients[ip] = &clientLimiter{limiter: limiter, lastSeen: now}
		return limiter
	}

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !getLimiter(GetClientIP(r)).Allow() {
				JSONResponse(w, http.StatusTooManyRequests, map[string]string{
					"error": "Too many requests. Please try again shortly.",
				})
				return
			}
			next(w, r)
		}
	}
}
