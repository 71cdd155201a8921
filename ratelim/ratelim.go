package ratelim

import (
	"net/http"
	"sync"
	"time"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/time/rate"
)

// RateLimiter structure
type RateLimiter struct {
	visitors map[string]*rate.Limiter
	mu       sync.Mutex
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*rate.Limiter),
	}
}

// Get or create a rate limiter for an IP
func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, exists := rl.visitors[ip]; exists {
		return limiter
	}

	// Allow 5 requests per second with a burst of 10
	limiter := rate.NewLimiter(5, 10)
	rl.visitors[ip] = limiter

	// Clean up old IPs after 10 minutes
	go func() {
		time.Sleep(10 * time.Minute)
		rl.mu.Lock()
		delete(rl.visitors, ip)
		rl.mu.Unlock()
	}()

	return limiter
}

// Limit enforces the per-IP limit on a route.
func (rl *RateLimiter) Limit(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		limiter := rl.getLimiter(r.RemoteAddr)

		if !limiter.Allow() {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}

		next(w, r, ps)
	}
}

var defaultLimiter = NewRateLimiter()

// RateLimit wraps a route with the shared default limiter.
func RateLimit(next httprouter.Handle) httprouter.Handle {
	return defaultLimiter.Limit(next)
}
