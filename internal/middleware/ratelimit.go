package middleware

import (
	"net/http"
	"sync"
	"time"
)

type window struct {
	count   int
	startAt time.Time
}

// RateLimiter counts requests per client IP in fixed windows. Runs after
// RealIP so RemoteAddr carries the client address.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*window
	limit   int
	span    time.Duration
}

func NewRateLimiter(limit int, span time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*window),
		limit:   limit,
		span:    span,
	}

	go rl.sweep()

	return rl
}

// sweep drops windows that have fully expired so the map stays bounded.
func (rl *RateLimiter) sweep() {
	for {
		time.Sleep(rl.span)
		rl.mu.Lock()
		for ip, w := range rl.clients {
			if time.Since(w.startAt) > rl.span {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.clients[ip]
	if !ok || now.Sub(w.startAt) > rl.span {
		rl.clients[ip] = &window{count: 1, startAt: now}
		return true
	}

	w.count++
	return w.count <= rl.limit
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(r.RemoteAddr) {
			writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.", r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
