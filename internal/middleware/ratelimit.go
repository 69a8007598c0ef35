package middleware

import (
	"context"
	"encoding/json"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleTTL is how long an unused per-client limiter is kept.
const idleTTL = 10 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiter hands out one token bucket per client IP.
type clientLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
	now     func() time.Time
}

func newClientLimiter(rps float64, burst int) *clientLimiter {
	return &clientLimiter{
		clients: make(map[string]*client),
		limit:   rate.Limit(rps),
		burst:   burst,
		now:     time.Now,
	}
}

func (cl *clientLimiter) get(ip string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	c, ok := cl.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(cl.limit, cl.burst)}
		cl.clients[ip] = c
	}
	c.lastSeen = cl.now()
	return c.limiter
}

// sweep drops limiters idle for longer than ttl and returns how many remain.
func (cl *clientLimiter) sweep(ttl time.Duration) int {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cutoff := cl.now().Add(-ttl)
	for ip, c := range cl.clients {
		if c.lastSeen.Before(cutoff) {
			delete(cl.clients, ip)
		}
	}
	return len(cl.clients)
}

func (cl *clientLimiter) run(ctx context.Context) {
	ticker := time.NewTicker(idleTTL)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cl.sweep(idleTTL)
		}
	}
}

// RateLimit returns middleware that limits requests per client IP.
// rps is the allowed requests per second, burst is the maximum burst size.
// The idle-client sweeper stops when ctx is cancelled.
func RateLimit(ctx context.Context, rps float64, burst int) func(http.Handler) http.Handler {
	limiter := newClientLimiter(rps, burst)
	go limiter.run(ctx)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			res := limiter.get(ip).Reserve()
			if delay := res.Delay(); delay > 0 {
				res.Cancel()
				retry := int(math.Ceil(delay.Seconds()))
				if delay == rate.InfDuration {
					retry = 60
				}
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{"error": "too many requests"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
