package middleware

import (
	"net/http"
	"sync"
	"time"

	"pharmatrade/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ClientIdleTTL is how long a client's bucket is kept after its last request.
const ClientIdleTTL = 10 * time.Minute

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter keeps one token bucket per client IP.
type ClientLimiter struct {
	limit rate.Limit
	burst int

	mu        sync.Mutex
	clients   map[string]*clientBucket
	lastSweep time.Time
	now       func() time.Time
}

// NewClientLimiter converts a requests-per-minute budget into per-client token buckets.
// rpm <= 0 yields an unlimited limiter.
func NewClientLimiter(rpm int) *ClientLimiter {
	l := &ClientLimiter{
		limit:   rate.Inf,
		clients: make(map[string]*clientBucket),
		now:     time.Now,
	}
	if rpm > 0 {
		l.limit = rate.Limit(float64(rpm) / 60.0)
		l.burst = max(rpm/10, 1)
	}
	l.lastSweep = l.now()
	return l
}

// Allow reports whether the client may make a request now.
func (l *ClientLimiter) Allow(client string) bool {
	if l.limit == rate.Inf {
		return true
	}

	l.mu.Lock()
	now := l.now()
	if now.Sub(l.lastSweep) >= ClientIdleTTL {
		for key, b := range l.clients {
			if now.Sub(b.lastSeen) >= ClientIdleTTL {
				delete(l.clients, key)
			}
		}
		l.lastSweep = now
	}
	b, ok := l.clients[client]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[client] = b
	}
	b.lastSeen = now
	l.mu.Unlock()

	return b.limiter.AllowN(now, 1)
}

// Clients returns the number of tracked client buckets.
func (l *ClientLimiter) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// RateLimit rejects requests with 429 once the calling client's bucket is exhausted.
func RateLimit(limiter *ClientLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				response.Error(http.StatusTooManyRequests, "too many requests, retry shortly"))
			return
		}
		c.Next()
	}
}
