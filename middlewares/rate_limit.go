package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientLimiters hands out one token bucket per client IP. Entries idle
// longer than staleAfter are pruned so the map does not grow with every
// address ever seen.
type clientLimiters struct {
	mu         sync.Mutex
	clients    map[string]*clientEntry
	newLimiter func() *rate.Limiter
}

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const staleAfter = 10 * time.Minute

func newClientLimiters(newLimiter func() *rate.Limiter) *clientLimiters {
	cl := &clientLimiters{
		clients:    make(map[string]*clientEntry),
		newLimiter: newLimiter,
	}
	go cl.prune()
	return cl
}

func (cl *clientLimiters) get(ip string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	entry, ok := cl.clients[ip]
	if !ok {
		entry = &clientEntry{limiter: cl.newLimiter()}
		cl.clients[ip] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

func (cl *clientLimiters) prune() {
	for range time.Tick(time.Minute) {
		cl.mu.Lock()
		for ip, entry := range cl.clients {
			if time.Since(entry.lastSeen) > staleAfter {
				delete(cl.clients, ip)
			}
		}
		cl.mu.Unlock()
	}
}

var (
	// readClients paces general browsing: the index, group and profile
	// listings, post detail and the feed. Generous enough that a scrolling
	// client never hits it.
	readClients = newClientLimiters(func() *rate.Limiter {
		return rate.NewLimiter(rate.Every(time.Second), 100)
	})

	// loginClients throttles credential guessing on /login. A small burst
	// covers honest typos; sustained attempts refill very slowly.
	loginClients = newClientLimiters(func() *rate.Limiter {
		return rate.NewLimiter(rate.Every(10*time.Second), 20)
	})
)

// RateLimitMiddleware applies the per-IP request budget to every route.
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !readClients.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please slow down.",
			})
			return
		}
		c.Next()
	}
}

// LoginRateLimitMiddleware applies the stricter login budget. The login
// bucket is separate from the general one so a locked-out address can still
// browse.
func LoginRateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !loginClients.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many login attempts. Please wait and try again.",
			})
			return
		}
		c.Next()
	}
}
