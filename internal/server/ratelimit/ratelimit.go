// Package ratelimit provides per-client rate limiting for the optimizer
// API using a token bucket per client.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket allows a burst of requests with tokens refilling at a
// steady rate.
type tokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

func (tb *tokenBucket) refillLocked(now time.Time) {
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now
}

// allow consumes a token if one is available.
func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refillLocked(time.Now())
	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// status reports remaining tokens and when the bucket refills without
// consuming a token.
func (tb *tokenBucket) status() (remaining int, resetTime time.Time) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	tb.refillLocked(now)

	remaining = int(tb.tokens)
	if tb.tokens < float64(tb.capacity) {
		needed := float64(tb.capacity) - tb.tokens
		resetTime = now.Add(time.Duration(needed / tb.refillRate * float64(time.Second)))
	} else {
		resetTime = now
	}
	return remaining, resetTime
}

// Info describes the rate limit state returned with each decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter manages token buckets for all clients.
type Limiter struct {
	config *Config

	mu      sync.RWMutex
	buckets map[string]*tokenBucket

	accessMu   sync.RWMutex
	lastAccess map[string]time.Time

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup
// goroutine when enabled.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}

	l := &Limiter{
		config:     config,
		buckets:    make(map[string]*tokenBucket),
		lastAccess: make(map[string]time.Time),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanup()
	}

	return l
}

// Allow decides whether the client may issue another request.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	bucket := l.bucketFor(clientID)

	l.accessMu.Lock()
	l.lastAccess[clientID] = time.Now()
	l.accessMu.Unlock()

	allowed := bucket.allow()
	remaining, resetTime := bucket.status()

	info := Info{
		Allowed:   allowed,
		Limit:     l.config.Limit,
		Remaining: remaining,
		ResetTime: resetTime,
	}
	if !allowed {
		info.RetryAfter = time.Until(resetTime)
		if info.RetryAfter < 0 {
			info.RetryAfter = 0
		}
	}
	return allowed, info
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
		close(l.cleanupStop)
	}
}

func (l *Limiter) bucketFor(clientID string) *tokenBucket {
	l.mu.RLock()
	bucket, ok := l.buckets[clientID]
	l.mu.RUnlock()
	if ok {
		return bucket
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if bucket, ok = l.buckets[clientID]; ok {
		return bucket
	}

	refillRate := float64(l.config.Limit) / l.config.Window.Seconds()
	bucket = newTokenBucket(l.config.Burst, refillRate)
	l.buckets[clientID] = bucket
	return bucket
}

// cleanup drops buckets for clients idle longer than the cleanup
// interval.
func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupStop:
			return
		case now := <-l.cleanupTicker.C:
			cutoff := now.Add(-l.config.CleanupInterval)

			l.accessMu.Lock()
			stale := make([]string, 0)
			for clientID, last := range l.lastAccess {
				if last.Before(cutoff) {
					stale = append(stale, clientID)
					delete(l.lastAccess, clientID)
				}
			}
			l.accessMu.Unlock()

			l.mu.Lock()
			for _, clientID := range stale {
				delete(l.buckets, clientID)
			}
			l.mu.Unlock()
		}
	}
}
