package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket implements a simple token bucket rate limiter.
type TokenBucket struct {
	mu         sync.Mutex
	capacity   int
	tokens     int
	refillRate int // tokens per second
	lastRefill time.Time
}

// NewTokenBucket creates a bucket that starts full and refills at
// refillRate tokens per second up to capacity.
func NewTokenBucket(capacity, refillRate int) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

// Allow consumes a token if one is available and reports whether the
// request may proceed.
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()

	if tb.tokens > 0 {
		tb.tokens--
		return true
	}
	return false
}

// Tokens returns the current number of available tokens.
func (tb *TokenBucket) Tokens() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()
	return tb.tokens
}

// refill adds tokens based on elapsed time. Must be called with the lock
// held.
func (tb *TokenBucket) refill() {
	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)

	tokensToAdd := int(elapsed.Seconds() * float64(tb.refillRate))
	if tokensToAdd > 0 {
		tb.tokens += tokensToAdd
		if tb.tokens > tb.capacity {
			tb.tokens = tb.capacity
		}
		tb.lastRefill = now
	}
}

// ClientBuckets manages one token bucket per client identifier.
type ClientBuckets struct {
	mu         sync.RWMutex
	buckets    map[string]*TokenBucket
	capacity   int
	refillRate int

	lastCleanup     time.Time
	cleanupInterval time.Duration
}

// NewClientBuckets creates a per-client bucket collection.
func NewClientBuckets(capacity, refillRate int) *ClientBuckets {
	return &ClientBuckets{
		buckets:         make(map[string]*TokenBucket),
		capacity:        capacity,
		refillRate:      refillRate,
		lastCleanup:     time.Now(),
		cleanupInterval: 10 * time.Minute,
	}
}

// Allow checks whether a request from the given client is allowed.
func (cb *ClientBuckets) Allow(clientID string) bool {
	return cb.getBucket(clientID).Allow()
}

// Tokens returns available tokens for the given client.
func (cb *ClientBuckets) Tokens(clientID string) int {
	return cb.getBucket(clientID).Tokens()
}

func (cb *ClientBuckets) getBucket(clientID string) *TokenBucket {
	cb.mu.RLock()
	bucket, exists := cb.buckets[clientID]
	cb.mu.RUnlock()

	if exists {
		return bucket
	}

	cb.mu.Lock()
	defer cb.mu.Unlock()

	// Another goroutine might have created it between the locks.
	if bucket, exists := cb.buckets[clientID]; exists {
		return bucket
	}

	bucket = NewTokenBucket(cb.capacity, cb.refillRate)
	cb.buckets[clientID] = bucket

	cb.maybeCleanup()

	return bucket
}

// maybeCleanup removes buckets that have been idle long enough to refill
// completely. Must be called with the write lock held.
func (cb *ClientBuckets) maybeCleanup() {
	now := time.Now()
	if now.Sub(cb.lastCleanup) < cb.cleanupInterval {
		return
	}

	cutoff := now.Add(-30 * time.Minute)
	for clientID, bucket := range cb.buckets {
		if bucket.tokens == bucket.capacity && bucket.lastRefill.Before(cutoff) {
			delete(cb.buckets, clientID)
		}
	}

	cb.lastCleanup = now
}

// Stats returns counters about the bucket collection.
func (cb *ClientBuckets) Stats() map[string]interface{} {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return map[string]interface{}{
		"total_clients": len(cb.buckets),
		"capacity":      cb.capacity,
		"refill_rate":   cb.refillRate,
	}
}
