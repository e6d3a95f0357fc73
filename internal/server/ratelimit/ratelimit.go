// Package ratelimit throttles API clients with per-client token buckets.
package ratelimit

import (
	"sync"
	"time"
)

// bucket refills continuously at rate tokens per second up to capacity.
type bucket struct {
	mu         sync.Mutex
	capacity   float64
	rate       float64
	tokens     float64
	lastRefill time.Time
	lastUsed   time.Time
}

func newBucket(capacity int, rate float64, now time.Time) *bucket {
	return &bucket{
		capacity:   float64(capacity),
		rate:       rate,
		tokens:     float64(capacity),
		lastRefill: now,
		lastUsed:   now,
	}
}

func (b *bucket) refill(now time.Time) {
	elapsed := now.Sub(b.lastRefill).Seconds()
	if elapsed > 0 {
		b.tokens = min(b.capacity, b.tokens+elapsed*b.rate)
	}
	b.lastRefill = now
}

// take consumes a token if one is available and reports the state afterwards.
func (b *bucket) take(now time.Time) (bool, Info) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill(now)
	b.lastUsed = now

	allowed := b.tokens >= 1
	if allowed {
		b.tokens--
	}

	info := Info{
		Allowed:   allowed,
		Limit:     int(b.capacity),
		Remaining: int(b.tokens),
		ResetTime: now.Add(time.Duration((b.capacity - b.tokens) / b.rate * float64(time.Second))),
	}
	if !allowed {
		info.RetryAfter = time.Duration((1 - b.tokens) / b.rate * float64(time.Second))
	}
	return allowed, info
}

func (b *bucket) idleSince(now time.Time) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return now.Sub(b.lastUsed)
}

// Info describes the limiter state after a request.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter tracks one bucket per client and rule.
type Limiter struct {
	config *Config
	now    func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket

	stop     chan struct{}
	stopOnce sync.Once
}

// NewLimiter creates a limiter. A nil config allows 10 requests per second
// with a burst of 20.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{Enabled: true, RequestsPerSecond: 10, Burst: 20, CleanupInterval: 5 * time.Minute, IdleTTL: time.Hour}
	}
	l := &Limiter{
		config:  config,
		now:     time.Now,
		buckets: make(map[string]*bucket),
		stop:    make(chan struct{}),
	}
	if config.Enabled && config.CleanupInterval > 0 {
		go l.cleanupLoop(config.CleanupInterval)
	}
	return l
}

// Allow reports whether clientID may make this request now.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Allowlist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blocklist[clientID] {
		return false, Info{}
	}

	rate, burst, key := l.config.RequestsPerSecond, l.config.Burst, "default"
	if rule := MatchRule(method, path, l.config.Rules); rule != nil {
		rate, burst, key = rule.RequestsPerSecond, rule.Burst, rule.Method+" "+rule.Path
	}
	if rate <= 0 {
		return true, Info{Allowed: true}
	}
	if burst < 1 {
		burst = 1
	}

	return l.bucketFor(clientID+"|"+key, burst, rate).take(l.now())
}

func (l *Limiter) bucketFor(key string, burst int, rate float64) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.buckets[key]
	if !ok {
		b = newBucket(burst, rate, l.now())
		l.buckets[key] = b
	}
	return b
}

func (l *Limiter) cleanupLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.evictIdle()
		case <-l.stop:
			return
		}
	}
}

// evictIdle drops buckets unused for longer than IdleTTL.
func (l *Limiter) evictIdle() {
	ttl := l.config.IdleTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.idleSince(now) > ttl {
			delete(l.buckets, key)
		}
	}
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}
