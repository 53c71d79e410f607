package folio

import (
	"sync"
	"time"
)

// IPLimiter rate-limits requests per IP address. It guards the admin login
// against password guessing and the public contact form against flooding.
type IPLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	max      int
	window   time.Duration
}

// NewIPLimiter creates an IPLimiter that allows max attempts per window.
func NewIPLimiter(max int, window time.Duration) *IPLimiter {
	l := &IPLimiter{
		attempts: make(map[string][]time.Time),
		max:      max,
		window:   window,
	}
	go l.cleanup()
	return l
}

func (l *IPLimiter) cleanup() {
	ticker := time.NewTicker(l.window)
	for range ticker.C {
		cutoff := time.Now().Add(-l.window)
		l.mu.Lock()
		for ip, hits := range l.attempts {
			kept := hits[:0]
			for _, t := range hits {
				if t.After(cutoff) {
					kept = append(kept, t)
				}
			}
			if len(kept) == 0 {
				delete(l.attempts, ip)
			} else {
				l.attempts[ip] = kept
			}
		}
		l.mu.Unlock()
	}
}

// Allow checks if the IP has not exceeded the rate limit and records the
// attempt. Use for endpoints where every request counts, like the contact
// form. Login flows prefer Check + Record so successes don't count.
func (l *IPLimiter) Allow(ip string) bool {
	if !l.Check(ip) {
		return false
	}
	l.Record(ip)
	return true
}

// Check returns true if the IP has not exceeded the rate limit.
// It does not record an attempt — call Record separately on failure.
func (l *IPLimiter) Check(ip string) bool {
	cutoff := time.Now().Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	hits := l.attempts[ip]
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	l.attempts[ip] = kept
	return len(kept) < l.max
}

// Record registers an attempt for the given IP.
func (l *IPLimiter) Record(ip string) {
	l.mu.Lock()
	l.attempts[ip] = append(l.attempts[ip], time.Now())
	l.mu.Unlock()
}

// RetryAfter returns how long the IP must wait until its oldest tracked
// attempt leaves the window. Zero when the IP is not currently blocked.
func (l *IPLimiter) RetryAfter(ip string) time.Duration {
	cutoff := time.Now().Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	hits := l.attempts[ip]
	recent := 0
	var oldest time.Time
	for _, t := range hits {
		if t.After(cutoff) {
			if recent == 0 || t.Before(oldest) {
				oldest = t
			}
			recent++
		}
	}
	if recent < l.max {
		return 0
	}
	return time.Until(oldest.Add(l.window))
}
