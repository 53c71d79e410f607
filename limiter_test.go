package folio

import (
	"testing"
	"time"
)

func TestLimiterBlocksAfterMax(t *testing.T) {
	limiter := NewIPLimiter(2, 200*time.Millisecond)
	ip := "203.0.113.10"

	if !limiter.Allow(ip) {
		t.Fatalf("expected first attempt to be allowed")
	}
	if !limiter.Allow(ip) {
		t.Fatalf("expected second attempt to be allowed")
	}
	if limiter.Allow(ip) {
		t.Fatalf("expected third attempt to be blocked")
	}
}

func TestLimiterResetsAfterWindow(t *testing.T) {
	limiter := NewIPLimiter(1, 150*time.Millisecond)
	ip := "203.0.113.20"

	if !limiter.Allow(ip) {
		t.Fatalf("expected first attempt to be allowed")
	}
	if limiter.Allow(ip) {
		t.Fatalf("expected second attempt to be blocked")
	}

	time.Sleep(200 * time.Millisecond)
	if !limiter.Allow(ip) {
		t.Fatalf("expected attempt after window to be allowed")
	}
}

func TestLimiterIsPerIP(t *testing.T) {
	limiter := NewIPLimiter(1, 200*time.Millisecond)

	if !limiter.Allow("203.0.113.30") {
		t.Fatalf("expected first ip to be allowed")
	}
	if !limiter.Allow("203.0.113.31") {
		t.Fatalf("expected second ip to be allowed independently")
	}
	if limiter.Allow("203.0.113.30") {
		t.Fatalf("expected first ip to be blocked after max")
	}
}

func TestLimiterRetryAfter(t *testing.T) {
	limiter := NewIPLimiter(1, 200*time.Millisecond)
	ip := "203.0.113.50"

	if got := limiter.RetryAfter(ip); got != 0 {
		t.Fatalf("RetryAfter before any attempt = %v, want 0", got)
	}

	limiter.Record(ip)
	wait := limiter.RetryAfter(ip)
	if wait <= 0 || wait > 200*time.Millisecond {
		t.Fatalf("RetryAfter while blocked = %v, want within the window", wait)
	}

	time.Sleep(250 * time.Millisecond)
	if got := limiter.RetryAfter(ip); got != 0 {
		t.Fatalf("RetryAfter past the window = %v, want 0", got)
	}
}

func TestLimiterCheckDoesNotRecord(t *testing.T) {
	limiter := NewIPLimiter(1, 200*time.Millisecond)
	ip := "203.0.113.40"

	// Repeated checks without a recorded failure never consume budget.
	for i := 0; i < 5; i++ {
		if !limiter.Check(ip) {
			t.Fatalf("check %d: expected to pass before any recorded attempt", i+1)
		}
	}

	limiter.Record(ip)
	if limiter.Check(ip) {
		t.Fatalf("expected check to fail after max recorded attempts")
	}
}
