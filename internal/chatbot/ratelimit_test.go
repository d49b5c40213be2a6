package chatbot

import (
	"sync"
	"testing"
	"time"
)

func TestRateLimiterAllowsUpToMax(t *testing.T) {
	l := NewRateLimiter(30, time.Minute)

	for i := 0; i < 30; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Fatalf("request 31 should be rejected")
	}
	// other clients are unaffected
	if !l.Allow("5.6.7.8") {
		t.Fatalf("different client should be allowed")
	}
}

func TestRateLimiterWindowReset(t *testing.T) {
	l := NewRateLimiter(2, 40*time.Millisecond)

	if !l.Allow("k") || !l.Allow("k") {
		t.Fatalf("first two requests should be allowed")
	}
	if l.Allow("k") {
		t.Fatalf("third request in window should be rejected")
	}

	time.Sleep(60 * time.Millisecond)

	if !l.Allow("k") {
		t.Fatalf("request after window elapsed should be allowed")
	}
}

func TestRateLimiterSweep(t *testing.T) {
	l := NewRateLimiter(5, 20*time.Millisecond)

	l.Allow("old")
	time.Sleep(40 * time.Millisecond)
	l.Allow("fresh")

	l.Sweep()

	if got := l.Len(); got != 1 {
		t.Fatalf("expected 1 bucket after sweep, got %d", got)
	}
	// sweeping an expired bucket must not reset an active one
	if !l.Allow("fresh") {
		t.Fatalf("fresh client should still be allowed")
	}
}

func TestRateLimiterConcurrent(t *testing.T) {
	l := NewRateLimiter(50, time.Minute)

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("shared") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowed != 50 {
		t.Fatalf("expected exactly 50 allowed, got %d", allowed)
	}
}
