package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_AllowWithinBurst(t *testing.T) {
	limiter := NewLimiter(1, 3)

	url := "https://example.com/page"
	for i := 0; i < 3; i++ {
		if !limiter.Allow(url) {
			t.Errorf("request %d within burst should be allowed", i)
		}
	}
	if limiter.Allow(url) {
		t.Error("request beyond burst should be denied")
	}
}

func TestLimiter_PerDomainIsolation(t *testing.T) {
	limiter := NewLimiter(1, 1)

	if !limiter.Allow("https://a.example.com/x") {
		t.Error("first request to domain A should be allowed")
	}
	if !limiter.Allow("https://b.example.com/x") {
		t.Error("first request to domain B should be allowed despite A's usage")
	}
	if limiter.Allow("https://a.example.com/y") {
		t.Error("second immediate request to domain A should be denied")
	}
}

func TestLimiter_WaitRespectsContext(t *testing.T) {
	limiter := NewLimiter(0.01, 1)
	url := "https://slow.example.com/"

	// Exhaust the burst
	_ = limiter.Allow(url)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := limiter.Wait(ctx, url); err == nil {
		t.Error("expected context deadline error while waiting")
	}
}

func TestLimiter_SetDomainRate(t *testing.T) {
	limiter := NewLimiter(0.01, 1)
	limiter.SetDomainRate("fast.example.com", 1000, 100)

	allowed := 0
	for i := 0; i < 10; i++ {
		if limiter.Allow("https://fast.example.com/p") {
			allowed++
		}
	}
	if allowed != 10 {
		t.Errorf("expected custom rate to allow 10 requests, got %d", allowed)
	}
}

func TestLimiter_InvalidURL(t *testing.T) {
	limiter := NewLimiter(1, 1)
	if limiter.Allow("://not a url") {
		t.Error("invalid URL should not be allowed")
	}
}
