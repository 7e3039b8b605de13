package service

import (
	"testing"
	"time"
)

func TestLoginRateLimiterAllow(t *testing.T) {
	l := NewLoginRateLimiter(time.Minute, 2)

	if !l.Allow("priya") {
		t.Fatalf("expected first attempt allowed")
	}
	if !l.Allow("priya") {
		t.Fatalf("expected second attempt allowed")
	}
	if l.Allow("priya") {
		t.Fatalf("expected third attempt denied")
	}
	if !l.Allow("otra") {
		t.Fatalf("expected independent key allowed")
	}
}

func TestLoginRateLimiterWindowExpiry(t *testing.T) {
	l := NewLoginRateLimiter(10*time.Millisecond, 1)

	if !l.Allow("priya") {
		t.Fatalf("expected first attempt allowed")
	}
	if l.Allow("priya") {
		t.Fatalf("expected second attempt denied inside window")
	}

	time.Sleep(15 * time.Millisecond)
	if !l.Allow("priya") {
		t.Fatalf("expected attempt allowed after window expired")
	}
}
