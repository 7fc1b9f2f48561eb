package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_AllowPerHost(t *testing.T) {
	l := NewLimiter(0.001, 1)

	if !l.Allow("https://gnews.io/api/v4/search") {
		t.Fatal("first request to gnews.io should be allowed")
	}
	if l.Allow("https://gnews.io/api/v4/top-headlines") {
		t.Error("second request to gnews.io should be limited")
	}
	if !l.Allow("https://newsapi.org/v2/everything") {
		t.Error("first request to newsapi.org should be allowed")
	}
}

func TestLimiter_Unlimited(t *testing.T) {
	l := NewLimiter(0, 0)
	for i := 0; i < 100; i++ {
		if !l.Allow("https://gnews.io/") {
			t.Fatalf("request %d limited with rate disabled", i)
		}
	}
}

func TestLimiter_WaitRespectsContext(t *testing.T) {
	l := NewLimiter(0.001, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx, "https://gnews.io/"); err != nil {
		t.Fatalf("first Wait() error = %v", err)
	}
	if err := l.Wait(ctx, "https://gnews.io/"); err == nil {
		t.Error("second Wait() should fail before the next token is available")
	}
}

func TestLimiter_SetHostRate(t *testing.T) {
	l := NewLimiter(0.001, 1)
	l.SetHostRate("newsapi.org", 1000, 5)

	for i := 0; i < 5; i++ {
		if !l.Allow("https://newsapi.org/v2/top-headlines") {
			t.Fatalf("request %d limited despite burst of 5", i)
		}
	}
}

func TestLimiter_InvalidURL(t *testing.T) {
	l := NewLimiter(1, 1)
	if l.Allow("://bad") {
		t.Error("Allow() should reject an unparseable URL")
	}
	if err := l.Wait(context.Background(), "://bad"); err == nil {
		t.Error("Wait() should reject an unparseable URL")
	}
}
