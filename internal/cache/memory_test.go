package cache

import (
	"strings"
	"testing"
	"time"
)

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Error("Get() on empty cache reported a hit")
	}

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got, ok := c.Get("k"); !ok || string(got) != "v" {
		t.Errorf("Get(k) = %q, %v; want v, true", got, ok)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok := c.Get("k"); ok {
		t.Error("Get() after Delete() reported a hit")
	}

	_ = c.Set("a", []byte("1"), time.Minute)
	_ = c.Set("b", []byte("2"), time.Minute)
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, ok := c.Get("a"); ok {
		t.Error("Get() after Clear() reported a hit")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	_ = c.Set("k", []byte("v"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Error("Get() returned an expired entry")
	}
}

func TestNoop(t *testing.T) {
	var c Cache = Noop{}
	_ = c.Set("k", []byte("v"), time.Minute)
	if _, ok := c.Get("k"); ok {
		t.Error("Noop cache reported a hit")
	}
}

func TestKey(t *testing.T) {
	a := Key("news", "endpoint=top-headlines&country=us")
	b := Key("news", "endpoint=top-headlines&country=us")
	c := Key("news", "endpoint=top-headlines&country=in")

	if a != b {
		t.Errorf("Key() not deterministic: %q vs %q", a, b)
	}
	if a == c {
		t.Error("different requests produced the same key")
	}
	if !strings.HasPrefix(a, "globex:v1:news:") {
		t.Errorf("Key() = %q, want globex:v1:news: prefix", a)
	}
}
