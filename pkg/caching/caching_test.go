package caching

import (
	"bytes"
	"testing"
	"time"
)

func TestCacheRoundTrip(t *testing.T) {
	c, err := New(t.TempDir(), time.Minute)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	url := "https://example.org/feed.xml"
	body := []byte("<rss></rss>")

	if _, ok := c.Get(url); ok {
		t.Error("Get() before Set() should miss")
	}
	if err := c.Set(url, body); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, ok := c.Get(url)
	if !ok {
		t.Fatal("Get() after Set() should hit")
	}
	if !bytes.Equal(got, body) {
		t.Errorf("Get() = %q, want %q", got, body)
	}
}

func TestCacheKeysAreIndependent(t *testing.T) {
	c, err := New(t.TempDir(), time.Minute)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := c.Set("https://a.example/feed", []byte("a")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, ok := c.Get("https://b.example/feed"); ok {
		t.Error("Get() for a different URL should miss")
	}
}

func TestCacheDisabledByZeroTTL(t *testing.T) {
	c, err := New(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := c.Set("https://example.org/feed", []byte("x")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, ok := c.Get("https://example.org/feed"); ok {
		t.Error("zero TTL cache should never hit")
	}
}
