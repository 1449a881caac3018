package cache

import (
	"testing"
	"time"
)

func TestSetGet(t *testing.T) {
	c := NewTTLCache()
	c.Set("k", 42, 0)
	v, ok := c.Get("k")
	if !ok || v.(int) != 42 {
		t.Fatalf("got %v %v", v, ok)
	}
}

func TestExpiry(t *testing.T) {
	c := NewTTLCache()
	c.Set("k", "v", time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected expired entry")
	}
}

func TestMiss(t *testing.T) {
	c := NewTTLCache()
	if _, ok := c.Get("absent"); ok {
		t.Fatalf("expected miss")
	}
}
