package cache

import (
	"context"
	"testing"
	"time"
)

func TestLRUCache(t *testing.T) {
	variants := []byte(`[{"id":10,"sku":"SOFA-10","price":"1500.00"}]`)
	shops := []byte(`[{"id":5,"city":"Минск"}]`)
	materials := []byte(`[{"id":2,"name":"Велюр"}]`)

	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(c *LRUCache, t *testing.T)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, t *testing.T) {
				c.Set("catalog:variants", variants)
				if v, ok := c.Get("catalog:variants"); !ok || string(v) != string(variants) {
					t.Errorf("expected cached variants, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache, t *testing.T) {
				c.Set("catalog:variants", variants)
				time.Sleep(time.Millisecond * 60)
				if _, ok := c.Get("catalog:variants"); ok {
					t.Errorf("expected key to be expired")
				}
			},
		},
		{
			name:     "evict oldest when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, t *testing.T) {
				c.Set("catalog:variants", variants)
				c.Set("catalog:shops", shops)
				c.Set("catalog:materials", materials)
				if _, ok := c.Get("catalog:variants"); ok {
					t.Errorf("expected oldest key to be evicted")
				}
				if v, ok := c.Get("catalog:shops"); !ok || string(v) != string(shops) {
					t.Errorf("expected cached shops, got %v", v)
				}
				if v, ok := c.Get("catalog:materials"); !ok || string(v) != string(materials) {
					t.Errorf("expected cached materials, got %v", v)
				}
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache, t *testing.T) {
				c.Set("catalog:shops", shops)
				time.Sleep(time.Millisecond * 30)
				updated := []byte(`[{"id":5,"city":"Минск"},{"id":6,"city":"Гомель"}]`)
				c.Set("catalog:shops", updated)
				time.Sleep(time.Millisecond * 30)
				if v, ok := c.Get("catalog:shops"); !ok || string(v) != string(updated) {
					t.Errorf("expected updated shops, got=%v", v)
				}
			},
		},
		{
			name:     "janitor removes expired",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache, t *testing.T) {
				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()
				c.StartJanitor(ctx)

				c.Set("catalog:variants", variants)
				time.Sleep(time.Millisecond * 60)

				c.cleanup()

				if _, ok := c.Get("catalog:variants"); ok {
					t.Errorf("expected janitor cleanup to remove expired key")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLRUCache(tt.capacity, tt.ttl)
			tt.actions(c, t)
		})
	}
}
