package cache

import (
	"context"
	"log"
)

// ProbeFunc checks whether an editor currently answers on port.
type ProbeFunc func(ctx context.Context, port string) bool

// PortCache combines a Store with a liveness probe. Get never hands out a
// port it has not just verified; a stale value is simply not trusted this
// round, it stays in storage until a later Set or Clear overwrites it.
type PortCache struct {
	store Store
	probe ProbeFunc
}

// New creates a PortCache backed by store, validating reads with probe.
func New(store Store, probe ProbeFunc) *PortCache {
	return &PortCache{store: store, probe: probe}
}

// Get returns the cached port if it passes a fresh liveness probe.
func (c *PortCache) Get(ctx context.Context) (string, bool) {
	port, ok := c.store.Get()
	if !ok {
		return "", false
	}
	if !c.probe(ctx, port) {
		return "", false
	}
	return port, true
}

// Set stores port as the last known-good value. Persistence failures are
// logged, not returned; resolution does not depend on the write landing.
func (c *PortCache) Set(port string) {
	if err := c.store.Set(port); err != nil {
		log.Printf("cache port %s: %v", port, err)
	}
}

// Clear removes the stored port.
func (c *PortCache) Clear() {
	if err := c.store.Clear(); err != nil {
		log.Printf("clear cached port: %v", err)
	}
}
