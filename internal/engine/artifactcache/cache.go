// Package artifactcache implements the two tier compiled artifact cache.
// A byte-budgeted memory tier sits in front of an optional durable store.
package artifactcache

import (
	"context"
	"sync/atomic"

	"go.trai.ch/solidc/internal/adapters/lru"
	"go.trai.ch/solidc/internal/core/domain"
	"go.trai.ch/solidc/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

// Options configures a Cache.
type Options struct {
	MemoryBudget int64
	Disabled     bool
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits      int64 `json:"hits"`
	DiskHits  int64 `json:"diskHits"`
	Misses    int64 `json:"misses"`
	Compiles  int64 `json:"compiles"`
	Evictions int64 `json:"evictions"`
}

// CompileFunc produces the artifact for a fingerprint on a cache miss.
type CompileFunc func(ctx context.Context) (*domain.Artifact, error)

// Cache maps fingerprints to compiled artifacts.
// Concurrent requests for the same fingerprint share a single compilation.
type Cache struct {
	logger   ports.Logger
	store    ports.ArtifactStore
	memory   *lru.Sized[domain.Fingerprint, *domain.Artifact]
	disabled bool
	group    singleflight.Group

	hits     atomic.Int64
	diskHits atomic.Int64
	misses   atomic.Int64
	compiles atomic.Int64
}

// New creates a Cache. store may be nil, in which case only the memory tier is used.
func New(logger ports.Logger, store ports.ArtifactStore, opts Options) (*Cache, error) {
	memory, err := lru.New[domain.Fingerprint, *domain.Artifact](opts.MemoryBudget, nil)
	if err != nil {
		return nil, err
	}
	return &Cache{
		logger:   logger,
		store:    store,
		memory:   memory,
		disabled: opts.Disabled,
	}, nil
}

// Get returns the artifact for fp from memory, then from the durable store.
// Store faults are logged and reported as a miss.
func (c *Cache) Get(fp domain.Fingerprint) (*domain.Artifact, bool) {
	if c.disabled {
		return nil, false
	}

	if a, ok := c.memory.Get(fp); ok {
		c.hits.Add(1)
		return a, true
	}

	if c.store != nil {
		a, err := c.store.Get(fp)
		if err != nil {
			c.logger.Warn("artifact store read failed, recompiling", "fingerprint", fp.String(), "error", err)
		}
		if a != nil {
			c.diskHits.Add(1)
			c.memory.Add(fp, a, a.ComputeSize())
			return a, true
		}
	}

	c.misses.Add(1)
	return nil, false
}

// Put records artifact under fp in both tiers. Store faults are logged.
func (c *Cache) Put(fp domain.Fingerprint, artifact *domain.Artifact) {
	if c.disabled || artifact == nil {
		return
	}

	c.memory.Add(fp, artifact, artifact.ComputeSize())

	if c.store != nil {
		if err := c.store.Put(fp, artifact); err != nil {
			c.logger.Warn("artifact store write failed", "fingerprint", fp.String(), "error", err)
		}
	}
}

// GetOrCompile returns the cached artifact for fp, or runs compile once for
// all concurrent callers and caches its result. The boolean reports a cache hit.
// A failed compilation is not cached and every waiting caller receives its error.
func (c *Cache) GetOrCompile(ctx context.Context, fp domain.Fingerprint, compile CompileFunc) (*domain.Artifact, bool, error) {
	if c.disabled {
		c.compiles.Add(1)
		a, err := compile(ctx)
		return a, false, err
	}

	if a, ok := c.Get(fp); ok {
		return a, true, nil
	}

	v, err, _ := c.group.Do(fp.String(), func() (any, error) {
		if a, ok := c.memory.Get(fp); ok {
			return a, nil
		}

		c.compiles.Add(1)
		a, err := compile(ctx)
		if err != nil {
			return nil, err
		}
		c.Put(fp, a)
		return a, nil
	})
	if err != nil {
		return nil, false, err
	}
	return v.(*domain.Artifact), false, nil
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		DiskHits:  c.diskHits.Load(),
		Misses:    c.misses.Load(),
		Compiles:  c.compiles.Load(),
		Evictions: c.memory.Evictions(),
	}
}

// Purge empties both tiers.
func (c *Cache) Purge() error {
	c.memory.Purge()
	if c.store == nil {
		return nil
	}
	return c.store.Purge()
}
