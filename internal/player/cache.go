package player

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/IdleHunt_Go/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// cachedSnapshotEntry wraps a combat snapshot with version metadata for cache
// invalidation
type cachedSnapshotEntry struct {
	Version  string
	Snapshot domain.CombatSnapshot
	CachedAt time.Time
}

// snapshotCache provides an in-memory LRU cache for combat snapshot lookups
// with time-based expiration and version-based invalidation to prevent stale data.
type snapshotCache struct {
	lru *expirable.LRU[int64, *cachedSnapshotEntry]
}

// newSnapshotCache creates a new snapshot cache with the specified size and TTL
func newSnapshotCache(size int, ttl time.Duration) *snapshotCache {
	return &snapshotCache{
		lru: expirable.NewLRU[int64, *cachedSnapshotEntry](size, nil, ttl),
	}
}

// Get retrieves a snapshot from the cache.
// Returns (snapshot, true) if found and version matches.
func (c *snapshotCache) Get(playerID int64) (domain.CombatSnapshot, bool) {
	entry, found := c.lru.Get(playerID)
	if !found {
		return domain.CombatSnapshot{}, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(playerID)
		return domain.CombatSnapshot{}, false
	}

	return entry.Snapshot, true
}

// Set stores a snapshot in the cache with current schema version
func (c *snapshotCache) Set(playerID int64, snapshot domain.CombatSnapshot) {
	c.lru.Add(playerID, &cachedSnapshotEntry{
		Version:  CacheSchemaVersion,
		Snapshot: snapshot,
		CachedAt: time.Now(),
	})
}

// Invalidate removes a player's snapshot from the cache.
// Useful when player stats are updated.
func (c *snapshotCache) Invalidate(playerID int64) {
	c.lru.Remove(playerID)
}

// Clear removes all entries from the cache
func (c *snapshotCache) Clear() {
	c.lru.Purge()
}
