package nav

import (
	"sync"

	"github.com/google/uuid"
)

type cacheEntry struct {
	groups   []NavGroup
	isCustom bool
}

// LayoutCache keeps reconciled layouts per user so repeat loads within a
// process skip the round trip. Entries are deep-copied on the way in and out.
type LayoutCache struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]cacheEntry
}

// NewLayoutCache constructs an empty cache.
func NewLayoutCache() *LayoutCache {
	return &LayoutCache{entries: make(map[uuid.UUID]cacheEntry)}
}

// Get returns the cached layout for a user, if present.
func (c *LayoutCache) Get(userID uuid.UUID) ([]NavGroup, bool, bool) {
	if c == nil {
		return nil, false, false
	}
	c.mu.RLock()
	entry, ok := c.entries[userID]
	c.mu.RUnlock()
	if !ok {
		return nil, false, false
	}
	return CloneGroups(entry.groups), entry.isCustom, true
}

// Put stores the reconciled layout for a user.
func (c *LayoutCache) Put(userID uuid.UUID, groups []NavGroup, isCustom bool) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.entries[userID] = cacheEntry{groups: CloneGroups(groups), isCustom: isCustom}
	c.mu.Unlock()
}

// Clear drops the cached layout for a user.
func (c *LayoutCache) Clear(userID uuid.UUID) {
	if c == nil {
		return
	}
	c.mu.Lock()
	delete(c.entries, userID)
	c.mu.Unlock()
}

// Reset drops every cached layout.
func (c *LayoutCache) Reset() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.entries = make(map[uuid.UUID]cacheEntry)
	c.mu.Unlock()
}
