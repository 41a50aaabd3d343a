package catalog

import (
	"context"
	"sync"
	"time"

	"kapehan/internal/models"
)

// Snapshot is a cached product listing plus the moment it was taken. The
// field names match the persisted JSON blob.
type Snapshot struct {
	Products  []models.Product `json:"data"`
	Timestamp time.Time        `json:"timestamp"`
}

// Expired reports whether the snapshot is older than ttl at the given time.
func (s *Snapshot) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.Timestamp) > ttl
}

// Store persists catalog snapshots. Get returns (nil, nil) when no snapshot
// exists under the key. Expiry is the catalog's concern, not the store's: an
// expired snapshot must stay readable so it can serve as a stale fallback.
type Store interface {
	Get(ctx context.Context, key string) (*Snapshot, error)
	Set(ctx context.Context, key string, snap *Snapshot) error
	Invalidate(ctx context.Context, key string) error
}

// MemoryStore keeps snapshots in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	snaps map[string]*Snapshot
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snaps: make(map[string]*Snapshot)}
}

func (m *MemoryStore) Get(ctx context.Context, key string) (*Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap, ok := m.snaps[key]
	if !ok {
		return nil, nil
	}
	copied := *snap
	return &copied, nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, snap *Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *snap
	m.snaps[key] = &copied
	return nil
}

func (m *MemoryStore) Invalidate(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.snaps, key)
	return nil
}
