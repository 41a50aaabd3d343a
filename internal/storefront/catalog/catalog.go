// Package catalog caches the product listing fetched from the items API.
// Snapshots live in a pluggable Store and expire after a TTL; an expired
// snapshot is still usable as a fallback when a refetch fails.
package catalog

import (
	"context"
	"sync"
	"time"

	"kapehan/internal/logger"
	"kapehan/internal/models"
)

const (
	// DefaultCacheKey is the store key for the menu snapshot.
	DefaultCacheKey = "menu_items_cache"

	// DefaultTTL is how long a snapshot stays fresh.
	DefaultTTL = 5 * time.Minute
)

// Fetcher retrieves the full menu from the items API.
type Fetcher interface {
	GetAllItems(ctx context.Context) ([]models.MenuItem, error)
}

// Catalog serves the product listing, hitting the Fetcher only when the
// cached snapshot is missing or expired.
type Catalog struct {
	fetcher Fetcher
	store   Store
	logger  *logger.Logger
	key     string
	ttl     time.Duration
	now     func() time.Time

	mu      sync.Mutex
	seq     uint64 // last fetch started
	applied uint64 // last fetch whose result was kept
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithKey overrides the store key.
func WithKey(key string) Option {
	return func(c *Catalog) { c.key = key }
}

// WithTTL overrides the snapshot lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(c *Catalog) { c.ttl = ttl }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) { c.now = now }
}

// New creates a catalog over the given fetcher and snapshot store.
func New(fetcher Fetcher, store Store, log *logger.Logger, opts ...Option) *Catalog {
	c := &Catalog{
		fetcher: fetcher,
		store:   store,
		logger:  log,
		key:     DefaultCacheKey,
		ttl:     DefaultTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Products returns the product listing. A fresh snapshot is served without
// touching the network. An expired or missing snapshot triggers a fetch; if
// the fetch fails and an old snapshot exists, the stale products are served
// instead of the error.
func (c *Catalog) Products(ctx context.Context) ([]models.Product, error) {
	snap, err := c.store.Get(ctx, c.key)
	if err != nil {
		c.logger.Error("cache_read_failed", "", "Failed to read catalog snapshot", err)
		snap = nil
	}

	if snap != nil && !snap.Expired(c.now(), c.ttl) {
		return snap.Products, nil
	}

	if snap != nil {
		if err := c.store.Invalidate(ctx, c.key); err != nil {
			c.logger.Error("cache_invalidate_failed", "", "Failed to drop expired snapshot", err)
		}
	}

	products, err := c.fetch(ctx)
	if err != nil {
		if snap != nil {
			c.logger.Error("catalog_fetch_failed", "", "Serving stale catalog snapshot", err)
			return snap.Products, nil
		}
		return nil, err
	}
	return products, nil
}

// Refresh drops any cached snapshot and fetches the menu again.
func (c *Catalog) Refresh(ctx context.Context) ([]models.Product, error) {
	if err := c.store.Invalidate(ctx, c.key); err != nil {
		c.logger.Error("cache_invalidate_failed", "", "Failed to drop catalog snapshot", err)
	}
	return c.fetch(ctx)
}

// fetch performs one network fetch and persists the result. Each fetch takes
// a sequence number when it starts; a response whose number is at or below
// the last applied one lost the race to a newer fetch and is discarded in
// favor of the snapshot already stored.
func (c *Catalog) fetch(ctx context.Context) ([]models.Product, error) {
	c.mu.Lock()
	c.seq++
	mySeq := c.seq
	c.mu.Unlock()

	items, err := c.fetcher.GetAllItems(ctx)
	if err != nil {
		return nil, err
	}
	products := models.ProductsFromMenuItems(items)

	c.mu.Lock()
	if mySeq <= c.applied {
		c.mu.Unlock()
		if snap, err := c.store.Get(ctx, c.key); err == nil && snap != nil {
			return snap.Products, nil
		}
		return products, nil
	}
	c.applied = mySeq
	c.mu.Unlock()

	snap := &Snapshot{Products: stripImages(products), Timestamp: c.now()}
	if err := c.store.Set(ctx, c.key, snap); err != nil {
		c.logger.Error("cache_write_failed", "", "Failed to persist catalog snapshot", err)
	}
	return products, nil
}

// stripImages clears the image payload before a snapshot is persisted, so
// the cache stays small. Live fetch results keep their images.
func stripImages(products []models.Product) []models.Product {
	stripped := make([]models.Product, len(products))
	for i, p := range products {
		p.Image = ""
		stripped[i] = p
	}
	return stripped
}
