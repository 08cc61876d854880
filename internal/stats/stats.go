// Package stats computes aggregate job counts and caches them briefly so
// dashboard polling does not hit the database on every request.
package stats

import (
	"sync"
	"time"

	"gorm.io/gorm"

	"JobOrganizer-backend/internal/model"
)

// DefaultTTL is how long a computed aggregate stays fresh.
const DefaultTTL = 60 * time.Second

// Stats is the aggregate counts payload served by /api/stats.
type Stats struct {
	TotalJobs      int64            `json:"total_jobs"`
	StatusCounts   map[string]int64 `json:"status_counts"`
	PriorityCounts map[string]int64 `json:"priority_counts"`
}

// Cache holds one Stats value with a fixed time-to-live. Within the TTL
// window readers get the cached value verbatim; after expiry the next caller
// recomputes and replaces it. When several callers expire at once each may
// recompute and the last writer wins, which is fine since the computation is
// a pure function of current store state.
type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu         sync.RWMutex
	value      *Stats
	computedAt time.Time
}

// NewCache builds a cache with the given TTL. A zero ttl means every call
// recomputes.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl: ttl,
		now: time.Now,
	}
}

// Get returns the cached value when fresh, otherwise calls compute and
// stores the result. Errors from compute are returned without touching the
// cached value.
func (c *Cache) Get(compute func() (Stats, error)) (Stats, error) {
	// fast path: fresh cached value
	c.mu.RLock()
	if c.value != nil && c.now().Sub(c.computedAt) < c.ttl {
		v := *c.value
		c.mu.RUnlock()
		return v, nil
	}
	c.mu.RUnlock()

	v, err := compute()
	if err != nil {
		return Stats{}, err
	}

	c.mu.Lock()
	c.value = &v
	c.computedAt = c.now()
	c.mu.Unlock()

	return v, nil
}

// Invalidate drops the cached value so the next Get recomputes.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.value = nil
	c.mu.Unlock()
}

type countRow struct {
	Key   string
	Count int64
}

// Compute aggregates job counts store-side, grouped by status and priority.
// It never loads job rows into memory.
func Compute(db *gorm.DB) (Stats, error) {
	s := Stats{
		StatusCounts:   map[string]int64{},
		PriorityCounts: map[string]int64{},
	}

	if err := db.Model(&model.Job{}).Count(&s.TotalJobs).Error; err != nil {
		return Stats{}, err
	}

	var statusRows []countRow
	if err := db.Model(&model.Job{}).
		Select("status AS key, count(*) AS count").
		Group("status").
		Scan(&statusRows).Error; err != nil {
		return Stats{}, err
	}
	for _, row := range statusRows {
		s.StatusCounts[row.Key] = row.Count
	}

	var priorityRows []countRow
	if err := db.Model(&model.Job{}).
		Select("priority AS key, count(*) AS count").
		Group("priority").
		Scan(&priorityRows).Error; err != nil {
		return Stats{}, err
	}
	for _, row := range priorityRows {
		s.PriorityCounts[row.Key] = row.Count
	}

	return s, nil
}
