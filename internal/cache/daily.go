package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/andyagdw/word-wizards/internal/metrics"
	"github.com/andyagdw/word-wizards/internal/model"
)

// Entry is a cached provider result together with the time it was stored.
// Entries are never mutated; a refresh stores a new entry in its place.
type Entry struct {
	Data     model.WordData `json:"data"`
	StoredAt time.Time      `json:"stored_at"`
}

// Store is a process-wide key/entry mapping with per-entry TTL.
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key string, e Entry, ttl time.Duration) error
}

// Daily memoizes values until the next midnight in a reference timezone, so
// the word of the day is identical for every caller within a calendar day.
// A value stored at 23:00 expires an hour later, not 24 hours later.
type Daily struct {
	store Store
	loc   *time.Location
	now   func() time.Time
}

func NewDaily(store Store, loc *time.Location) *Daily {
	return &Daily{
		store: store,
		loc:   loc,
		now:   time.Now,
	}
}

// GetOrRefresh returns the cached value for key, invoking refresh when the
// entry is missing or stale. Empty refresh results are returned but not
// cached, so the next caller retries instead of seeing a hole all day.
// Concurrent refreshes for the same key converge last-writer-wins; no lock
// is held across the refresh call.
func (c *Daily) GetOrRefresh(ctx context.Context, key string, refresh func(ctx context.Context) (model.WordData, error)) (model.WordData, error) {
	now := c.now()

	e, found, err := c.store.Get(ctx, key)
	if err != nil {
		slog.Warn("cache read failed", "key", key, "error", err)
	} else if found && c.valid(e, now) {
		metrics.CacheHits.Inc()
		return e.Data, nil
	}
	metrics.CacheMisses.Inc()

	data, err := refresh(ctx)
	if err != nil {
		return model.WordData{}, err
	}
	if data.Empty() {
		return data, nil
	}

	ttl := untilNextMidnight(now.In(c.loc))
	if err := c.store.Set(ctx, key, Entry{Data: data, StoredAt: now}, ttl); err != nil {
		slog.Warn("cache write failed", "key", key, "error", err)
	}

	return data, nil
}

// valid requires both freshness checks to hold: the entry is less than a day
// old and the day boundary in the reference timezone has not been crossed
// since it was stored.
func (c *Daily) valid(e Entry, now time.Time) bool {
	if now.Sub(e.StoredAt) >= 24*time.Hour {
		return false
	}

	a := now.In(c.loc)
	b := e.StoredAt.In(c.loc)
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func untilNextMidnight(t time.Time) time.Duration {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1)
	return midnight.Sub(t)
}
