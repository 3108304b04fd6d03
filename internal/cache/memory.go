package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Memory is an in-process Store backend.
type Memory struct {
	cache *ristretto.Cache[string, Entry]
}

func NewMemory(maxKeys, maxCost int64) (*Memory, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, Entry]{
		NumCounters: maxKeys * 10,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create ristretto cache: %w", err)
	}

	return &Memory{cache: c}, nil
}

func (m *Memory) Get(ctx context.Context, key string) (Entry, bool, error) {
	e, found := m.cache.Get(key)
	return e, found, nil
}

func (m *Memory) Set(ctx context.Context, key string, e Entry, ttl time.Duration) error {
	m.cache.SetWithTTL(key, e, 1, ttl)
	// Ristretto admits writes asynchronously; wait so the entry is visible
	// to the next Get.
	m.cache.Wait()
	return nil
}

func (m *Memory) Close() {
	m.cache.Close()
}
