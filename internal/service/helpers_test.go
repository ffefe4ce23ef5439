package service_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dtroode/mermory-server/internal/model"
)

// memBlobs is an in-memory model.BlobStore that records every write.
type memBlobs struct {
	mu     sync.Mutex
	data   map[string][]byte
	writes int
	failOn error
}

func newMemBlobs() *memBlobs {
	return &memBlobs{data: map[string][]byte{}}
}

func (m *memBlobs) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, model.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *memBlobs) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn != nil {
		return m.failOn
	}
	m.data[key] = append([]byte(nil), data...)
	m.writes++
	return nil
}

func (m *memBlobs) writeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

func (m *memBlobs) setFailure(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failOn = err
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// sequentialIDs returns prefix-1, prefix-2, ... per prefix.
func sequentialIDs() func(prefix string) string {
	var mu sync.Mutex
	counters := map[string]int{}
	return func(prefix string) string {
		mu.Lock()
		defer mu.Unlock()
		counters[prefix]++
		return fmt.Sprintf("%s-%d", prefix, counters[prefix])
	}
}
