package cartstore

import (
	"context"
	"encoding/json"
	"sync"

	"emy-orders/internal/domain/cart"
	"emy-orders/internal/pkg/errs"
)

// MemoryStore is an in-process CartStore for tests. It round-trips
// carts through JSON so the entries a caller gets back are detached
// copies, matching the Redis store's behavior.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, sessionID string) (*cart.Cart, error) {
	m.mu.RLock()
	data, ok := m.carts[sessionID]
	m.mu.RUnlock()
	if !ok {
		return cart.New(), nil
	}
	var c cart.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errs.Wrap(err, "unmarshal cart failed")
	}
	if c.Entries == nil {
		c.Entries = make(map[string]cart.Entry)
	}
	return &c, nil
}

func (m *MemoryStore) Save(_ context.Context, sessionID string, c *cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return errs.Wrap(err, "marshal cart failed")
	}
	m.mu.Lock()
	m.carts[sessionID] = data
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.carts, sessionID)
	m.mu.Unlock()
	return nil
}
