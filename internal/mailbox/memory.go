package mailbox

import (
	"context"
	"sort"
	"sync"

	applog "celebra/internal/log"
	"celebra/models"
)

// Memory is an in-process mailbox. It is the development default and also the
// fan-out hub the database and redis backends delegate local delivery to.
// Dispatch happens synchronously under the hub lock, so subscriber callbacks
// must not call back into the store.
type Memory struct {
	mu     sync.Mutex
	state  *models.State
	subs   map[int]func(*models.State)
	nextID int
}

// NewMemory builds an empty in-process mailbox.
func NewMemory() *Memory {
	return &Memory{subs: make(map[int]func(*models.State))}
}

// Publish implements Store.
func (m *Memory) Publish(ctx context.Context, c models.Celebration) error {
	state := models.ActiveState(c)
	m.broadcast(&state)
	applog.Debug(ctx, "celebration published", "guest", c.GuestName, "occasion", c.Occasion, "theme", c.ThemeID)
	return nil
}

// Reset implements Store.
func (m *Memory) Reset(ctx context.Context) error {
	state := models.StandbyState()
	m.broadcast(&state)
	applog.Debug(ctx, "celebration reset to standby")
	return nil
}

// Subscribe implements Store.
func (m *Memory) Subscribe(fn func(*models.State)) UnsubscribeFunc {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	current := m.state

	// Initial delivery under the lock, so a concurrent broadcast cannot
	// slip its newer state in ahead of the immediate one.
	fn(current)
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
		})
	}
}

// Close implements Store.
func (m *Memory) Close() error {
	m.mu.Lock()
	m.subs = make(map[int]func(*models.State))
	m.mu.Unlock()
	return nil
}

// broadcast records the new state and delivers it to every subscriber in
// registration order.
func (m *Memory) broadcast(state *models.State) {
	m.mu.Lock()
	m.state = state
	ids := make([]int, 0, len(m.subs))
	for id := range m.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(*models.State), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, m.subs[id])
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}

// restore seeds the slot without notifying anyone; used by persistent
// backends when loading the stored value at startup.
func (m *Memory) restore(state *models.State) {
	m.mu.Lock()
	m.state = state
	m.mu.Unlock()
}
