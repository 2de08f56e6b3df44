package cart

import "sync"

// Manager hands out one Store per session subject. Carts are in-memory only
// and die with the session.
type Manager struct {
	mu     sync.RWMutex
	stores map[string]*Store
}

func NewManager() *Manager {
	return &Manager{stores: make(map[string]*Store)}
}

// ForSession returns the session's store, creating it on first use.
func (m *Manager) ForSession(sessionID string) *Store {
	m.mu.RLock()
	store, ok := m.stores[sessionID]
	m.mu.RUnlock()
	if ok {
		return store
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if store, ok = m.stores[sessionID]; ok {
		return store
	}
	store = NewStore()
	m.stores[sessionID] = store
	return store
}

// Drop discards the session's store, e.g. on sign-out.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	delete(m.stores, sessionID)
	m.mu.Unlock()
}
