// Package storage provides the synchronous key-value backing shared by the
// session, cart, order and locale stores. The backing is best-effort: callers
// treat every failure as degradation, fall back to an empty collection and
// keep going.
package storage

import "sync"

// Persisted key catalog. Values under every key are JSON-encoded except the
// locale, which is stored raw.
const (
	KeyCurrentUser  = "currentUser"
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyRoster       = "registered_users"
	KeyCart         = "shopping_cart"
	KeyOrders       = "user_orders"
	KeyLanguage     = "language"
)

// CartKeyFor returns the cart key for a user id. The anonymous session (empty
// id) shares the unscoped cart key.
func CartKeyFor(userID string) string {
	if userID == "" {
		return KeyCart
	}
	return "cart_" + userID
}

// KV is a string-keyed, string-valued store. Get reports absence separately
// from failure so callers can distinguish an empty cache from a broken one.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
	Close() error
}

// Memory is an in-process KV for tests and ephemeral runs.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *Memory) Close() error { return nil }
