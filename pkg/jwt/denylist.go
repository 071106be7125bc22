package jwt

import (
	"context"
	"sync"
	"time"
)

// Denylist records revoked token ids until they expire.
type Denylist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// MemoryDenylist is an in-process Denylist for single-instance deployments and tests.
type MemoryDenylist struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	now     func() time.Time
}

// NewMemoryDenylist returns an empty MemoryDenylist.
func NewMemoryDenylist() *MemoryDenylist {
	return &MemoryDenylist{entries: make(map[string]time.Time), now: time.Now}
}

// Revoke records tokenID until the given time and drops expired entries.
// Already expired tokens are not recorded.
func (m *MemoryDenylist) Revoke(_ context.Context, tokenID string, until time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for id, exp := range m.entries {
		if !exp.After(now) {
			delete(m.entries, id)
		}
	}
	if until.After(now) {
		m.entries[tokenID] = until
	}
	return nil
}

// IsRevoked reports whether tokenID is revoked and not yet expired.
func (m *MemoryDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	exp, ok := m.entries[tokenID]
	return ok && exp.After(m.now()), nil
}
