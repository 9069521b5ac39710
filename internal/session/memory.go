package session

import (
	"sync"

	"github.com/recipenest/client-go/internal/types"
)

// MemoryStore is an in-memory Store used by tests and short-lived tools
// that must not touch the on-disk session.
type MemoryStore struct {
	mu      sync.Mutex
	session *types.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (ms *MemoryStore) Save(s *types.Session) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	copied := *s
	ms.session = &copied
	return nil
}

func (ms *MemoryStore) Load() (*types.Session, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.session == nil {
		return nil, ErrNoSession
	}
	copied := *ms.session
	return &copied, nil
}

func (ms *MemoryStore) Clear() error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.session = nil
	return nil
}
