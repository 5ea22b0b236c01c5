package session

import (
	"context"
	"sync"

	"github.com/MKhiriev/engagement-pulse/models"
)

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu   sync.RWMutex
	cred models.Credential
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get(_ context.Context) (models.Credential, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.cred.IsAuthenticated() {
		return models.Credential{}, ErrNotFound
	}
	return m.cred, nil
}

func (m *MemoryStore) Set(_ context.Context, cred models.Credential) error {
	if !cred.IsAuthenticated() {
		return ErrEmptyToken
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.cred = cred
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cred = models.Credential{}
	return nil
}
