package storage

import (
	"context"
	"sync"

	"github.com/Dosada05/tournament-league/models"
)

type MemoryStore struct {
	mu    sync.RWMutex
	saved *models.Snapshot
	saves int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(_ context.Context) (models.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.saved == nil {
		return models.Snapshot{}, ErrSnapshotNotFound
	}
	return m.saved.Clone(), nil
}

func (m *MemoryStore) Save(_ context.Context, s models.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := s.Clone()
	m.saved = &copied
	m.saves++
	return nil
}

// Saves reports how many times Save succeeded.
func (m *MemoryStore) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}
