package preferences

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type memoryRepository struct {
	mu     sync.RWMutex
	byUser map[uuid.UUID]*NavPreference
}

// NewMemoryRepository constructs an in-memory repository for stored layouts.
func NewMemoryRepository() Repository {
	return &memoryRepository{byUser: make(map[uuid.UUID]*NavPreference)}
}

func (m *memoryRepository) GetByUser(_ context.Context, userID uuid.UUID) (*NavPreference, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byUser[userID]
	if !ok {
		return nil, &NotFoundError{Resource: "nav_preference", Key: userID.String()}
	}
	return clonePreference(record), nil
}

func (m *memoryRepository) Create(_ context.Context, pref *NavPreference) (*NavPreference, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byUser[pref.UserID]; exists {
		return nil, ErrPreferenceExists
	}
	cloned := clonePreference(pref)
	m.byUser[cloned.UserID] = cloned
	return clonePreference(cloned), nil
}

func (m *memoryRepository) Update(_ context.Context, pref *NavPreference) (*NavPreference, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byUser[pref.UserID]; !ok {
		return nil, &NotFoundError{Resource: "nav_preference", Key: pref.UserID.String()}
	}
	cloned := clonePreference(pref)
	m.byUser[cloned.UserID] = cloned
	return clonePreference(cloned), nil
}

func (m *memoryRepository) DeleteByUser(_ context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byUser[userID]; !ok {
		return &NotFoundError{Resource: "nav_preference", Key: userID.String()}
	}
	delete(m.byUser, userID)
	return nil
}
