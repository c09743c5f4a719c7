package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/tmallory/chronicler/pkg/state"
)

// MockStorage is a mock implementation of Storage for testing
type MockStorage struct {
	mu        sync.RWMutex
	states    map[uuid.UUID]*state.PresentationState
	pingError error
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		states: make(map[uuid.UUID]*state.PresentationState),
	}
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

func (m *MockStorage) Close() error {
	return nil
}

func (m *MockStorage) SavePresentationState(ctx context.Context, id uuid.UUID, ps *state.PresentationState) error {
	if ps == nil {
		return errors.New("presentation state cannot be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[id] = ps
	return nil
}

func (m *MockStorage) GetPresentationState(ctx context.Context, id uuid.UUID) (*state.PresentationState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ps, exists := m.states[id]
	if !exists {
		return nil, nil // Return nil for not found
	}
	return ps, nil
}

func (m *MockStorage) DeletePresentationState(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, id)
	return nil
}
