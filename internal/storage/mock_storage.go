package storage

import (
	"context"
	"io"
	"sync"
)

// MockStorage is an in-memory FileStorage for tests
type MockStorage struct {
	mu    sync.Mutex
	Files map[string][]byte

	// Optional function overrides for custom test behavior
	SaveFunc   func(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	DeleteFunc func(ctx context.Context, key string) error
	ExistsFunc func(ctx context.Context, key string) (bool, error)
}

// NewMockStorage creates an empty MockStorage
func NewMockStorage() *MockStorage {
	return &MockStorage{Files: make(map[string][]byte)}
}

// Save stores body in memory
func (m *MockStorage) Save(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, key, body, size, contentType)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Files[key] = data
	return nil
}

// Delete removes key
func (m *MockStorage) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Files, key)
	return nil
}

// Exists reports whether key is stored
func (m *MockStorage) Exists(ctx context.Context, key string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Files[key]
	return ok, nil
}

// Has is a test helper reporting whether key is stored
func (m *MockStorage) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Files[key]
	return ok
}

// URL returns a fake public URL
func (m *MockStorage) URL(key string) string {
	return "http://test.local/media/" + key
}

// Driver returns the driver name
func (m *MockStorage) Driver() string {
	return "mock"
}

var _ FileStorage = (*MockStorage)(nil)
