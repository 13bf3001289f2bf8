package storage

import (
	"context"
	"sync"
)

// MemoryStore держит вкладки в памяти процесса
type MemoryStore struct {
	mu     sync.RWMutex
	emails []string
	usage  []UsageEntry

	// ReadErr и AppendErr возвращаются вместо результата, если заданы
	ReadErr   error
	AppendErr error
}

func NewMemoryStore(emails ...string) *MemoryStore {
	return &MemoryStore{emails: emails}
}

func (m *MemoryStore) AddEmail(email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emails = append(m.emails, email)
}

func (m *MemoryStore) ReadAllowlist(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	return append([]string(nil), m.emails...), nil
}

func (m *MemoryStore) AppendUsage(ctx context.Context, entry UsageEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.usage = append(m.usage, entry)
	return nil
}

// Usage возвращает копию журнала
func (m *MemoryStore) Usage() []UsageEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]UsageEntry(nil), m.usage...)
}
