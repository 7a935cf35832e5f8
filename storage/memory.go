package storage

import (
	"bytes"
	"context"
	"fmt"
	"sync"
)

// Memory keeps snapshots in process. Its zero value is ready to use.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
	// Fail, when set, makes every Put fail with ErrUnavailable.
	Fail bool
}

// NewMemory returns an empty in-memory storage.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return bytes.Clone(v), nil
}

func (m *Memory) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail {
		return fmt.Errorf("%w: quota exceeded", ErrUnavailable)
	}
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[key] = bytes.Clone(value)
	return nil
}

func (m *Memory) Close() error { return nil }
