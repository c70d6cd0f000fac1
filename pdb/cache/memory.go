package cache

import (
	"context"
	"sort"
	"sync"
)

// Memory keeps entries in process memory. It is for tests and for
// sessions that should leave nothing behind.
type Memory struct {
	mu   sync.RWMutex
	objs map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory { return &Memory{objs: make(map[string][]byte)} }

func (s *Memory) Driver() Driver { return DriverMemory }
func (s *Memory) Close() error   { return nil }

func (s *Memory) Get(_ context.Context, id string) ([]byte, error) {
	k, err := Key(id)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	b, ok := s.objs[k]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), b...), nil
}

func (s *Memory) Put(_ context.Context, id string, data []byte) error {
	k, err := Key(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.objs[k] = append([]byte(nil), data...)
	s.mu.Unlock()
	return nil
}

func (s *Memory) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	ids := make([]string, 0, len(s.objs))
	for k := range s.objs {
		ids = append(ids, k)
	}
	s.mu.RUnlock()
	sort.Strings(ids)
	return ids, nil
}
