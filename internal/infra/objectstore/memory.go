package objectstore

import (
	"context"
	"sync"

	"eventdeck/internal/infra"
	"eventdeck/internal/pkg/errs"
)

var errStoreClosed = errs.New("object store closed")

// MemoryStore keeps objects in process memory. Used by tests and local
// development; mirrors the keyed-overwrite semantics of the bucket store.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	closed  bool

	// FailKeys forces Put to fail for the listed keys, for failure-path tests.
	FailKeys map[string]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

func (s *MemoryStore) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", infra.WrapRepoErr("failed to store artifact", errStoreClosed, infra.KindStorageFailure)
	}
	if s.FailKeys[key] {
		return "", infra.WrapRepoErr("failed to store artifact", errs.New("injected storage failure"), infra.KindStorageFailure)
	}

	buf := make([]byte, len(data))
	copy(buf, data)
	s.objects[key] = buf
	return "mem://" + key, nil
}

func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	return data, ok
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
