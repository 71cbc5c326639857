// Package storage provides the blob store backends: one serialized snapshot
// under one fixed application key.
package storage

import (
	"encoding/json"
	"fmt"
	"sync"

	"kfc-ordering/internal/domain"
)

// AppKey is the single application key every backend stores the snapshot
// under. Kept identical across backends so a blob can be moved between them.
const AppKey = "kfcAppData"

// MemoryStore keeps the serialized snapshot in process memory. Used by tests
// and as a fallback backend; state does not survive a restart.
type MemoryStore struct {
	mu   sync.Mutex
	blob []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (domain.Snapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.blob == nil {
		return domain.Snapshot{}, false, nil
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(s.blob, &snap); err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("%w: %v", domain.ErrCorruptSnapshot, err)
	}
	return snap, true, nil
}

func (s *MemoryStore) Save(snap domain.Snapshot) error {
	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blob = blob
	return nil
}
