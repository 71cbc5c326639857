package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"kfc-ordering/internal/domain"
)

// FileStore persists the snapshot as a JSON file — the default backend and
// the closest analogue to the browser localStorage the data originally
// lived in.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (s *FileStore) Load() (domain.Snapshot, bool, error) {
	blob, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.Snapshot{}, false, nil
	}
	if err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("read %s: %w", s.Path, err)
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("%w: %s: %v", domain.ErrCorruptSnapshot, s.Path, err)
	}
	return snap, true, nil
}

func (s *FileStore) Save(snap domain.Snapshot) error {
	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(s.Path, blob, 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.Path, err)
	}
	return nil
}
