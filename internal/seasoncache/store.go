package seasoncache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store persists season snapshots as one JSON file per sport.
type Store struct {
	dir string
}

// NewStore constructs a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(sportKey string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s.json", sportKey))
}

// Load reads the snapshot for a sport. A missing file is not an error; the
// second return reports whether a snapshot was found.
func (s *Store) Load(sportKey string) (Snapshot, bool, error) {
	data, err := os.ReadFile(s.path(sportKey))
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, false, nil
		}
		return Snapshot{}, false, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, false, fmt.Errorf("decode season cache %s: %w", sportKey, err)
	}
	return snap, true, nil
}

// Persist writes a snapshot atomically via a temp file and rename, so a
// crash mid-write never leaves a truncated cache behind.
func (s *Store) Persist(sportKey string, snap Snapshot) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	target := s.path(sportKey)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}
