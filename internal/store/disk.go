package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/phrasekit/wordgate/internal/model"
)

// DiskStore persists one JSON word-list file per POS tag under a directory.
// Saves are atomic (write to a temp file, then rename), so readers never
// observe a half-written record. Nothing guards concurrent writers; callers
// must ensure a single writer at a time.
type DiskStore struct {
	dir string
}

// NewDiskStore creates a disk store rooted at dir
func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{dir: dir}
}

// Dir returns the directory holding the word-list files
func (s *DiskStore) Dir() string {
	return s.dir
}

// Load reads the word set for a POS tag, returning a fresh empty set when
// no file exists yet. A record missing one of the three category fields is
// repaired to an empty list; malformed JSON is an error.
func (s *DiskStore) Load(pos model.POS) (*model.WordSet, error) {
	path := s.path(pos)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewWordSet(), nil
		}
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}

	var set model.WordSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parse word list %s: %w", path, err)
	}
	set.Repair()

	return &set, nil
}

// Save writes the word set for a POS tag, creating the directory tree on
// demand and replacing the previous file atomically.
func (s *DiskStore) Save(pos model.POS, set *model.WordSet) error {
	set.Repair()

	data, err := json.MarshalIndent(set, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal word list: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create word list dir: %w", err)
	}

	path := s.path(pos)
	tmp, err := os.CreateTemp(s.dir, FileName(pos)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace word list %s: %w", path, err)
	}

	return nil
}

// path generates the file path for a POS tag
func (s *DiskStore) path(pos model.POS) string {
	return filepath.Join(s.dir, FileName(pos))
}
