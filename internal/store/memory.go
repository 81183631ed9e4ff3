package store

import (
	"encoding/json"
	"fmt"

	gocache "github.com/patrickmn/go-cache"
	"github.com/phrasekit/wordgate/internal/model"
)

// MemoryStore keeps word sets in process memory. It backs dry-run merges
// and tests. Sets are stored as marshaled bytes so callers always get an
// independent copy, matching the read-then-overwrite behavior of the disk
// store.
type MemoryStore struct {
	cache *gocache.Cache
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// NewMemoryStoreFrom creates a memory store pre-loaded with the current
// contents of another store for every recognized POS tag.
func NewMemoryStoreFrom(src Store) (*MemoryStore, error) {
	m := NewMemoryStore()
	for _, pos := range model.RecognizedPOS {
		set, err := src.Load(pos)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", pos, err)
		}
		if err := m.Save(pos, set); err != nil {
			return nil, fmt.Errorf("seed %s: %w", pos, err)
		}
	}
	return m, nil
}

// Load returns the word set for a POS tag, or a fresh empty set
func (m *MemoryStore) Load(pos model.POS) (*model.WordSet, error) {
	val, found := m.cache.Get(string(pos))
	if !found {
		return model.NewWordSet(), nil
	}

	var set model.WordSet
	if err := json.Unmarshal(val.([]byte), &set); err != nil {
		return nil, fmt.Errorf("parse word set %s: %w", pos, err)
	}
	set.Repair()

	return &set, nil
}

// Save stores the word set for a POS tag
func (m *MemoryStore) Save(pos model.POS, set *model.WordSet) error {
	set.Repair()

	data, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("marshal word set: %w", err)
	}

	m.cache.Set(string(pos), data, gocache.NoExpiration)
	return nil
}
