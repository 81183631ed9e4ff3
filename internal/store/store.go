package store

import (
	"fmt"

	"github.com/phrasekit/wordgate/internal/model"
)

// Store defines the interface for loading and saving per-POS word sets.
// Load returns a fresh empty set when no record exists yet; Save replaces
// the persisted record wholesale.
type Store interface {
	Load(pos model.POS) (*model.WordSet, error)
	Save(pos model.POS, set *model.WordSet) error
}

// FileName returns the word-list file name for a POS tag, e.g. "_noun.json"
func FileName(pos model.POS) string {
	return fmt.Sprintf("_%s.json", pos)
}
