package model

// POS is a part-of-speech tag
type POS string

const (
	POSAdjective POS = "adjective"
	POSAdverb    POS = "adverb"
	POSNoun      POS = "noun"
	POSVerb      POS = "verb"
)

// RecognizedPOS lists the POS tags that have a backing word-list file
var RecognizedPOS = []POS{POSAdjective, POSAdverb, POSNoun, POSVerb}

// Recognized reports whether the tag maps to a word-list file.
// Any other tag is silently skipped during a merge.
func (p POS) Recognized() bool {
	switch p {
	case POSAdjective, POSAdverb, POSNoun, POSVerb:
		return true
	}
	return false
}

// WordSet is the persisted record for one POS tag.
// A word appears in at most one of the three lists; words only ever
// enter through Pending and are promoted to Safe/Unsafe out-of-band.
type WordSet struct {
	Pending []string `json:"pending"`
	Safe    []string `json:"safe"`
	Unsafe  []string `json:"unsafe"`
}

// NewWordSet creates an empty word set with all three lists present
func NewWordSet() *WordSet {
	return &WordSet{
		Pending: []string{},
		Safe:    []string{},
		Unsafe:  []string{},
	}
}

// Contains reports whether the word is present in any of the three lists
func (s *WordSet) Contains(word string) bool {
	for _, list := range [][]string{s.Pending, s.Safe, s.Unsafe} {
		for _, w := range list {
			if w == word {
				return true
			}
		}
	}
	return false
}

// AddPending appends the word to the pending list unless it already
// appears anywhere in the set. Returns true if the word was added.
func (s *WordSet) AddPending(word string) bool {
	if s.Contains(word) {
		return false
	}
	s.Pending = append(s.Pending, word)
	return true
}

// Repair fills in any nil list so the persisted record always carries
// all three fields
func (s *WordSet) Repair() {
	if s.Pending == nil {
		s.Pending = []string{}
	}
	if s.Safe == nil {
		s.Safe = []string{}
	}
	if s.Unsafe == nil {
		s.Unsafe = []string{}
	}
}

// Len returns the total number of words across all three lists
func (s *WordSet) Len() int {
	return len(s.Pending) + len(s.Safe) + len(s.Unsafe)
}
