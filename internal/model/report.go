package model

import "time"

// Report summarizes one merge run
type Report struct {
	Words      []string  `json:"words"`       // Normalized input words
	POSTags    []string  `json:"pos_tags"`    // Normalized input POS tags
	FinishedAt time.Time `json:"finished_at"` // When the merge completed

	Results []POSResult `json:"results"` // Per-POS outcome, recognized tags only

	Unrecognized []string `json:"unrecognized,omitempty"` // POS tags skipped with no effect
	DryRun       bool     `json:"dry_run,omitempty"`      // True when nothing was persisted
}

// POSResult records what one run did to a single POS word list
type POSResult struct {
	POS     POS      `json:"pos"`
	Added   []string `json:"added"`   // Words newly appended to pending
	Skipped []string `json:"skipped"` // Words already present somewhere in the set
}

// TotalAdded returns the number of words added across all POS tags
func (r *Report) TotalAdded() int {
	n := 0
	for _, res := range r.Results {
		n += len(res.Added)
	}
	return n
}

// TotalSkipped returns the number of (word, POS) pairs that were
// suppressed by the membership check
func (r *Report) TotalSkipped() int {
	n := 0
	for _, res := range r.Results {
		n += len(res.Skipped)
	}
	return n
}
