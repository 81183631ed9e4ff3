package merge

import (
	"context"
	"fmt"
	"time"

	"github.com/phrasekit/wordgate/internal/model"
	"github.com/phrasekit/wordgate/internal/store"
)

// Engine folds validated (word, POS) pairs into the categorized word lists.
// It only ever appends to pending; words already present anywhere in a set
// are left untouched, so re-running the same batch is a no-op.
type Engine struct {
	store store.Store
}

// NewEngine creates a merge engine backed by the given store
func NewEngine(s store.Store) *Engine {
	return &Engine{store: s}
}

// Apply processes the cross product of words and POS tags sequentially.
// Each recognized (word, POS) pair is an independent load/check/save cycle;
// unrecognized tags are skipped with no side effect.
func (e *Engine) Apply(ctx context.Context, words []string, posTags []string) (*model.Report, error) {
	report := &model.Report{
		Words:   words,
		POSTags: posTags,
	}

	results := make(map[model.POS]*model.POSResult)
	seenUnrecognized := make(map[string]bool)

	for _, word := range words {
		for _, tag := range posTags {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			p := model.POS(tag)
			if !p.Recognized() {
				if !seenUnrecognized[tag] {
					seenUnrecognized[tag] = true
					report.Unrecognized = append(report.Unrecognized, tag)
				}
				continue
			}

			set, err := e.store.Load(p)
			if err != nil {
				return nil, fmt.Errorf("load %s: %w", p, err)
			}

			added := set.AddPending(word)

			if err := e.store.Save(p, set); err != nil {
				return nil, fmt.Errorf("save %s: %w", p, err)
			}

			res, ok := results[p]
			if !ok {
				res = &model.POSResult{POS: p, Added: []string{}, Skipped: []string{}}
				results[p] = res
			}
			if added {
				res.Added = append(res.Added, word)
			} else {
				res.Skipped = append(res.Skipped, word)
			}
		}
	}

	// Assemble per-POS results in input order
	for _, tag := range orderedPOS(posTags) {
		if res, ok := results[tag]; ok {
			report.Results = append(report.Results, *res)
		}
	}

	report.FinishedAt = time.Now().UTC()
	return report, nil
}

// orderedPOS returns the recognized POS tags in input order, deduplicated
func orderedPOS(posTags []string) []model.POS {
	var out []model.POS
	seen := make(map[model.POS]bool)
	for _, tag := range posTags {
		p := model.POS(tag)
		if !p.Recognized() || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
