package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/phrasekit/wordgate/internal/input"
	"github.com/phrasekit/wordgate/internal/merge"
	"github.com/phrasekit/wordgate/internal/model"
	"github.com/phrasekit/wordgate/internal/notify"
	"github.com/phrasekit/wordgate/internal/store"
	"github.com/phrasekit/wordgate/internal/validate"
)

// Pipeline orchestrates one batch: normalize, validate, merge.
// Validation is all-or-nothing: a batch with any invalid word is rejected
// before a single word list is read or written.
type Pipeline struct {
	validator *validate.Validator
	engine    *merge.Engine
	notifier  notify.Notifier
	config    *model.Config
	dryRun    bool
}

// NewPipeline creates a pipeline from configuration. The word lists live
// on disk under cfg.Storage.Dir; with dryRun set, the merge runs against
// an in-memory copy and persists nothing. A notifier is wired only when a
// repository is configured.
func NewPipeline(cfg *model.Config, dryRun bool) (*Pipeline, error) {
	var s store.Store = store.NewDiskStore(cfg.Storage.Dir)
	if dryRun {
		mem, err := store.NewMemoryStoreFrom(s)
		if err != nil {
			return nil, fmt.Errorf("snapshot word lists: %w", err)
		}
		s = mem
	}

	var notifier notify.Notifier = notify.NopNotifier{}
	if cfg.Notify.Repository != "" {
		n, err := notify.NewGitHubNotifier(cfg.Notify)
		if err != nil {
			return nil, err
		}
		notifier = n
	}

	return &Pipeline{
		validator: validate.NewValidator(),
		engine:    merge.NewEngine(s),
		notifier:  notifier,
		config:    cfg,
		dryRun:    dryRun,
	}, nil
}

// Run processes raw multi-line word and POS text end to end.
// On invalid words the failure message is also delivered to the notifier;
// empty input fails locally without notification.
func (p *Pipeline) Run(ctx context.Context, rawWords, rawPOS string) (*model.Report, error) {
	words := input.SplitLines(rawWords)
	posTags := input.SplitLines(rawPOS)

	if len(words) == 0 || len(posTags) == 0 {
		return nil, input.ErrNoInput
	}

	if err := p.validator.Validate(words); err != nil {
		var invalidErr *validate.InvalidWordsError
		if errors.As(err, &invalidErr) {
			if nErr := p.notifier.Notify(ctx, invalidErr.Error()); nErr != nil {
				// Notification is best-effort; the batch is rejected either way
				fmt.Fprintf(os.Stderr, "Warning: failed to deliver notification: %v\n", nErr)
			}
		}
		return nil, err
	}

	report, err := p.engine.Apply(ctx, words, posTags)
	if err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}
	report.DryRun = p.dryRun

	return report, nil
}
