package merge

import (
	"context"
	"testing"

	"github.com/phrasekit/wordgate/internal/model"
	"github.com/phrasekit/wordgate/internal/store"
)

func TestEngine_Apply_AddsToPending(t *testing.T) {
	s := store.NewMemoryStore()
	engine := NewEngine(s)

	report, err := engine.Apply(context.Background(), []string{"cat", "cat", "dog"}, []string{"noun"})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	set, err := s.Load(model.POSNoun)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(set.Pending) != 2 || set.Pending[0] != "cat" || set.Pending[1] != "dog" {
		t.Errorf("expected pending [cat dog], got %v", set.Pending)
	}

	if report.TotalAdded() != 2 {
		t.Errorf("expected 2 added, got %d", report.TotalAdded())
	}
	if report.TotalSkipped() != 1 {
		t.Errorf("expected 1 skipped (duplicate cat), got %d", report.TotalSkipped())
	}
}

func TestEngine_Apply_Idempotent(t *testing.T) {
	s := store.NewMemoryStore()
	engine := NewEngine(s)
	ctx := context.Background()

	words := []string{"cat", "dog"}
	tags := []string{"noun", "verb"}

	if _, err := engine.Apply(ctx, words, tags); err != nil {
		t.Fatalf("first Apply failed: %v", err)
	}

	first := make(map[model.POS]*model.WordSet)
	for _, pos := range model.RecognizedPOS {
		set, err := s.Load(pos)
		if err != nil {
			t.Fatalf("Load %s: %v", pos, err)
		}
		first[pos] = set
	}

	report, err := engine.Apply(ctx, words, tags)
	if err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}

	if report.TotalAdded() != 0 {
		t.Errorf("expected second run to add nothing, added %d", report.TotalAdded())
	}

	for _, pos := range model.RecognizedPOS {
		set, err := s.Load(pos)
		if err != nil {
			t.Fatalf("Load %s: %v", pos, err)
		}
		if len(set.Pending) != len(first[pos].Pending) {
			t.Errorf("%s: second run changed pending: %v -> %v", pos, first[pos].Pending, set.Pending)
		}
	}
}

func TestEngine_Apply_NeverReclassifies(t *testing.T) {
	s := store.NewMemoryStore()

	existing := model.NewWordSet()
	existing.Unsafe = []string{"run"}
	if err := s.Save(model.POSVerb, existing); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	engine := NewEngine(s)
	if _, err := engine.Apply(context.Background(), []string{"run"}, []string{"verb"}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	set, err := s.Load(model.POSVerb)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(set.Pending) != 0 {
		t.Errorf("word in unsafe must not re-enter pending, got %v", set.Pending)
	}
	if len(set.Unsafe) != 1 || set.Unsafe[0] != "run" {
		t.Errorf("unsafe list disturbed: %v", set.Unsafe)
	}
}

func TestEngine_Apply_Disjointness(t *testing.T) {
	s := store.NewMemoryStore()

	existing := model.NewWordSet()
	existing.Pending = []string{"walk"}
	existing.Safe = []string{"talk"}
	if err := s.Save(model.POSVerb, existing); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	engine := NewEngine(s)
	if _, err := engine.Apply(context.Background(), []string{"walk", "talk", "jump"}, []string{"verb"}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	set, err := s.Load(model.POSVerb)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	counts := make(map[string]int)
	for _, list := range [][]string{set.Pending, set.Safe, set.Unsafe} {
		for _, w := range list {
			counts[w]++
		}
	}
	for w, n := range counts {
		if n > 1 {
			t.Errorf("word %q appears %d times across categories", w, n)
		}
	}
	if !set.Contains("jump") {
		t.Error("expected new word jump to be added")
	}
}

func TestEngine_Apply_UnrecognizedPOSSkipped(t *testing.T) {
	s := store.NewMemoryStore()
	engine := NewEngine(s)

	report, err := engine.Apply(context.Background(), []string{"cat"}, []string{"pronoun", "interjection"})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if report.TotalAdded() != 0 {
		t.Errorf("expected nothing added, got %d", report.TotalAdded())
	}
	if len(report.Unrecognized) != 2 {
		t.Errorf("expected 2 unrecognized tags, got %v", report.Unrecognized)
	}

	for _, pos := range model.RecognizedPOS {
		set, err := s.Load(pos)
		if err != nil {
			t.Fatalf("Load %s: %v", pos, err)
		}
		if set.Len() != 0 {
			t.Errorf("%s: expected untouched store, got %+v", pos, set)
		}
	}
}

func TestEngine_Apply_CrossProduct(t *testing.T) {
	s := store.NewMemoryStore()
	engine := NewEngine(s)

	report, err := engine.Apply(context.Background(), []string{"fast"}, []string{"adjective", "adverb"})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	for _, pos := range []model.POS{model.POSAdjective, model.POSAdverb} {
		set, err := s.Load(pos)
		if err != nil {
			t.Fatalf("Load %s: %v", pos, err)
		}
		if len(set.Pending) != 1 || set.Pending[0] != "fast" {
			t.Errorf("%s: expected pending [fast], got %v", pos, set.Pending)
		}
	}

	if len(report.Results) != 2 {
		t.Errorf("expected results for 2 POS tags, got %d", len(report.Results))
	}
	if report.Results[0].POS != model.POSAdjective || report.Results[1].POS != model.POSAdverb {
		t.Errorf("expected input-order results, got %+v", report.Results)
	}
}

func TestEngine_Apply_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := NewEngine(store.NewMemoryStore())
	if _, err := engine.Apply(ctx, []string{"cat"}, []string{"noun"}); err == nil {
		t.Error("expected error for cancelled context")
	}
}
