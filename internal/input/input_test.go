package input

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSplitLines_TrimAndLowercase(t *testing.T) {
	got := SplitLines("  Cat \ncat\n\n DOG\n")

	want := []string{"cat", "cat", "dog"}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSplitLines_KeepsDuplicates(t *testing.T) {
	got := SplitLines("run\nrun\nrun")

	if len(got) != 3 {
		t.Errorf("expected duplicates preserved, got %v", got)
	}
}

func TestSplitLines_Empty(t *testing.T) {
	if got := SplitLines(""); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
	if got := SplitLines("  \n\t\n  "); got != nil {
		t.Errorf("expected nil for blank input, got %v", got)
	}
}

func TestReadLinesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "Cat\n# a comment\n\ndog\nDOG\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := ReadLinesFromFile(path)
	if err != nil {
		t.Fatalf("ReadLinesFromFile failed: %v", err)
	}

	want := []string{"cat", "dog", "dog"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestReadLinesFromFile_Missing(t *testing.T) {
	_, err := ReadLinesFromFile(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}
