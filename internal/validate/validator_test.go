package validate

import (
	"errors"
	"strings"
	"testing"
)

func TestValidator_Validate_AllValid(t *testing.T) {
	v := NewValidator()

	if err := v.Validate([]string{"cat", "dog", "run"}); err != nil {
		t.Errorf("expected valid batch to pass, got %v", err)
	}
}

func TestValidator_Validate_CollectsAllOffenders(t *testing.T) {
	v := NewValidator()

	err := v.Validate([]string{"cat", "123abc", "dog", "h3llo", "ok!"})
	if err == nil {
		t.Fatal("expected error for invalid words")
	}

	var invalidErr *InvalidWordsError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected *InvalidWordsError, got %T", err)
	}

	want := []string{"123abc", "h3llo", "ok!"}
	if len(invalidErr.Words) != len(want) {
		t.Fatalf("expected %v, got %v", want, invalidErr.Words)
	}
	for i := range want {
		if invalidErr.Words[i] != want[i] {
			t.Errorf("offender %d: expected %q, got %q", i, want[i], invalidErr.Words[i])
		}
	}
}

func TestValidator_Validate_Message(t *testing.T) {
	v := NewValidator()

	err := v.Validate([]string{"123abc", "no-no"})
	if err == nil {
		t.Fatal("expected error")
	}

	msg := err.Error()
	if !strings.Contains(msg, "123abc, no-no") {
		t.Errorf("expected comma-joined offender list in message, got %q", msg)
	}
	if !strings.Contains(msg, "Only alphabetic words are allowed") {
		t.Errorf("expected explanatory text in message, got %q", msg)
	}
}

func TestValidator_Validate_RejectedForms(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		word string
		desc string
	}{
		{"", "empty string"},
		{"Cat", "uppercase letter"},
		{"ca t", "embedded space"},
		{"cat1", "trailing digit"},
		{"c-a-t", "hyphens"},
		{"naïve", "non-ASCII letter"},
		{"кот", "non-Latin script"},
	}

	for _, tt := range tests {
		if err := v.Validate([]string{tt.word}); err == nil {
			t.Errorf("%s (%q): expected rejection", tt.desc, tt.word)
		}
	}
}

func TestValidator_Validate_DuplicateOffendersPreserved(t *testing.T) {
	v := NewValidator()

	err := v.Validate([]string{"1bad", "cat", "1bad"})
	if err == nil {
		t.Fatal("expected error")
	}

	var invalidErr *InvalidWordsError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected *InvalidWordsError, got %T", err)
	}
	if len(invalidErr.Words) != 2 {
		t.Errorf("expected duplicate offenders preserved, got %v", invalidErr.Words)
	}
}
