package validate

import (
	"fmt"
	"regexp"
	"strings"
)

// wordPattern is the format contract for a word: lowercase ASCII letters only
var wordPattern = regexp.MustCompile(`^[a-z]+$`)

// InvalidWordsError reports every word in a batch that failed the format
// check. The whole batch is rejected; no word list is touched.
type InvalidWordsError struct {
	Words []string
}

func (e *InvalidWordsError) Error() string {
	return fmt.Sprintf(
		"The following words are invalid and cannot be processed: %s. Only alphabetic words are allowed.",
		strings.Join(e.Words, ", "),
	)
}

// Validator enforces the word-format contract over a whole batch
type Validator struct{}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks every word against the alphabetic-only rule. It collects
// all offenders, not just the first, and returns them together as a single
// *InvalidWordsError. A nil return means the batch may be merged.
func (v *Validator) Validate(words []string) error {
	var invalid []string
	for _, word := range words {
		if !wordPattern.MatchString(word) {
			invalid = append(invalid, word)
		}
	}

	if len(invalid) > 0 {
		return &InvalidWordsError{Words: invalid}
	}

	return nil
}
