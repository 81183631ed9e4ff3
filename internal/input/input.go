package input

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoInput indicates that normalization produced no usable words or POS tags
var ErrNoInput = errors.New("no valid words or POS provided")

// SplitLines normalizes raw multi-line text into an ordered sequence of
// trimmed, lowercased, non-empty entries. Repeated lines yield repeated
// entries; deduplication happens later, inside the merge itself.
func SplitLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		entry := strings.ToLower(strings.TrimSpace(line))
		if entry == "" {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// ReadLinesFromFile reads entries from a file (one per line) and applies
// the same normalization as SplitLines. Lines starting with # are comments.
func ReadLinesFromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var entries []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, strings.ToLower(line))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return entries, nil
}
