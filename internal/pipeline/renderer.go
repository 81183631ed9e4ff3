package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/phrasekit/wordgate/internal/model"
)

// Renderer writes merge reports to stdout and optional JSON files
type Renderer struct {
	verbose bool
}

// NewRenderer creates a renderer
func NewRenderer(verbose bool) *Renderer {
	return &Renderer{verbose: verbose}
}

// RenderSummary prints a human-readable outcome to stdout
func (r *Renderer) RenderSummary(report *model.Report) {
	if report.DryRun {
		fmt.Println("Dry run: no word lists were written.")
	}

	if report.TotalAdded() == 0 && len(report.Results) == 0 {
		fmt.Println("No recognized POS tags in input; nothing to do.")
	} else {
		fmt.Println("Words successfully added to the pending list in the appropriate JSON files.")
	}

	if !r.verbose {
		return
	}

	for _, res := range report.Results {
		fmt.Fprintf(os.Stderr, "  %s: %d added, %d already present\n",
			res.POS, len(res.Added), len(res.Skipped))
		for _, w := range res.Added {
			fmt.Fprintf(os.Stderr, "    + %s\n", w)
		}
	}
	for _, tag := range report.Unrecognized {
		fmt.Fprintf(os.Stderr, "  skipped unrecognized POS tag: %s\n", tag)
	}
}

// RenderJSON writes the full report to a file
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if r.verbose {
		fmt.Fprintf(os.Stderr, "✓ Wrote JSON report: %s\n", path)
	}

	return nil
}
