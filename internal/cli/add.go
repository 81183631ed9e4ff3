package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/phrasekit/wordgate/internal/input"
	"github.com/phrasekit/wordgate/internal/model"
	"github.com/phrasekit/wordgate/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	wordsText   string
	wordsFile   string
	posText     string
	posFile     string
	storeDir    string
	outJSON     string
	dryRun      bool
	addTimeout  time.Duration
	notifyRepo  string
	notifyIssue int
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Validate a batch of words and merge them into the word lists",
	Long: `Add normalizes and validates a batch of (word, POS) pairs, then merges
each pair into the matching word-list file, appending new words to the
pending category. Words already present in pending, safe, or unsafe are
left untouched, so re-running a batch is a no-op.

Words and POS tags are newline-separated. They can come from flags,
files, or the WORDS and POS environment variables (in that order of
preference), which makes the command usable directly from a GitHub
Actions issue workflow.

If any word fails the alphabetic-only check, the whole batch is rejected,
no file is written, and the offending words are posted as a comment to
the configured GitHub issue.

Example:
  wordgate add --words "cat" --pos "noun"
  wordgate add --words-file words.txt --pos "noun
adjective"
  WORDS="cat" POS="noun" wordgate add --dir ./Resources
  wordgate add --words "cat" --pos "noun" --dry-run`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	// Input flags
	addCmd.Flags().StringVar(&wordsText, "words", "", "newline-separated words (default: WORDS env var)")
	addCmd.Flags().StringVar(&wordsFile, "words-file", "", "file with one word per line")
	addCmd.Flags().StringVar(&posText, "pos", "", "newline-separated POS tags (default: POS env var)")
	addCmd.Flags().StringVar(&posFile, "pos-file", "", "file with one POS tag per line")

	// Storage and output flags
	addCmd.Flags().StringVar(&storeDir, "dir", "Sources/PhraseKit/Resources", "directory holding the word-list files")
	addCmd.Flags().StringVar(&outJSON, "json", "", "output JSON report path (optional)")
	addCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would change without writing")
	addCmd.Flags().DurationVar(&addTimeout, "timeout", 2*time.Minute, "overall timeout")

	// Notifier flags
	addCmd.Flags().StringVar(&notifyRepo, "repo", "", "GitHub repository for failure comments (default: GITHUB_REPOSITORY env var)")
	addCmd.Flags().IntVar(&notifyIssue, "issue", 0, "GitHub issue number for failure comments (default: GITHUB_ISSUE_NUMBER env var)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), addTimeout)
	defer cancel()

	rawWords, err := resolveInput(wordsText, wordsFile, "WORDS")
	if err != nil {
		return fmt.Errorf("words input: %w", err)
	}
	rawPOS, err := resolveInput(posText, posFile, "POS")
	if err != nil {
		return fmt.Errorf("pos input: %w", err)
	}

	// Build configuration from flags and environment
	cfg := model.DefaultConfig()
	cfg.Storage.Dir = storeDir
	cfg.Output.Verbose = verbose
	cfg.Output.JSONPath = outJSON

	cfg.Notify.Repository = notifyRepo
	if cfg.Notify.Repository == "" {
		cfg.Notify.Repository = os.Getenv("GITHUB_REPOSITORY")
	}
	cfg.Notify.IssueNumber = notifyIssue
	if cfg.Notify.IssueNumber == 0 {
		if n, err := strconv.Atoi(os.Getenv("GITHUB_ISSUE_NUMBER")); err == nil {
			cfg.Notify.IssueNumber = n
		}
	}
	cfg.Notify.Token = os.Getenv("GITHUB_TOKEN")

	// Without a token there is nothing to notify with
	if cfg.Notify.Token == "" {
		cfg.Notify.Repository = ""
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Word lists: %s\n", cfg.Storage.Dir)
		if cfg.Notify.Repository != "" {
			fmt.Fprintf(os.Stderr, "Notifier: %s#%d\n", cfg.Notify.Repository, cfg.Notify.IssueNumber)
		}
		fmt.Fprintln(os.Stderr)
	}

	p, err := pipeline.NewPipeline(cfg, dryRun)
	if err != nil {
		return err
	}

	report, err := p.Run(ctx, rawWords, rawPOS)
	if err != nil {
		return err
	}

	renderer := pipeline.NewRenderer(verbose)
	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render report: %w", err)
		}
	}
	renderer.RenderSummary(report)

	return nil
}

// resolveInput picks the raw text from flag, file, or environment variable,
// in that order.
func resolveInput(flagValue, filePath, envVar string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if filePath != "" {
		lines, err := input.ReadLinesFromFile(filePath)
		if err != nil {
			return "", err
		}
		return strings.Join(lines, "\n"), nil
	}
	return os.Getenv(envVar), nil
}
