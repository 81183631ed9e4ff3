package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/phrasekit/wordgate/internal/llm"
	"github.com/phrasekit/wordgate/internal/model"
	"github.com/phrasekit/wordgate/internal/store"
	"github.com/spf13/cobra"
)

var (
	triageDir      string
	triagePOS      string
	triageProvider string
	triageModel    string
	triageTimeout  time.Duration
)

// triageCmd represents the triage command
var triageCmd = &cobra.Command{
	Use:   "triage",
	Short: "Get advisory safe/unsafe recommendations for pending words",
	Long: `Triage reads the pending words of one POS list and asks an LLM for an
advisory safe/unsafe recommendation per word, printed to stdout.

The recommendations are NEVER written back: wordgate does not reclassify
words. A human (or an external review process) decides what moves out of
pending.

Example:
  wordgate triage --pos noun --llm-provider openai
  wordgate triage --pos verb --llm-provider ollama --llm-model llama3.1:8b`,
	Args: cobra.NoArgs,
	RunE: runTriage,
}

func init() {
	rootCmd.AddCommand(triageCmd)

	triageCmd.Flags().StringVar(&triageDir, "dir", "Sources/PhraseKit/Resources", "directory holding the word-list files")
	triageCmd.Flags().StringVar(&triagePOS, "pos", "", "POS tag to triage (adjective, adverb, noun, verb)")
	triageCmd.Flags().StringVar(&triageProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	triageCmd.Flags().StringVar(&triageModel, "llm-model", "", "LLM model name")
	triageCmd.Flags().DurationVar(&triageTimeout, "timeout", 2*time.Minute, "overall timeout")

	_ = triageCmd.MarkFlagRequired("pos")
}

func runTriage(cmd *cobra.Command, args []string) error {
	pos := model.POS(triagePOS)
	if !pos.Recognized() {
		return fmt.Errorf("unrecognized POS tag: %s (supported: adjective, adverb, noun, verb)", triagePOS)
	}

	ctx, cancel := context.WithTimeout(context.Background(), triageTimeout)
	defer cancel()

	// Configure the provider
	llmCfg := llm.DefaultConfig()
	llmCfg.Provider = triageProvider
	llmCfg.Model = triageModel

	switch triageProvider {
	case "openai":
		llmCfg.APIKey = os.Getenv("OPENAI_API_KEY")
		if llmCfg.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			llmCfg.BaseURL = baseURL
		}
	}

	provider, err := llm.NewProvider(llmCfg)
	if err != nil {
		return err
	}
	if provider == nil {
		return fmt.Errorf("no LLM provider configured")
	}

	// Load the pending words
	s := store.NewDiskStore(triageDir)
	set, err := s.Load(pos)
	if err != nil {
		return fmt.Errorf("load %s: %w", pos, err)
	}

	if len(set.Pending) == 0 {
		fmt.Printf("No pending %s words to triage.\n", pos)
		return nil
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Triaging %d pending %s words with %s\n", len(set.Pending), pos, provider.Name())
	}

	resp, err := provider.Review(ctx, llm.ReviewRequest{
		POS:   pos,
		Words: set.Pending,
	})
	if err != nil {
		return fmt.Errorf("review: %w", err)
	}

	fmt.Printf("Advisory recommendations for pending %s words (%s):\n\n", pos, resp.Model)
	advised := make(map[string]bool)
	for _, a := range resp.Advice {
		advised[a.Word] = true
		if a.Reason != "" {
			fmt.Printf("  %-20s %-8s %s\n", a.Word, a.Recommendation, a.Reason)
		} else {
			fmt.Printf("  %-20s %s\n", a.Word, a.Recommendation)
		}
	}
	for _, w := range set.Pending {
		if !advised[w] {
			fmt.Printf("  %-20s (no recommendation)\n", w)
		}
	}

	fmt.Println("\nNothing was changed; review decisions are applied outside wordgate.")
	return nil
}
