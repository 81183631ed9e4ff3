package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/phrasekit/wordgate/internal/model"
	"github.com/phrasekit/wordgate/internal/store"
	"github.com/spf13/cobra"
)

var (
	statsDir  string
	statsJSON bool
)

// posStats is one row of the stats output
type posStats struct {
	POS     model.POS `json:"pos"`
	Pending int       `json:"pending"`
	Safe    int       `json:"safe"`
	Unsafe  int       `json:"unsafe"`
	Total   int       `json:"total"`
}

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-POS word counts",
	Long: `Stats reads every recognized word-list file and prints how many words
each one holds per category. Missing files count as empty lists.

Example:
  wordgate stats
  wordgate stats --dir ./Resources --json`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsDir, "dir", "Sources/PhraseKit/Resources", "directory holding the word-list files")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
}

func runStats(cmd *cobra.Command, args []string) error {
	s := store.NewDiskStore(statsDir)

	var rows []posStats
	for _, pos := range model.RecognizedPOS {
		set, err := s.Load(pos)
		if err != nil {
			return fmt.Errorf("load %s: %w", pos, err)
		}
		rows = append(rows, posStats{
			POS:     pos,
			Pending: len(set.Pending),
			Safe:    len(set.Safe),
			Unsafe:  len(set.Unsafe),
			Total:   set.Len(),
		})
	}

	if statsJSON {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal stats: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-12s %8s %8s %8s %8s\n", "POS", "pending", "safe", "unsafe", "total")
	for _, row := range rows {
		fmt.Fprintf(os.Stdout, "%-12s %8d %8d %8d %8d\n",
			row.POS, row.Pending, row.Safe, row.Unsafe, row.Total)
	}

	return nil
}
