package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
}

func runStats(cmd *cobra.Command, args []string) error {
	engine, err := loadEngine(cmd.Context(), cmd.ErrOrStderr(), false)
	if err != nil {
		return err
	}

	stats := engine.Stats()
	corpusStats, err := engine.CorpusStats()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if statsJSON {
		output, _ := json.MarshalIndent(map[string]any{
			"totalDocuments": stats.TotalDocuments,
			"accuracy":       stats.Accuracy,
			"uniqueTerms":    corpusStats.UniqueTerms,
			"avgDocLength":   corpusStats.AvgDocLength,
			"approxTokens":   corpusStats.ApproxTokens,
		}, "", "  ")
		fmt.Fprintln(out, string(output))
		return nil
	}

	fmt.Fprintf(out, "Documents:      %d\n", stats.TotalDocuments)
	fmt.Fprintf(out, "Unique terms:   %d\n", corpusStats.UniqueTerms)
	fmt.Fprintf(out, "Avg doc length: %.1f tokens\n", corpusStats.AvgDocLength)
	fmt.Fprintf(out, "Corpus size:    ~%d tokens\n", corpusStats.ApproxTokens)
	fmt.Fprintf(out, "Accuracy:       %d%%\n", stats.Accuracy)
	return nil
}
