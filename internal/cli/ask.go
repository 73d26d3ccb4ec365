package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"legalqa/internal/adapter/composer"
	"legalqa/internal/domain"
)

var (
	askQuery      string
	askMaxResults int
	askJSON       bool
	askHTML       bool
	askSources    bool
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Answer a single legal question",
	Long: `Search the corpus and compose an answer for one question.

Examples:
  legalqa ask -q "What is the punishment for unauthorized access?"
  legalqa ask -q "my husband beats me, what should I do" --sources
  legalqa ask -q "data breach penalty" --json`,
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().StringVarP(&askQuery, "query", "q", "", "question to answer (required)")
	askCmd.Flags().IntVarP(&askMaxResults, "max-results", "k", 0, "number of documents to rank (default from config)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output search result and answer as JSON")
	askCmd.Flags().BoolVar(&askHTML, "html", false, "render the answer as HTML")
	askCmd.Flags().BoolVar(&askSources, "sources", false, "list the cited sources")
	askCmd.MarkFlagRequired("query")
}

func runAsk(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	engine, err := loadEngine(cmd.Context(), cmd.ErrOrStderr(), !askJSON)
	if err != nil {
		return err
	}

	result, answer := engine.Ask(askQuery, askMaxResults)

	if askJSON {
		output, err := json.MarshalIndent(struct {
			Search domain.SearchResult `json:"search"`
			Answer domain.Answer       `json:"answer"`
		}{result, answer}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		fmt.Fprintln(out, string(output))
		return nil
	}

	text, err := formatAnswer(answer.Text, askHTML || GetConfig().Answer.Format == "html")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, text)

	if askSources {
		printSources(cmd, answer.Sources)
	}
	return nil
}

func formatAnswer(text string, html bool) (string, error) {
	if !html {
		return text, nil
	}
	rendered, err := composer.RenderHTML(text)
	if err != nil {
		return "", fmt.Errorf("failed to render answer: %w", err)
	}
	return strings.TrimSpace(rendered), nil
}

func printSources(cmd *cobra.Command, sources []domain.Source) {
	out := cmd.OutOrStdout()
	if len(sources) == 0 {
		return
	}
	fmt.Fprintln(out, "\nSources Found:")
	for i, s := range sources {
		label := s.Metadata.Name
		if label == "" {
			label = s.Metadata.Act
		}
		if s.Metadata.Section != "" {
			label = strings.TrimSpace(label + " s." + s.Metadata.Section)
		}
		if label != "" {
			fmt.Fprintf(out, "  [%d] %d%% %s: %s\n", i+1, s.Confidence, label, s.Text)
		} else {
			fmt.Fprintf(out, "  [%d] %d%% %s\n", i+1, s.Confidence, s.Text)
		}
	}
}
