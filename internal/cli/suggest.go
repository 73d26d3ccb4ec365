package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var suggestLimit int

var suggestCmd = &cobra.Command{
	Use:   "suggest <text>",
	Short: "Suggest related names and questions from the corpus metadata",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().IntVarP(&suggestLimit, "limit", "n", 5, "maximum suggestions (at most 5)")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	engine, err := loadEngine(cmd.Context(), cmd.ErrOrStderr(), false)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	suggestions := engine.Suggest(strings.Join(args, " "), suggestLimit)
	if len(suggestions) == 0 {
		fmt.Fprintln(out, "No suggestions.")
		return nil
	}
	for _, s := range suggestions {
		fmt.Fprintln(out, s)
	}
	return nil
}
