package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/faqdesk/internal/ranking"
)

func newRankCommand(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "rank [query]",
		Short: "Show how the knowledge base scores a query",
		Long: `Prints the FAQs the support agent would consider for a query with
their composite relevance scores. Entries at or below the relevance
threshold are not shown.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches := a.client.Rank(cmd.Context(), strings.Join(args, " "), limit)
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matches above threshold.")
				return nil
			}
			for i, m := range matches {
				fmt.Fprintf(cmd.OutOrStdout(), "  [%d] %.4f  #%d (%s) %s\n", i+1, m.Score, m.FAQ.ID, m.FAQ.Category, m.FAQ.Question)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", ranking.ComposeLimit, "maximum number of matches")
	return cmd
}
