package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/faqdesk/internal/domain/answer"
	faqdesk "github.com/kailas-cloud/faqdesk/pkg/sdk"
)

type askOutput struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Category  string `json:"category"`
	Timestamp string `json:"timestamp"`
}

func newAskCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask the support agent a question",
		Long: `Ranks the knowledge base against the question and prints the composed
answer. Words of a multi-word question may be passed unquoted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ans, err := a.client.Ask(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				var ve *faqdesk.ValidationError
				if errors.As(err, &ve) {
					return ve
				}
				return fmt.Errorf("ask failed: %w", err)
			}

			if asJSON {
				data, err := json.MarshalIndent(askOutput{
					Question:  ans.Question,
					Answer:    ans.Answer,
					Category:  ans.Category,
					Timestamp: ans.Timestamp.UTC().Format(answer.TimestampLayout),
				}, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal answer: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ans.Answer)
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintf(cmd.OutOrStdout(), "Category: %s\n", ans.Category)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output the answer as JSON")
	return cmd
}
