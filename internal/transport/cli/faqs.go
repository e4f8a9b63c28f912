package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	faqdesk "github.com/kailas-cloud/faqdesk/pkg/sdk"
)

type faqOutput struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func newFAQsCommand(a *app) *cobra.Command {
	var (
		category string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "faqs",
		Short: "List knowledge base entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var faqs []faqdesk.FAQ
			if category != "" {
				faqs = a.client.Category(cmd.Context(), category).FAQs
			} else {
				faqs = a.client.FAQs(cmd.Context()).FAQs
			}

			if asJSON {
				out := make([]faqOutput, len(faqs))
				for i, f := range faqs {
					out[i] = faqOutput(f)
				}
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal faqs: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			if len(faqs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No FAQs found.")
				return nil
			}
			for _, f := range faqs {
				fmt.Fprintf(cmd.OutOrStdout(), "  [%d] (%s) %s\n", f.ID, f.Category, f.Question)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d FAQ(s)\n", len(faqs))
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only list this category (case-insensitive)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output FAQs as JSON")
	return cmd
}

func newCategoriesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List knowledge base categories",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, c := range a.client.Categories(cmd.Context()) {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
		},
	}
}
