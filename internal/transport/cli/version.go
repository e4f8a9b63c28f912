package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/faqdesk/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		// No knowledge base needed.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "faqctl version %s\n", version.String())
		},
	}
}
