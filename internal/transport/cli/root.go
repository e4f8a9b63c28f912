// Package cli implements the faqctl command line over the faqdesk SDK.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	faqdesk "github.com/kailas-cloud/faqdesk/pkg/sdk"
)

// ExitCodeValidation is returned by faqctl when a question is rejected.
const ExitCodeValidation = 2

// app carries state shared by the subcommands of one root command.
type app struct {
	kbPath string
	client *faqdesk.Client
	// open builds the SDK client; tests swap it.
	open func(ctx context.Context, opts ...faqdesk.Option) (*faqdesk.Client, error)
}

// NewRootCommand builds the faqctl command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{open: faqdesk.New})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "faqctl",
		Short: "Ask the blogging platform support agent from the terminal",
		Long: `faqctl answers questions from the help center knowledge base
using the same keyword ranking as the support API.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.connect,
		PersistentPostRun: func(_ *cobra.Command, _ []string) { a.close() },
	}
	root.PersistentFlags().StringVar(&a.kbPath, "kb", "", "knowledge base YAML file (default: shipped help center)")

	root.AddCommand(
		newAskCommand(a),
		newFAQsCommand(a),
		newCategoriesCommand(a),
		newRankCommand(a),
		newVersionCommand(),
	)
	return root
}

func (a *app) connect(cmd *cobra.Command, _ []string) error {
	if a.client != nil {
		return nil
	}
	var opts []faqdesk.Option
	if a.kbPath != "" {
		opts = append(opts, faqdesk.WithKnowledgeBaseFile(a.kbPath))
	}
	client, err := a.open(cmd.Context(), opts...)
	if err != nil {
		return fmt.Errorf("failed to load knowledge base: %w", err)
	}
	a.client = client
	return nil
}

func (a *app) close() {
	if a.client != nil {
		a.client.Close()
		a.client = nil
	}
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, faqdesk.ErrValidation):
		return ExitCodeValidation
	default:
		return 1
	}
}
