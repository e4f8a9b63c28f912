// Package faqdesk embeds the faqdesk support agent in a Go program.
//
// The client answers free-text questions from a fixed FAQ knowledge base by
// keyword overlap, with no network dependency unless an answer cache is
// configured.
//
//	client, _ := faqdesk.New(ctx)
//	defer client.Close()
//
//	ans, err := client.Ask(ctx, "How do I create an account?")
//	if errors.Is(err, faqdesk.ErrValidation) {
//	    // too short, too long or empty
//	}
//	fmt.Println(ans.Category, ans.Answer)
//
// A custom knowledge base, an answer cache and observability are opt-in:
//
//	client, _ := faqdesk.New(ctx,
//	    faqdesk.WithKnowledgeBaseFile("help-center.yaml"),
//	    faqdesk.WithValkey("localhost:6379", ""),
//	    faqdesk.WithLogger(slog.Default()),
//	    faqdesk.WithPrometheus(prometheus.DefaultRegisterer),
//	)
package faqdesk
