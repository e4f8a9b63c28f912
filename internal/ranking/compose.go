package ranking

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/faqdesk/internal/domain/faq"
)

// Response assembly settings.
const (
	// ComposeLimit is how many matches an answer may quote.
	ComposeLimit = 3
	// FallbackCategory is reported when no record matches.
	FallbackCategory = "General"

	singleClosing = "Is there anything else you'd like to know?"
	multiHeader   = "Here's what I found that might help:"
	multiClosing  = "Does this answer your question? Feel free to ask for more details!"
)

// TopicHints are the areas the fallback reply offers help with.
var TopicHints = []string{
	"Creating an account and logging in",
	"Creating, editing, and deleting blog posts",
	"Platform features and security",
	"Troubleshooting common issues",
}

// ComposeAnswer builds the reply text for query from the best matches.
func ComposeAnswer(query string, corpus *faq.Corpus) string {
	return composeFrom(query, Rank(query, corpus, ComposeLimit))
}

func composeFrom(query string, matches []faq.FAQ) string {
	switch len(matches) {
	case 0:
		return fallback(query)
	case 1:
		return matches[0].Answer + "\n\n" + singleClosing
	}

	var b strings.Builder
	b.WriteString(multiHeader)
	b.WriteString("\n\n")
	for _, m := range matches {
		fmt.Fprintf(&b, "**%s**\n%s\n\n", m.Question, m.Answer)
	}
	b.WriteString(multiClosing)
	return b.String()
}

func fallback(query string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I'm sorry, I couldn't find specific information about \"%s\" in my knowledge base.\n\n", query)
	b.WriteString("However, I can help you with questions about:\n")
	for _, hint := range TopicHints {
		b.WriteString("- ")
		b.WriteString(hint)
		b.WriteString("\n")
	}
	b.WriteString("\nCould you please rephrase your question or ask about one of these topics?")
	return b.String()
}

// ClassifyCategory returns the category of the single best match, or
// FallbackCategory when nothing clears the cutoff.
func ClassifyCategory(query string, corpus *faq.Corpus) string {
	top := Rank(query, corpus, 1)
	if len(top) == 0 {
		return FallbackCategory
	}
	return top[0].Category
}

// Reply is the full outcome of answering one query.
type Reply struct {
	Text     string
	Category string
	Matches  []faq.FAQ
}

// Respond ranks once and derives both the answer text and the category.
// It agrees with ComposeAnswer and ClassifyCategory: the best of the top
// ComposeLimit matches is the best single match.
func Respond(query string, corpus *faq.Corpus) Reply {
	matches := Rank(query, corpus, ComposeLimit)
	category := FallbackCategory
	if len(matches) > 0 {
		category = matches[0].Category
	}
	return Reply{
		Text:     composeFrom(query, matches),
		Category: category,
		Matches:  matches,
	}
}
