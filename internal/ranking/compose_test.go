package ranking

import (
	"strings"
	"testing"

	"github.com/kailas-cloud/faqdesk/internal/domain/faq"
)

func TestComposeAnswer_Fallback(t *testing.T) {
	c := shippedCorpus(t)
	q := "Bitcoin price in USD?"

	got := ComposeAnswer(q, c)
	if !strings.HasPrefix(got, "I'm sorry") {
		t.Errorf("expected apology, got %q", got)
	}
	if !strings.Contains(got, `"`+q+`"`) {
		t.Errorf("fallback must quote the query verbatim: %q", got)
	}
	for _, hint := range TopicHints {
		if !strings.Contains(got, "- "+hint) {
			t.Errorf("fallback missing topic hint %q", hint)
		}
	}
}

func TestComposeAnswer_FallbackKeepsQueryUnescaped(t *testing.T) {
	c := newCorpus(t, faq.FAQ{ID: 1, Category: "c", Question: "q", Answer: "a"})
	q := `What's "zzz" über?`
	if got := ComposeAnswer(q, c); !strings.Contains(got, q) {
		t.Errorf("query not echoed verbatim: %q", got)
	}
}

func TestComposeAnswer_SingleMatch(t *testing.T) {
	c := shippedCorpus(t)

	got := ComposeAnswer("password", c)
	want := c.FAQs()[14].Answer + "\n\nIs there anything else you'd like to know?"
	if got != want {
		t.Errorf("ComposeAnswer = %q, want %q", got, want)
	}
}

func TestComposeAnswer_MultipleMatches(t *testing.T) {
	c := newCorpus(t,
		faq.FAQ{ID: 1, Category: "Blog", Question: "How do I delete a post?", Answer: "Click Delete."},
		faq.FAQ{ID: 2, Category: "Other", Question: "Unrelated entry here", Answer: "Nothing."},
		faq.FAQ{ID: 3, Category: "Blog", Question: "How do I edit a post?", Answer: "Click Edit."},
	)

	got := ComposeAnswer("How do I delete a post?", c)
	want := "Here's what I found that might help:\n\n" +
		"**How do I delete a post?**\nClick Delete.\n\n" +
		"**How do I edit a post?**\nClick Edit.\n\n" +
		"Does this answer your question? Feel free to ask for more details!"
	if got != want {
		t.Errorf("ComposeAnswer =\n%s\nwant\n%s", got, want)
	}
}

func TestComposeAnswer_AtMostThreeSections(t *testing.T) {
	c := shippedCorpus(t)
	got := ComposeAnswer("How do I create an account?", c)
	if n := strings.Count(got, "**") / 2; n != ComposeLimit {
		t.Errorf("expected %d sections, got %d", ComposeLimit, n)
	}
	if !strings.HasPrefix(got, "Here's what I found") {
		t.Errorf("unexpected header: %q", got)
	}
	first := strings.Index(got, "**How do I create an account?**")
	second := strings.Index(got, "**How do I create a blog post?**")
	if first < 0 || second < 0 || first > second {
		t.Errorf("sections out of ranked order: %q", got)
	}
}

func TestComposeAnswer_Deterministic(t *testing.T) {
	c := shippedCorpus(t)
	q := "Who can see my blog posts?"
	want := ComposeAnswer(q, c)
	for i := 0; i < 10; i++ {
		if got := ComposeAnswer(q, c); got != want {
			t.Fatalf("run %d differs", i)
		}
	}
}

func TestClassifyCategory(t *testing.T) {
	c := shippedCorpus(t)
	tests := []struct {
		query string
		want  string
	}{
		{"How do I create an account?", "Getting Started"},
		{"how do i delete a blog post?", "Blog Management"},
		{"Is my data secure?", "Account & Security"},
		{"Bitcoin price in USD?", FallbackCategory},
	}
	for _, tc := range tests {
		if got := ClassifyCategory(tc.query, c); got != tc.want {
			t.Errorf("ClassifyCategory(%q) = %q, want %q", tc.query, got, tc.want)
		}
	}
}

func TestRespond_AgreesWithComposeAndClassify(t *testing.T) {
	c := shippedCorpus(t)
	queries := []string{
		"How do I create an account?",
		"password",
		"delete",
		"What is the price of Bitcoin today in USD?",
		"Bitcoin price in USD?",
		"Can I make a blog post private or draft?",
	}
	for _, q := range queries {
		r := Respond(q, c)
		if r.Text != ComposeAnswer(q, c) {
			t.Errorf("%q: text differs from ComposeAnswer", q)
		}
		if r.Category != ClassifyCategory(q, c) {
			t.Errorf("%q: category %q differs from ClassifyCategory %q", q, r.Category, ClassifyCategory(q, c))
		}
		if len(r.Matches) > ComposeLimit {
			t.Errorf("%q: %d matches", q, len(r.Matches))
		}
	}
}
