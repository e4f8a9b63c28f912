package ranking

import (
	"math"
	"strings"
	"testing"

	"github.com/kailas-cloud/faqdesk/internal/domain/faq"
	"github.com/kailas-cloud/faqdesk/internal/repository/corpus"
)

func shippedCorpus(t testing.TB) *faq.Corpus {
	t.Helper()
	c, err := corpus.Default()
	if err != nil {
		t.Fatalf("load default corpus: %v", err)
	}
	return c
}

func newCorpus(t testing.TB, faqs ...faq.FAQ) *faq.Corpus {
	t.Helper()
	c, err := faq.NewCorpus("test", "now", faqs)
	if err != nil {
		t.Fatalf("new corpus: %v", err)
	}
	return c
}

func TestCompositeScore_Weights(t *testing.T) {
	f := faq.FAQ{ID: 1, Category: "blog", Question: "blog", Answer: "blog"}
	got := CompositeScore("blog", f)
	want := QuestionWeight + AnswerWeight + CategoryWeight
	if math.Abs(got-want) > eps {
		t.Errorf("CompositeScore = %v, want %v", got, want)
	}

	answerOnly := faq.FAQ{ID: 2, Category: "x", Question: "y", Answer: "blog"}
	if got := CompositeScore("blog", answerOnly); math.Abs(got-AnswerWeight) > eps {
		t.Errorf("answer-only score = %v, want %v", got, AnswerWeight)
	}
}

func TestRank_ExactMatch(t *testing.T) {
	c := shippedCorpus(t)

	got := Rank("How do I create an account?", c, 1)
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].ID != 1 {
		t.Errorf("expected faq 1, got %d", got[0].ID)
	}
	if cat := ClassifyCategory("How do I create an account?", c); cat != "Getting Started" {
		t.Errorf("ClassifyCategory = %q, want Getting Started", cat)
	}
}

func TestRankMatches_ShippedScores(t *testing.T) {
	c := shippedCorpus(t)

	got := RankMatches("How do I create an account?", c, 3)
	wantIDs := []int{1, 3, 2}
	if len(got) != len(wantIDs) {
		t.Fatalf("expected %d matches, got %d", len(wantIDs), len(got))
	}
	for i, id := range wantIDs {
		if got[i].FAQ.ID != id {
			t.Errorf("match %d: id %d, want %d", i, got[i].FAQ.ID, id)
		}
	}
	if got[0].Score < 1 {
		t.Errorf("exact question match should score at least 1, got %v", got[0].Score)
	}
}

func TestRank_NoOverlap(t *testing.T) {
	c := shippedCorpus(t)
	if got := Rank("Bitcoin price in USD?", c, 3); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}

func TestRank_WeakOverlapOnly(t *testing.T) {
	c := shippedCorpus(t)
	// Only stop-words like "what", "is", "the" overlap; no record comes close
	// to a question-level match.
	for _, m := range RankMatches("What is the price of Bitcoin today in USD?", c, 3) {
		if m.Score >= QuestionWeight/2 {
			t.Errorf("faq %d scored %v, expected a weak match", m.FAQ.ID, m.Score)
		}
	}
}

func TestRank_LimitRespected(t *testing.T) {
	c := shippedCorpus(t)
	for limit := 0; limit <= 5; limit++ {
		got := Rank("How do I create a blog post?", c, limit)
		if len(got) > limit {
			t.Errorf("limit %d: got %d results", limit, len(got))
		}
	}
	if got := Rank("blog", c, -1); len(got) != 0 {
		t.Errorf("negative limit should return nothing, got %d", len(got))
	}
}

func TestRank_ThresholdAfterTruncation(t *testing.T) {
	c := shippedCorpus(t)
	// "delete" clears the cutoff for only two records even though the limit is 3.
	got := RankMatches("delete", c, 3)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].FAQ.ID != 6 || got[1].FAQ.ID != 5 {
		t.Errorf("unexpected order: %d, %d", got[0].FAQ.ID, got[1].FAQ.ID)
	}
}

func TestRank_ThresholdAppliesToTruncatedWindow(t *testing.T) {
	// faq 1 overlaps 1 of 11 question tokens (0.09), so it is dropped even
	// though it fits inside the limit.
	c := newCorpus(t,
		faq.FAQ{ID: 1, Category: "x", Question: "alpha beta gamma delta epsilon zeta eta theta iota kappa lambda", Answer: "z"},
		faq.FAQ{ID: 2, Category: "x", Question: "alpha", Answer: "z"},
	)
	got := RankMatches("alpha", c, 2)
	if len(got) != 1 || got[0].FAQ.ID != 2 {
		t.Fatalf("expected only faq 2, got %+v", got)
	}
}

func TestRank_NeverReturnsAtOrBelowCutoff(t *testing.T) {
	c := shippedCorpus(t)
	queries := []string{
		"blog", "delete", "password", "markdown support", "How do I log in?",
		"What is the price of Bitcoin today in USD?", "the", "a an the of",
	}
	for _, q := range queries {
		for _, m := range RankMatches(q, c, c.Len()) {
			if m.Score <= MinScore {
				t.Errorf("query %q returned faq %d with score %v", q, m.FAQ.ID, m.Score)
			}
		}
	}
}

func TestRank_StableTies(t *testing.T) {
	c := newCorpus(t,
		faq.FAQ{ID: 10, Category: "c", Question: "reset password", Answer: "a"},
		faq.FAQ{ID: 4, Category: "c", Question: "reset password", Answer: "a"},
		faq.FAQ{ID: 7, Category: "c", Question: "reset password", Answer: "a"},
	)

	got := Rank("reset password", c, 3)
	want := []int{10, 4, 7}
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: id %d, want %d", i, got[i].ID, id)
		}
	}
}

func TestRank_Deterministic(t *testing.T) {
	c := shippedCorpus(t)
	q := "Can I edit or delete my blog?"
	first := Rank(q, c, 3)
	for i := 0; i < 20; i++ {
		again := Rank(q, c, 3)
		if len(again) != len(first) {
			t.Fatalf("run %d: length %d, want %d", i, len(again), len(first))
		}
		for j := range first {
			if again[j].ID != first[j].ID {
				t.Fatalf("run %d: position %d changed", i, j)
			}
		}
	}
}

func TestRank_NilCorpus(t *testing.T) {
	if got := Rank("anything", nil, 3); len(got) != 0 {
		t.Errorf("expected empty result for nil corpus, got %d", len(got))
	}
}

func TestRank_CaseInsensitive(t *testing.T) {
	c := shippedCorpus(t)
	a := Rank("HOW DO I LOG IN?", c, 1)
	b := Rank("how do i log in?", c, 1)
	if len(a) != 1 || len(b) != 1 || a[0].ID != b[0].ID || a[0].ID != 2 {
		t.Errorf("case should not matter: %+v vs %+v", a, b)
	}
}

func TestRank_DoesNotMutateCorpus(t *testing.T) {
	c := shippedCorpus(t)
	before := c.FAQs()
	_ = Rank("blog", c, 3)
	after := c.FAQs()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("corpus changed at %d", i)
		}
	}
	if !strings.HasPrefix(after[0].Question, "How do I create") {
		t.Error("unexpected first record")
	}
}
