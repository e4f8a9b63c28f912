package ranking

import (
	"sort"

	"github.com/kailas-cloud/faqdesk/internal/domain/faq"
)

// Composite score weights and the noise cutoff. These are tuning constants
// shared with every deployed client; changing them changes which FAQs match.
const (
	QuestionWeight = 1.0
	AnswerWeight   = 0.5
	CategoryWeight = 0.3
	MinScore       = 0.1
)

// Match is a record paired with its composite relevance score.
type Match struct {
	FAQ   faq.FAQ
	Score float64
}

// CompositeScore weighs the overlap of query with each field of f.
func CompositeScore(query string, f faq.FAQ) float64 {
	return compositeTokens(Tokenize(query), f)
}

func compositeTokens(query []string, f faq.FAQ) float64 {
	return QuestionWeight*scoreTokens(query, Tokenize(f.Question)) +
		AnswerWeight*scoreTokens(query, Tokenize(f.Answer)) +
		CategoryWeight*scoreTokens(query, Tokenize(f.Category))
}

// RankMatches scores every record, keeps the top limit by composite score
// (ties keep corpus order) and then drops those scoring MinScore or less.
// The cutoff runs after truncation, so fewer than limit matches may come
// back even when more records scored above zero.
func RankMatches(query string, corpus *faq.Corpus, limit int) []Match {
	if limit <= 0 || corpus == nil {
		return []Match{}
	}

	tokens := Tokenize(query)
	scored := make([]Match, 0, corpus.Len())
	corpus.Each(func(f faq.FAQ) {
		scored = append(scored, Match{FAQ: f, Score: compositeTokens(tokens, f)})
	})

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	out := make([]Match, 0, len(scored))
	for _, m := range scored {
		if m.Score > MinScore {
			out = append(out, m)
		}
	}
	return out
}

// Rank is RankMatches without the scores.
func Rank(query string, corpus *faq.Corpus, limit int) []faq.FAQ {
	matches := RankMatches(query, corpus, limit)
	out := make([]faq.FAQ, len(matches))
	for i, m := range matches {
		out[i] = m.FAQ
	}
	return out
}
