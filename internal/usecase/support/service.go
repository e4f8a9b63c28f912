package support

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/faqdesk/internal/domain/answer"
	"github.com/kailas-cloud/faqdesk/internal/domain/faq"
	"github.com/kailas-cloud/faqdesk/internal/domain/question"
	logpkg "github.com/kailas-cloud/faqdesk/internal/logger"
	"github.com/kailas-cloud/faqdesk/internal/metrics"
	"github.com/kailas-cloud/faqdesk/internal/ranking"
	"github.com/kailas-cloud/faqdesk/internal/repository/answercache"
)

// KnowledgeBase is the full listing of the corpus.
type KnowledgeBase struct {
	Title       string
	LastUpdated string
	Categories  []string
	FAQs        []faq.FAQ
}

// CategoryListing is the subset of the corpus in one category.
type CategoryListing struct {
	Category string
	FAQs     []faq.FAQ
}

// Service answers support questions from a fixed knowledge base.
type Service struct {
	corpus *faq.Corpus
	cache  AnswerCache
	now    func() time.Time
}

// New creates a support service over corpus.
func New(corpus *faq.Corpus) *Service {
	return &Service{corpus: corpus, now: time.Now}
}

// WithCache enables answer caching. A nil cache disables it.
func (s *Service) WithCache(c AnswerCache) *Service {
	s.cache = c
	return s
}

// WithClock overrides the timestamp source.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// Corpus returns the knowledge base the service answers from.
func (s *Service) Corpus() *faq.Corpus { return s.corpus }

// Ask answers a validated question.
func (s *Service) Ask(ctx context.Context, q question.Question) (answer.Answer, error) {
	if q.IsZero() {
		return answer.Answer{}, &question.ValidationError{Kind: question.KindMissing}
	}

	text := q.Text()
	log := logpkg.FromContext(ctx)

	entry, cached := s.lookup(ctx, text)
	if !cached {
		reply := ranking.Respond(text, s.corpus)
		entry = answercache.Entry{Answer: reply.Text, Category: reply.Category}

		outcome := "matched"
		if len(reply.Matches) == 0 {
			outcome = "fallback"
		}
		metrics.SupportQueriesTotal.WithLabelValues(outcome).Inc()
		metrics.SupportMatches.Observe(float64(len(reply.Matches)))

		log.Debug("Answered support question",
			zap.String("category", reply.Category),
			zap.Int("matches", len(reply.Matches)),
			zap.String("outcome", outcome),
		)

		if s.cache != nil {
			s.cache.Put(ctx, s.corpus.Fingerprint(), text, entry)
		}
	} else {
		log.Debug("Served cached answer", zap.String("category", entry.Category))
	}

	return answer.Answer{
		Question:  text,
		Answer:    entry.Answer,
		Category:  entry.Category,
		Timestamp: s.now(),
	}, nil
}

func (s *Service) lookup(ctx context.Context, text string) (answercache.Entry, bool) {
	if s.cache == nil {
		return answercache.Entry{}, false
	}
	return s.cache.Get(ctx, s.corpus.Fingerprint(), text)
}

// KnowledgeBase lists every record with the corpus metadata.
func (s *Service) KnowledgeBase(_ context.Context) KnowledgeBase {
	return KnowledgeBase{
		Title:       s.corpus.Title(),
		LastUpdated: s.corpus.LastUpdated(),
		Categories:  s.corpus.Categories(),
		FAQs:        s.corpus.FAQs(),
	}
}

// Category lists the records of one category, matched case-insensitively.
// The name is echoed as given.
func (s *Service) Category(_ context.Context, name string) CategoryListing {
	return CategoryListing{
		Category: name,
		FAQs:     s.corpus.ByCategory(name),
	}
}

// Rank exposes scored matches for diagnostics.
func (s *Service) Rank(_ context.Context, query string, limit int) []ranking.Match {
	return ranking.RankMatches(query, s.corpus, limit)
}
