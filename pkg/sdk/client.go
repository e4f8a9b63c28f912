package faqdesk

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/faqdesk/internal/db"
	dbRedis "github.com/kailas-cloud/faqdesk/internal/db/redis"
	"github.com/kailas-cloud/faqdesk/internal/domain/answer"
	"github.com/kailas-cloud/faqdesk/internal/domain/faq"
	"github.com/kailas-cloud/faqdesk/internal/domain/question"
	"github.com/kailas-cloud/faqdesk/internal/ranking"
	"github.com/kailas-cloud/faqdesk/internal/repository/answercache"
	"github.com/kailas-cloud/faqdesk/internal/repository/corpus"
	healthuc "github.com/kailas-cloud/faqdesk/internal/usecase/health"
	supportuc "github.com/kailas-cloud/faqdesk/internal/usecase/support"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultCacheTTL         = time.Hour
)

// Internal interfaces, swapped for mocks in tests.
type supportUseCase interface {
	Ask(ctx context.Context, q question.Question) (answer.Answer, error)
	KnowledgeBase(ctx context.Context) supportuc.KnowledgeBase
	Category(ctx context.Context, name string) supportuc.CategoryListing
	Rank(ctx context.Context, query string, limit int) []ranking.Match
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the faqdesk SDK entry point. It is safe for concurrent use.
type Client struct {
	store      db.Store
	supportSvc supportUseCase
	healthSvc  healthUseCase
	obs        *observer
}

// New loads the knowledge base and, when a cache is configured, connects to it.
// The provided context is used for the cache readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{cacheTTL: defaultCacheTTL}
	for _, o := range opts {
		o.apply(cfg)
	}

	kb, err := loadKnowledgeBase(cfg)
	if err != nil {
		return nil, err
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	var store db.Store
	if cfg.driver != "" {
		store, err = createStore(cfg)
		if err != nil {
			return nil, err
		}
		if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			store.Close()
			return nil, fmt.Errorf("faqdesk: cache not ready: %w", err)
		}
	}

	return wireClient(kb, store, cfg, obs), nil
}

func loadKnowledgeBase(cfg *clientConfig) (*faq.Corpus, error) {
	var (
		kb  *faq.Corpus
		err error
	)
	switch {
	case cfg.kbData != nil:
		kb, err = corpus.Parse(cfg.kbData)
	default:
		kb, err = corpus.Load(cfg.kbPath)
	}
	if err != nil {
		return nil, fmt.Errorf("faqdesk: load knowledge base: %w", err)
	}
	return kb, nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "valkey", "redis":
		if len(cfg.addrs) == 0 || cfg.addrs[0] == "" {
			return nil, errors.New("faqdesk: cache address required")
		}
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:      cfg.addrs,
			Password:   cfg.password,
			Standalone: cfg.standalone,
		})
		if err != nil {
			return nil, fmt.Errorf("faqdesk: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("faqdesk: unknown driver %q", cfg.driver)
	}
}

func wireClient(kb *faq.Corpus, store db.Store, cfg *clientConfig, obs *observer) *Client {
	supportSvc := supportuc.New(kb).WithClock(cfg.now)

	// Typed nil pointers must not leak into the interfaces below.
	var pinger healthuc.CachePinger
	if store != nil {
		supportSvc.WithCache(answercache.New(store, cfg.cacheTTL, nil, nil))
		pinger = store
	}

	return &Client{
		store:      store,
		supportSvc: supportSvc,
		healthSvc:  healthuc.New(kb, pinger),
		obs:        obs,
	}
}

// Close releases the cache connection, if any.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ask answers a support question. Rejected questions return a
// *ValidationError matching ErrValidation.
func (c *Client) Ask(ctx context.Context, text string) (_ Answer, err error) {
	start := time.Now()
	defer func() { c.obs.observe("ask", start, err) }()

	q, err := question.Parse(text)
	if err != nil {
		return Answer{}, fmt.Errorf("ask: %w", err)
	}

	a, err := c.supportSvc.Ask(ctx, q)
	if err != nil {
		return Answer{}, fmt.Errorf("ask: %w", err)
	}
	return Answer{
		Question:  a.Question,
		Answer:    a.Answer,
		Category:  a.Category,
		Timestamp: a.Timestamp,
	}, nil
}

// Rank returns up to limit scored matches for query, best first.
func (c *Client) Rank(ctx context.Context, query string, limit int) []Match {
	start := time.Now()
	defer func() { c.obs.observe("rank", start, nil) }()

	ranked := c.supportSvc.Rank(ctx, query, limit)
	out := make([]Match, len(ranked))
	for i, m := range ranked {
		out[i] = Match{FAQ: fromInternalFAQ(m.FAQ), Score: m.Score}
	}
	return out
}

// FAQs lists the whole knowledge base.
func (c *Client) FAQs(ctx context.Context) KnowledgeBase {
	start := time.Now()
	defer func() { c.obs.observe("faqs", start, nil) }()

	kb := c.supportSvc.KnowledgeBase(ctx)
	return KnowledgeBase{
		Title:       kb.Title,
		LastUpdated: kb.LastUpdated,
		Categories:  kb.Categories,
		FAQs:        fromInternalFAQs(kb.FAQs),
	}
}

// Category lists the FAQs whose category matches name, ignoring case.
func (c *Client) Category(ctx context.Context, name string) CategoryListing {
	start := time.Now()
	defer func() { c.obs.observe("category", start, nil) }()

	listing := c.supportSvc.Category(ctx, name)
	return CategoryListing{
		Category: listing.Category,
		FAQs:     fromInternalFAQs(listing.FAQs),
		Total:    len(listing.FAQs),
	}
}

// Categories lists the distinct categories in first-appearance order.
func (c *Client) Categories(ctx context.Context) []string {
	return c.supportSvc.KnowledgeBase(ctx).Categories
}

func fromInternalFAQ(f faq.FAQ) FAQ {
	return FAQ{ID: f.ID, Category: f.Category, Question: f.Question, Answer: f.Answer}
}

func fromInternalFAQs(in []faq.FAQ) []FAQ {
	out := make([]FAQ, len(in))
	for i, f := range in {
		out[i] = fromInternalFAQ(f)
	}
	return out
}
