// Package answercache memoises composed answers in a key-value store.
package answercache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/faqdesk/internal/db"
	"github.com/kailas-cloud/faqdesk/internal/domain"
)

var cacheKeyPrefix = domain.KeyPrefix + "answer:"

// store is the consumer interface for the answer cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Entry is a cached reply.
type Entry struct {
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// Cache stores entries keyed by corpus fingerprint and question text.
type Cache struct {
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates an answer cache.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
// Both cacheTotal and logger may be nil.
func New(s store, ttl time.Duration, cacheTotal *prometheus.CounterVec, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Get returns a cached entry. Any store failure is logged and reported as a miss.
func (c *Cache) Get(ctx context.Context, fingerprint, question string) (Entry, bool) {
	key := cacheKey(fingerprint, question)

	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached answer", zap.String("key", key), zap.Error(err))
		}
		c.inc("miss")
		return Entry{}, false
	}

	var e Entry
	if err := json.Unmarshal(data, &e); err != nil || e.Answer == "" {
		c.logger.Warn("Discarding malformed cached answer", zap.String("key", key), zap.Error(err))
		c.inc("miss")
		return Entry{}, false
	}

	c.inc("hit")
	return e, true
}

// Put stores an entry. Failures are logged, never returned.
func (c *Cache) Put(ctx context.Context, fingerprint, question string, e Entry) {
	key := cacheKey(fingerprint, question)

	data, err := json.Marshal(e)
	if err != nil {
		c.logger.Warn("Failed to encode answer", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache answer", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) inc(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func cacheKey(fingerprint, question string) string {
	h := sha256.Sum256([]byte(fingerprint + "\x00" + question))
	return cacheKeyPrefix + hex.EncodeToString(h[:])
}
