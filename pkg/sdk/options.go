package faqdesk

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	kbPath string
	kbData []byte

	driver     string // "", "valkey" or "redis"
	addrs      []string
	password   string
	standalone bool
	cacheTTL   time.Duration

	now        func() time.Time
	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithKnowledgeBaseFile answers from a YAML knowledge base on disk
// instead of the shipped help center.
func WithKnowledgeBaseFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.kbPath = path
		c.kbData = nil
	})
}

// WithKnowledgeBase answers from an in-memory YAML knowledge base.
func WithKnowledgeBase(yamlDoc []byte) Option {
	return optionFunc(func(c *clientConfig) {
		c.kbData = yamlDoc
		c.kbPath = ""
	})
}

// WithValkey caches composed answers in a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis caches composed answers in a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithStandalone disables cluster topology discovery for the cache.
func WithStandalone() Option {
	return optionFunc(func(c *clientConfig) {
		c.standalone = true
	})
}

// WithCacheTTL sets how long cached answers live. Default: 1h.
func WithCacheTTL(ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.cacheTTL = ttl
	})
}

// WithClock overrides the source of answer timestamps.
func WithClock(now func() time.Time) Option {
	return optionFunc(func(c *clientConfig) {
		c.now = now
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
