package faq

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/kailas-cloud/faqdesk/internal/domain"
)

// Corpus is the ordered, read-only knowledge base.
// It is built once and shared by all callers without locking.
type Corpus struct {
	title       string
	lastUpdated string
	faqs        []FAQ
	categories  []string
	fingerprint string
}

// NewCorpus validates the records and freezes them in the given order.
func NewCorpus(title, lastUpdated string, faqs []FAQ) (*Corpus, error) {
	if len(faqs) == 0 {
		return nil, fmt.Errorf("%w: at least one faq is required", domain.ErrInvalidCorpus)
	}

	seen := make(map[int]struct{}, len(faqs))
	seenCat := make(map[string]struct{})
	categories := make([]string, 0)
	h := sha256.New()

	for _, f := range faqs {
		if err := f.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[f.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate faq id %d", domain.ErrInvalidCorpus, f.ID)
		}
		seen[f.ID] = struct{}{}

		if _, ok := seenCat[f.Category]; !ok {
			seenCat[f.Category] = struct{}{}
			categories = append(categories, f.Category)
		}

		for _, part := range []string{strconv.Itoa(f.ID), f.Category, f.Question, f.Answer} {
			h.Write([]byte(part))
			h.Write([]byte{0})
		}
	}

	frozen := make([]FAQ, len(faqs))
	copy(frozen, faqs)

	return &Corpus{
		title:       title,
		lastUpdated: lastUpdated,
		faqs:        frozen,
		categories:  categories,
		fingerprint: hex.EncodeToString(h.Sum(nil))[:16],
	}, nil
}

// Title returns the knowledge base title.
func (c *Corpus) Title() string { return c.title }

// LastUpdated returns the human-readable revision label.
func (c *Corpus) LastUpdated() string { return c.lastUpdated }

// Len returns the number of records.
func (c *Corpus) Len() int { return len(c.faqs) }

// Fingerprint identifies the corpus content; it changes whenever any record does.
func (c *Corpus) Fingerprint() string { return c.fingerprint }

// FAQs returns a copy of all records in insertion order.
func (c *Corpus) FAQs() []FAQ {
	out := make([]FAQ, len(c.faqs))
	copy(out, c.faqs)
	return out
}

// Each calls fn for every record in insertion order without copying the slice.
func (c *Corpus) Each(fn func(f FAQ)) {
	for _, f := range c.faqs {
		fn(f)
	}
}

// Categories returns the distinct categories in first-appearance order.
func (c *Corpus) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// ByCategory returns the records whose category matches name, ignoring case.
func (c *Corpus) ByCategory(name string) []FAQ {
	out := make([]FAQ, 0)
	for _, f := range c.faqs {
		if strings.EqualFold(f.Category, name) {
			out = append(out, f)
		}
	}
	return out
}
