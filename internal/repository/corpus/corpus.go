// Package corpus loads the FAQ knowledge base from YAML.
package corpus

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/faqdesk/internal/domain"
	"github.com/kailas-cloud/faqdesk/internal/domain/faq"
)

//go:embed knowledge_base.yaml
var defaultKnowledgeBase []byte

// file is the on-disk layout of a knowledge base.
type file struct {
	Title       string    `yaml:"title"`
	LastUpdated string    `yaml:"last_updated"`
	FAQs        []faqItem `yaml:"faqs"`
}

type faqItem struct {
	ID       int    `yaml:"id"`
	Category string `yaml:"category"`
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Default returns the knowledge base shipped with the binary.
func Default() (*faq.Corpus, error) {
	c, err := Parse(defaultKnowledgeBase)
	if err != nil {
		return nil, fmt.Errorf("default knowledge base: %w", err)
	}
	return c, nil
}

// Load reads a knowledge base file. An empty path selects the shipped one.
func Load(path string) (*faq.Corpus, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read knowledge base %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("knowledge base %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML into a validated corpus. Unknown keys are rejected.
func Parse(data []byte) (*faq.Corpus, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", domain.ErrInvalidCorpus)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCorpus, err)
	}

	faqs := make([]faq.FAQ, len(f.FAQs))
	for i, it := range f.FAQs {
		faqs[i] = faq.FAQ{
			ID:       it.ID,
			Category: it.Category,
			Question: it.Question,
			Answer:   it.Answer,
		}
	}

	c, err := faq.NewCorpus(f.Title, f.LastUpdated, faqs)
	if err != nil {
		return nil, fmt.Errorf("build corpus: %w", err)
	}
	return c, nil
}
