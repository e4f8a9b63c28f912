package faq

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/faqdesk/internal/domain"
)

// FAQ is a single question/answer entry of the knowledge base.
type FAQ struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Validate checks that the record is well formed.
func (f FAQ) Validate() error {
	if f.ID <= 0 {
		return fmt.Errorf("%w: faq id must be positive, got %d", domain.ErrInvalidCorpus, f.ID)
	}
	if strings.TrimSpace(f.Category) == "" {
		return fmt.Errorf("%w: faq %d: category is required", domain.ErrInvalidCorpus, f.ID)
	}
	if strings.TrimSpace(f.Question) == "" {
		return fmt.Errorf("%w: faq %d: question is required", domain.ErrInvalidCorpus, f.ID)
	}
	if strings.TrimSpace(f.Answer) == "" {
		return fmt.Errorf("%w: faq %d: answer is required", domain.ErrInvalidCorpus, f.ID)
	}
	return nil
}
