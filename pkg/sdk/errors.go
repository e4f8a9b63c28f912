package faqdesk

import (
	"github.com/kailas-cloud/faqdesk/internal/domain"
	"github.com/kailas-cloud/faqdesk/internal/domain/question"
)

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrValidation           = domain.ErrValidation
	ErrInvalidKnowledgeBase = domain.ErrInvalidCorpus
)

// ValidationError describes why a question was rejected. Use errors.As()
// to read its Kind; Error() is the user-facing message.
type ValidationError = question.ValidationError

// ValidationKind discriminates rejected questions.
type ValidationKind = question.Kind

// Validation kinds.
const (
	ValidationMissing  = question.KindMissing
	ValidationTooShort = question.KindTooShort
	ValidationTooLong  = question.KindTooLong
)
