package question

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/faqdesk/internal/domain"
)

// Length limits for a support question.
const (
	// MinLength is the minimum length after trimming.
	MinLength = 3
	// MaxLength is the maximum length of the raw, untrimmed input.
	MaxLength = 500
)

// Kind discriminates validation failures.
type Kind string

const (
	// KindMissing means the question was absent or empty.
	KindMissing Kind = "missing"
	// KindTooShort means the trimmed question is under MinLength.
	KindTooShort Kind = "too_short"
	// KindTooLong means the raw question exceeds MaxLength.
	KindTooLong Kind = "too_long"
)

var messages = map[Kind]string{
	KindMissing:  "Question is required and must be a string",
	KindTooShort: "Question is too short. Please provide more details.",
	KindTooLong:  fmt.Sprintf("Question is too long. Please keep it under %d characters.", MaxLength),
}

// ValidationError reports why a question was rejected.
type ValidationError struct {
	Kind Kind
}

func (e *ValidationError) Error() string { return messages[e.Kind] }

// Unwrap lets callers match any validation failure with errors.Is(err, domain.ErrValidation).
func (e *ValidationError) Unwrap() error { return domain.ErrValidation }

// Question is a validated, trimmed support question.
type Question struct {
	text string
}

// New validates raw input. A nil pointer means the field was absent.
func New(raw *string) (Question, error) {
	if raw == nil || *raw == "" {
		return Question{}, &ValidationError{Kind: KindMissing}
	}

	trimmed := strings.TrimSpace(*raw)
	if utf8.RuneCountInString(trimmed) < MinLength {
		return Question{}, &ValidationError{Kind: KindTooShort}
	}
	if utf8.RuneCountInString(*raw) > MaxLength {
		return Question{}, &ValidationError{Kind: KindTooLong}
	}

	return Question{text: trimmed}, nil
}

// Parse is New for callers holding a plain string.
func Parse(raw string) (Question, error) {
	return New(&raw)
}

// Text returns the trimmed question.
func (q Question) Text() string { return q.text }

// IsZero reports whether q was never validated.
func (q Question) IsZero() bool { return q.text == "" }
