package domain

import "errors"

var (
	// ErrValidation signals a rejected client input.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidCorpus signals a malformed knowledge base.
	ErrInvalidCorpus = errors.New("invalid knowledge base")
	// ErrCacheUnavailable signals that the answer cache could not be reached.
	ErrCacheUnavailable = errors.New("answer cache unavailable")
)

// KeyPrefix namespaces every key faqdesk writes to the shared store.
const KeyPrefix = "faqdesk:"
