package health

import "context"

// CachePinger checks answer cache availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// KnowledgeBase reports how many records are loaded.
type KnowledgeBase interface {
	Len() int
}
