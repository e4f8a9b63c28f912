package support

import (
	"context"

	"github.com/kailas-cloud/faqdesk/internal/repository/answercache"
)

// AnswerCache memoises composed replies per corpus revision.
type AnswerCache interface {
	Get(ctx context.Context, fingerprint, question string) (answercache.Entry, bool)
	Put(ctx context.Context, fingerprint, question string, e answercache.Entry)
}
