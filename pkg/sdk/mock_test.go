package faqdesk

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/kailas-cloud/faqdesk/internal/db"
	"github.com/kailas-cloud/faqdesk/internal/domain/answer"
	"github.com/kailas-cloud/faqdesk/internal/domain/question"
	"github.com/kailas-cloud/faqdesk/internal/ranking"
	supportuc "github.com/kailas-cloud/faqdesk/internal/usecase/support"
)

// --- supportUseCase mock ---

type mockSupportUC struct {
	askFn func(ctx context.Context, q question.Question) (answer.Answer, error)
}

func (m *mockSupportUC) Ask(ctx context.Context, q question.Question) (answer.Answer, error) {
	return m.askFn(ctx, q)
}

func (m *mockSupportUC) KnowledgeBase(_ context.Context) supportuc.KnowledgeBase {
	return supportuc.KnowledgeBase{}
}

func (m *mockSupportUC) Category(_ context.Context, name string) supportuc.CategoryListing {
	return supportuc.CategoryListing{Category: name}
}

func (m *mockSupportUC) Rank(_ context.Context, _ string, _ int) []ranking.Match {
	return nil
}

// --- db.Store fake ---

type memStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	pingErr error
	sets    int
	closed  bool
}

var _ db.Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (s *memStore) Ping(_ context.Context) error { return s.pingErr }

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (s *memStore) SetWithTTL(_ context.Context, key string, value []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets++
	s.data[key] = value
	return nil
}

func (s *memStore) Del(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *memStore) Close() { s.closed = true }

func (s *memStore) WaitForReady(_ context.Context, _ time.Duration) error {
	if s.pingErr != nil {
		return errors.New("not ready")
	}
	return nil
}
