package storage

import (
	"context"
	"sync"
	"time"

	"formsubmit/internal/models"

	"github.com/google/uuid"
)

// MemoryStore keeps submissions in memory for tests and local development.
// Writes are serialized; assigned timestamps never decrease across inserts.
type MemoryStore struct {
	mu   sync.Mutex
	subs []models.Submission
	last time.Time
}

// NewMemoryStore constructs an empty in-memory submission store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Create(_ context.Context, sub *models.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if now.Before(s.last) {
		now = s.last
	}
	s.last = now

	sub.ID = uuid.NewString()
	sub.CreatedAt = now
	s.subs = append(s.subs, *sub)
	return nil
}

func (s *MemoryStore) ListRecent(_ context.Context, limit int) ([]models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.subs)
	if limit < n {
		n = limit
	}
	// Later inserts win ties on equal timestamps, so walking the slice
	// backwards already yields newest-first order.
	out := make([]models.Submission, 0, n)
	for i := len(s.subs) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.subs[i])
	}
	return out, nil
}
