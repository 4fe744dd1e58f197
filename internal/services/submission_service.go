package services

import (
	"context"

	"formsubmit/internal/models"
	"formsubmit/internal/storage"
)

// RecentLimit is how many submissions the listing returns at most.
const RecentLimit = 100

type SubmissionService struct {
	Store storage.SubmissionStore
}

func NewSubmissionService(store storage.SubmissionStore) *SubmissionService {
	return &SubmissionService{Store: store}
}

// Create persists the assembled record. The store assigns id and createdAt.
func (s *SubmissionService) Create(ctx context.Context, sub *models.Submission) (*models.Submission, error) {
	if sub.Subjects == nil {
		sub.Subjects = models.SubjectSet{}
	}
	if err := s.Store.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// ListRecent returns the most recent submissions, newest first.
func (s *SubmissionService) ListRecent(ctx context.Context) ([]models.Submission, error) {
	return s.Store.ListRecent(ctx, RecentLimit)
}
