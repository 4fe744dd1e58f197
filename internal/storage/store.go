package storage

import (
	"context"

	"formsubmit/internal/models"
)

// SubmissionStore is the persistence boundary for submissions. Create
// assigns the record's unique id and creation timestamp and must persist
// durably before returning; ListRecent returns at most limit records,
// newest first.
type SubmissionStore interface {
	Create(ctx context.Context, sub *models.Submission) error
	ListRecent(ctx context.Context, limit int) ([]models.Submission, error)
}
