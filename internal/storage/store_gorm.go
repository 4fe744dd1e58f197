package storage

import (
	"context"
	"time"

	"formsubmit/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStore persists submissions in Postgres through gorm.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open gorm connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(ctx context.Context, sub *models.Submission) error {
	sub.ID = uuid.NewString()
	sub.CreatedAt = time.Now().UTC()
	return s.db.WithContext(ctx).Create(sub).Error
}

func (s *GormStore) ListRecent(ctx context.Context, limit int) ([]models.Submission, error) {
	var subs []models.Submission
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}
