package services

import (
	"context"
	"fmt"
	"testing"

	"formsubmit/internal/models"
	"formsubmit/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionServiceCreate(t *testing.T) {
	svc := NewSubmissionService(storage.NewMemoryStore())
	ctx := context.Background()

	t.Run("returns the record with its assigned id", func(t *testing.T) {
		created, err := svc.Create(ctx, &models.Submission{FirstName: "Jane"})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
	})

	t.Run("nil subjects become an empty mapping", func(t *testing.T) {
		created, err := svc.Create(ctx, &models.Submission{})
		require.NoError(t, err)
		assert.NotNil(t, created.Subjects)
		assert.Empty(t, created.Subjects)
	})
}

func TestSubmissionServiceListRecent(t *testing.T) {
	svc := NewSubmissionService(storage.NewMemoryStore())
	ctx := context.Background()

	for i := 0; i < RecentLimit+1; i++ {
		_, err := svc.Create(ctx, &models.Submission{About: fmt.Sprintf("entry %d", i)})
		require.NoError(t, err)
	}

	subs, err := svc.ListRecent(ctx)
	require.NoError(t, err)
	assert.Len(t, subs, RecentLimit)
	assert.Equal(t, fmt.Sprintf("entry %d", RecentLimit), subs[0].About)
}
