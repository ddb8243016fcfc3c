package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"media-service/internal/domain/entities"
	domain "media-service/internal/domain/repositories"
	infrarepo "media-service/internal/infrastructure/repositories"
	consts "media-service/pkg/constants"
)

func TestPurgeTerminalJobs(t *testing.T) {
	repo := infrarepo.NewInMemoryJobRepository()
	ctx := context.Background()

	staleCompleted := &entities.TranscodeJob{
		JobID:     uuid.New(),
		EpisodeID: "ep-1",
		Seq:       1,
		Status:    consts.JobStatusCompleted,
		UpdatedAt: time.Now().Add(-48 * time.Hour),
	}
	staleCancelled := &entities.TranscodeJob{
		JobID:     uuid.New(),
		EpisodeID: "ep-1",
		Seq:       2,
		Status:    consts.JobStatusCancelled,
		UpdatedAt: time.Now().Add(-48 * time.Hour),
	}
	staleActive := &entities.TranscodeJob{
		JobID:     uuid.New(),
		EpisodeID: "ep-2",
		Seq:       1,
		Status:    consts.JobStatusProcessing,
		UpdatedAt: time.Now().Add(-48 * time.Hour),
	}
	freshCompleted := &entities.TranscodeJob{
		JobID:     uuid.New(),
		EpisodeID: "ep-3",
		Seq:       1,
		Status:    consts.JobStatusCompleted,
		UpdatedAt: time.Now(),
	}
	for _, job := range []*entities.TranscodeJob{staleCompleted, staleCancelled, staleActive, freshCompleted} {
		require.NoError(t, repo.Create(ctx, job))
	}

	svc := NewJobCleanupService(repo)
	require.NoError(t, svc.PurgeTerminalJobs(ctx, 24*time.Hour))

	_, err := repo.GetByID(ctx, staleCompleted.JobID)
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
	_, err = repo.GetByID(ctx, staleCancelled.JobID)
	assert.ErrorIs(t, err, domain.ErrJobNotFound)

	// In-flight jobs survive regardless of age, recent terminal jobs
	// survive until their retention passes.
	_, err = repo.GetByID(ctx, staleActive.JobID)
	assert.NoError(t, err)
	_, err = repo.GetByID(ctx, freshCompleted.JobID)
	assert.NoError(t, err)
}

func TestPurgeTerminalJobsEmptyStore(t *testing.T) {
	svc := NewJobCleanupService(infrarepo.NewInMemoryJobRepository())
	assert.NoError(t, svc.PurgeTerminalJobs(context.Background(), time.Hour))
}
